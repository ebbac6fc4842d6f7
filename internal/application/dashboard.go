package application

import (
	"sort"

	"github.com/linskybing/oasis/internal/authz"
	"github.com/linskybing/oasis/internal/domain/postulation"
	"github.com/linskybing/oasis/internal/domain/project"
	"github.com/linskybing/oasis/internal/domain/user"
	"github.com/linskybing/oasis/internal/repository"
)

const recentUsersLimit = 5

type AdminDashboard struct {
	TotalUsers          int64               `json:"total_users"`
	UsersByRole         map[user.Role]int64 `json:"users_by_role"`
	RecentUsers         []user.UserDTO      `json:"recent_users"`
	PendingProjects     int64               `json:"pending_projects"`
	PendingApprentices  int64               `json:"pending_apprentice_postulations"`
	PendingInstructors  int64               `json:"pending_instructor_postulations"`
	OpenContactMessages int64               `json:"open_contact_messages"`
}

type Reports struct {
	TotalUsers       int64                 `json:"total_users"`
	UsersByRole      map[user.Role]int64   `json:"users_by_role"`
	ProjectsByStatus []project.StatusCount `json:"projects_by_status"`
}

// ApprenticeDashboard merges assigned and applied projects without duplicates.
type ApprenticeDashboard struct {
	Projects          []project.Project         `json:"projects"`
	AppliedProjectIDs []uint                    `json:"applied_project_ids"`
	Postulations      []postulation.Postulation `json:"postulations"`
}

type DashboardService struct {
	Repos *repository.Repos
}

func NewDashboardService(repos *repository.Repos) *DashboardService {
	return &DashboardService{
		Repos: repos,
	}
}

func (s *DashboardService) Admin(admin *authz.Identity) (AdminDashboard, error) {
	if !admin.IsAdmin() {
		return AdminDashboard{}, ErrPermissionDenied
	}
	var d AdminDashboard
	var err error
	if d.TotalUsers, err = s.Repos.User.CountUsers(); err != nil {
		return d, err
	}
	if d.UsersByRole, err = s.Repos.User.CountUsersByRole(); err != nil {
		return d, err
	}
	recent, err := s.Repos.User.ListRecentUsers(recentUsersLimit)
	if err != nil {
		return d, err
	}
	d.RecentUsers = make([]user.UserDTO, 0, len(recent))
	for _, u := range recent {
		d.RecentUsers = append(d.RecentUsers, user.ToDTO(u))
	}

	counts, err := s.Repos.Project.CountByStatus()
	if err != nil {
		return d, err
	}
	for _, c := range counts {
		if c.Status == project.StatusPending {
			d.PendingProjects = c.Count
		}
	}
	if d.PendingApprentices, err = s.Repos.Postulation.CountPending(postulation.KindApprentice); err != nil {
		return d, err
	}
	if d.PendingInstructors, err = s.Repos.Postulation.CountPending(postulation.KindInstructor); err != nil {
		return d, err
	}
	if d.OpenContactMessages, err = s.Repos.Contact.CountOpen(); err != nil {
		return d, err
	}
	return d, nil
}

func (s *DashboardService) Reports(admin *authz.Identity) (Reports, error) {
	if !admin.IsAdmin() {
		return Reports{}, ErrPermissionDenied
	}
	var r Reports
	var err error
	if r.TotalUsers, err = s.Repos.User.CountUsers(); err != nil {
		return r, err
	}
	if r.UsersByRole, err = s.Repos.User.CountUsersByRole(); err != nil {
		return r, err
	}
	if r.ProjectsByStatus, err = s.Repos.Project.CountByStatus(); err != nil {
		return r, err
	}
	return r, nil
}

func (s *DashboardService) Apprentice(id *authz.Identity) (ApprenticeDashboard, error) {
	if !id.Has(user.RoleApprentice) {
		return ApprenticeDashboard{}, ErrPermissionDenied
	}
	assigned, err := s.Repos.Project.ListAssignedToApprentice(id.UserID)
	if err != nil {
		return ApprenticeDashboard{}, err
	}
	mine, err := s.Repos.Postulation.ListByActor(postulation.KindApprentice, id.UserID)
	if err != nil {
		return ApprenticeDashboard{}, err
	}

	seen := make(map[uint]struct{}, len(assigned)+len(mine))
	projects := make([]project.Project, 0, len(assigned)+len(mine))
	for _, p := range assigned {
		seen[p.PID] = struct{}{}
		projects = append(projects, p)
	}

	appliedIDs := make([]uint, 0, len(mine))
	var missing []uint
	for _, ps := range mine {
		appliedIDs = append(appliedIDs, ps.ProjectID)
		if _, ok := seen[ps.ProjectID]; !ok {
			seen[ps.ProjectID] = struct{}{}
			missing = append(missing, ps.ProjectID)
		}
	}
	if len(missing) > 0 {
		applied, err := s.Repos.Project.ListProjectsByIDs(missing)
		if err != nil {
			return ApprenticeDashboard{}, err
		}
		projects = append(projects, applied...)
	}
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].CreatedAt.After(projects[j].CreatedAt)
	})

	return ApprenticeDashboard{
		Projects:          projects,
		AppliedProjectIDs: appliedIDs,
		Postulations:      mine,
	}, nil
}
