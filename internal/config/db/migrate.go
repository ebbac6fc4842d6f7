package db

import (
	"fmt"

	"github.com/linskybing/oasis/internal/domain/audit"
	"github.com/linskybing/oasis/internal/domain/catalog"
	"github.com/linskybing/oasis/internal/domain/contact"
	"github.com/linskybing/oasis/internal/domain/postulation"
	"github.com/linskybing/oasis/internal/domain/profile"
	"github.com/linskybing/oasis/internal/domain/project"
	"github.com/linskybing/oasis/internal/domain/user"
	"gorm.io/gorm"
)

// Models lists every table in dependency order.
func Models() []any {
	return []any{
		&user.User{},
		&catalog.Program{},
		&catalog.Sector{},
		&profile.CompanyProfile{},
		&profile.ApprenticeProfile{},
		&profile.InstructorProfile{},
		&project.Project{},
		&project.Assignment{},
		&postulation.ApprenticePostulation{},
		&postulation.InstructorPostulation{},
		&contact.Message{},
		&audit.AuditLog{},
	}
}

func Migrate(gdb *gorm.DB) error {
	if err := gdb.SetupJoinTable(&project.Project{}, "Apprentices", &project.Assignment{}); err != nil {
		return fmt.Errorf("setup project_apprentices join table: %w", err)
	}
	if err := gdb.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
