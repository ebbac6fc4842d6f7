package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/linskybing/oasis/internal/authz"
	"github.com/linskybing/oasis/internal/domain/contact"
	"github.com/linskybing/oasis/internal/repository"
	"github.com/linskybing/oasis/pkg/utils"
)

type ContactService struct {
	Repos *repository.Repos
}

func NewContactService(repos *repository.Repos) *ContactService {
	return &ContactService{
		Repos: repos,
	}
}

// Send stores a support message. id may be nil for anonymous visitors.
func (s *ContactService) Send(ctx context.Context, id *authz.Identity, in contact.MessageInput) (contact.Message, error) {
	if strings.TrimSpace(in.Message) == "" {
		return contact.Message{}, NewValidationError("message", "el mensaje es obligatorio")
	}
	m := contact.Message{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Subject: in.Subject,
		Body:    in.Message,
	}
	var actor uint
	if id != nil {
		actor = id.UserID
		m.UserID = &actor
	}
	if err := s.Repos.Contact.CreateMessage(&m); err != nil {
		return contact.Message{}, err
	}
	utils.LogAuditWithConsole(ctx, actor, "create", "contact_message", fmt.Sprintf("id=%d", m.ID), nil, nil, string(m.Subject), s.Repos.Audit)
	return m, nil
}

func (s *ContactService) List(admin *authz.Identity, onlyOpen bool) ([]contact.Message, error) {
	if !admin.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	return s.Repos.Contact.ListMessages(onlyOpen)
}

func (s *ContactService) Resolve(ctx context.Context, admin *authz.Identity, id uint) error {
	if !admin.IsAdmin() {
		return ErrPermissionDenied
	}
	ok, err := s.Repos.Contact.MarkResolved(id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrMessageNotFound
	}
	utils.LogAuditWithConsole(ctx, admin.UserID, "resolve", "contact_message", fmt.Sprintf("id=%d", id), nil, nil, "", s.Repos.Audit)
	return nil
}
