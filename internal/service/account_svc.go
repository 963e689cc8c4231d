package service

import (
	"context"

	"github.com/BLVNQ/buildconnect-server/internal/domain"
	"github.com/BLVNQ/buildconnect-server/internal/identity"
)

type UserStore interface {
	Insert(ctx context.Context, u *domain.User) error
}

type AccountSvc struct {
	ids   identity.Service
	users UserStore
}

func NewAccountSvc(ids identity.Service, users UserStore) *AccountSvc {
	return &AccountSvc{ids: ids, users: users}
}

// Register creates the identity account first, then the paired profile
// document. There is no compensating delete of the account if the
// profile insert fails.
func (s *AccountSvc) Register(ctx context.Context, email, password, name, role string) (string, error) {
	if email == "" || password == "" || name == "" || role == "" {
		return "", invalidf("email, password, name and role are required")
	}
	uid, err := s.ids.CreateAccount(ctx, email, password, name)
	if err != nil {
		return "", err
	}
	u := &domain.User{UID: uid, Name: name, Email: email, Role: role}
	if err := s.users.Insert(ctx, u); err != nil {
		return "", err
	}
	return uid, nil
}
