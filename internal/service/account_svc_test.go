package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BLVNQ/buildconnect-server/internal/domain"
	"github.com/BLVNQ/buildconnect-server/internal/identity"
)

type fakeIdentity struct {
	created   int
	createErr error
	accounts  map[string]identity.Account
	lookupErr error
}

func (f *fakeIdentity) CreateAccount(_ context.Context, email, _, displayName string) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created++
	uid := "acct-1"
	if f.accounts == nil {
		f.accounts = map[string]identity.Account{}
	}
	f.accounts[uid] = identity.Account{UID: uid, Email: email, DisplayName: displayName}
	return uid, nil
}

func (f *fakeIdentity) LookupAccount(_ context.Context, uid string) (identity.Account, error) {
	if f.lookupErr != nil {
		return identity.Account{}, f.lookupErr
	}
	return f.accounts[uid], nil
}

type fakeUserStore struct {
	inserted []*domain.User
	err      error
}

func (f *fakeUserStore) Insert(_ context.Context, u *domain.User) error {
	if f.err != nil {
		return f.err
	}
	f.inserted = append(f.inserted, u)
	return nil
}

func TestRegisterSuccess(t *testing.T) {
	ids := &fakeIdentity{}
	users := &fakeUserStore{}
	svc := NewAccountSvc(ids, users)

	uid, err := svc.Register(context.Background(), "a@b.c", "secret", "Asha", "merchant")
	require.NoError(t, err)
	assert.Equal(t, "acct-1", uid)

	require.Len(t, users.inserted, 1)
	u := users.inserted[0]
	assert.Equal(t, uid, u.UID, "profile is keyed by the generated account id")
	assert.Equal(t, "a@b.c", u.Email)
	assert.Equal(t, "merchant", u.Role)
}

func TestRegisterMissingFields(t *testing.T) {
	svc := NewAccountSvc(&fakeIdentity{}, &fakeUserStore{})
	_, err := svc.Register(context.Background(), "", "secret", "Asha", "merchant")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestRegisterIdentityFailure(t *testing.T) {
	ids := &fakeIdentity{createErr: errors.New("email a@b.c is already registered")}
	users := &fakeUserStore{}
	svc := NewAccountSvc(ids, users)

	_, err := svc.Register(context.Background(), "a@b.c", "secret", "Asha", "client")
	require.EqualError(t, err, "email a@b.c is already registered")
	assert.Empty(t, users.inserted)
}

// The account is not rolled back when the profile insert fails; the two
// entities end up partially created.
func TestRegisterNoRollbackOnProfileFailure(t *testing.T) {
	ids := &fakeIdentity{}
	users := &fakeUserStore{err: errors.New("write failed")}
	svc := NewAccountSvc(ids, users)

	_, err := svc.Register(context.Background(), "a@b.c", "secret", "Asha", "client")
	require.Error(t, err)
	assert.Equal(t, 1, ids.created, "account creation is not compensated")
}
