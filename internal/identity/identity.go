// Package identity is the account capability: registration creates an
// account here first, then pairs it with a profile document.
package identity

import "context"

type Account struct {
	UID         string
	Email       string
	DisplayName string
}

type Service interface {
	// CreateAccount returns the generated account id. A duplicate email
	// is an error whose message passes through to the caller.
	CreateAccount(ctx context.Context, email, password, displayName string) (string, error)
	// LookupAccount resolves an account's email for notifications.
	LookupAccount(ctx context.Context, uid string) (Account, error)
}
