package usecase

import (
	"context"
)

// FirebaseAuthClient is the slice of the Firebase Admin auth surface the
// profile seeder uses.
type FirebaseAuthClient interface {
	GetAccountByEmail(ctx context.Context, email string) (uid string, emailVerified bool, err error)
	CreateAccount(ctx context.Context, email, password, displayName, photoURL string) (string, error)
	MarkEmailVerified(ctx context.Context, uid string) error
}
