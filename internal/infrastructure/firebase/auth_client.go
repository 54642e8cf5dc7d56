package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"

	"playaround/pkg/errors"
)

type FirebaseAuthClient struct {
	client *auth.Client
}

func NewFirebaseAuthClient(client *auth.Client) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client: client,
	}
}

// GetAccountByEmail resolves an auth account by email. A missing account is
// reported as a NOT_FOUND error so callers can branch into account creation.
func (f *FirebaseAuthClient) GetAccountByEmail(ctx context.Context, email string) (string, bool, error) {
	user, err := f.client.GetUserByEmail(ctx, email)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return "", false, errors.NotFound("Auth account", err)
		}
		return "", false, err
	}

	return user.UID, user.EmailVerified, nil
}

func (f *FirebaseAuthClient) CreateAccount(ctx context.Context, email, password, displayName, photoURL string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName).
		PhotoURL(photoURL).
		EmailVerified(true)

	user, err := f.client.CreateUser(ctx, params)
	if err != nil {
		return "", err
	}

	return user.UID, nil
}

func (f *FirebaseAuthClient) MarkEmailVerified(ctx context.Context, uid string) error {
	params := (&auth.UserToUpdate{}).
		EmailVerified(true)

	_, err := f.client.UpdateUser(ctx, uid, params)
	if err != nil {
		return err
	}

	return nil
}
