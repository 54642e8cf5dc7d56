package usecase

import (
	"context"
	"time"

	"playaround/internal/domain/repository"
	"playaround/pkg/errors"
	"playaround/pkg/logger"
)

// ProfileSeedUseCase provisions the demo player account and writes its
// profile documents. The auth account and the root users document are made
// authoritative on every run; the profile documents are merged so manual
// tweaks survive a reseed.
type ProfileSeedUseCase struct {
	authClient FirebaseAuthClient
	seedRepo   repository.SeedRepository
	email      string
	password   string
	now        func() time.Time
}

func NewProfileSeedUseCase(authClient FirebaseAuthClient, seedRepo repository.SeedRepository, email, password string) *ProfileSeedUseCase {
	return &ProfileSeedUseCase{
		authClient: authClient,
		seedRepo:   seedRepo,
		email:      email,
		password:   password,
		now:        time.Now,
	}
}

// EnsureAccount resolves the seed account's uid, creating the account when
// it does not exist and verifying its email when it does. Any auth error
// other than a missing account aborts the run.
func (uc *ProfileSeedUseCase) EnsureAccount(ctx context.Context) (string, error) {
	uid, verified, err := uc.authClient.GetAccountByEmail(ctx, uc.email)
	if err == nil {
		logger.Info("Found existing user: %s", uid)
		if !verified {
			if err := uc.authClient.MarkEmailVerified(ctx, uid); err != nil {
				return "", err
			}
			logger.Info("Marked email as verified")
		}
		return uid, nil
	}

	if !errors.Is(err, "NOT_FOUND") {
		return "", err
	}

	logger.Info("Creating new user...")
	uid, err = uc.authClient.CreateAccount(ctx, uc.email, uc.password, seedDisplayName, seedProfilePictureURL)
	if err != nil {
		return "", err
	}

	logger.Info("Created user %s", uid)
	return uid, nil
}

// Run executes the full pipeline: account, root user document, player
// profile, public profile. Stages run in order and the first failure aborts
// the run; earlier writes are left in place since each stage is idempotent.
func (uc *ProfileSeedUseCase) Run(ctx context.Context) (string, error) {
	uid, err := uc.EnsureAccount(ctx)
	if err != nil {
		return "", err
	}

	logger.Info("Writing profile documents...")
	now := uc.now()

	if err := uc.seedRepo.Replace(ctx, "users", uid, baseUserDoc(uid, now)); err != nil {
		return "", err
	}

	if err := uc.seedRepo.Merge(ctx, "player_profiles", uid, playerProfileDoc()); err != nil {
		return "", err
	}

	if err := uc.seedRepo.Merge(ctx, "public_profiles", uid, publicProfileDoc(uid, now)); err != nil {
		return "", err
	}

	logger.Info("Seeded public profile data for: %s", uid)
	return uid, nil
}
