package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playaround/internal/domain/entity"
)

const testSeedEmail = "mahmadafzal880@gmail.com"

func newFixedProfileSeedUseCase(auth *fakeAuthClient, repo *fakeSeedRepository) *ProfileSeedUseCase {
	uc := NewProfileSeedUseCase(auth, repo, testSeedEmail, "AHmed5114@")
	uc.now = func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	}
	return uc
}

func TestEnsureAccountCreatesMissingAccount(t *testing.T) {
	auth := newFakeAuthClient()
	uc := newFixedProfileSeedUseCase(auth, newFakeSeedRepository())

	uid, err := uc.EnsureAccount(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "uid-created", uid)
	assert.Equal(t, []string{testSeedEmail}, auth.created)
	assert.Zero(t, auth.verifyCalls)
}

func TestEnsureAccountIsDeterministicAcrossRuns(t *testing.T) {
	auth := newFakeAuthClient()
	uc := newFixedProfileSeedUseCase(auth, newFakeSeedRepository())

	first, err := uc.EnsureAccount(context.Background())
	require.NoError(t, err)

	second, err := uc.EnsureAccount(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, auth.created, 1, "a second run must find the account, not create another")
}

func TestEnsureAccountVerifiesExistingAccount(t *testing.T) {
	auth := newFakeAuthClient()
	auth.accounts[testSeedEmail] = &fakeAuthAccount{uid: "uid-existing", verified: false}
	uc := newFixedProfileSeedUseCase(auth, newFakeSeedRepository())

	uid, err := uc.EnsureAccount(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "uid-existing", uid)
	assert.Empty(t, auth.created)
	assert.Equal(t, 1, auth.verifyCalls)
	assert.True(t, auth.accounts[testSeedEmail].verified)
}

func TestEnsureAccountLeavesVerifiedAccountAlone(t *testing.T) {
	auth := newFakeAuthClient()
	auth.accounts[testSeedEmail] = &fakeAuthAccount{uid: "uid-existing", verified: true}
	uc := newFixedProfileSeedUseCase(auth, newFakeSeedRepository())

	uid, err := uc.EnsureAccount(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "uid-existing", uid)
	assert.Empty(t, auth.created)
	assert.Zero(t, auth.verifyCalls)
}

func TestEnsureAccountPropagatesLookupErrors(t *testing.T) {
	auth := newFakeAuthClient()
	auth.lookupErr = fmt.Errorf("auth backend unavailable")
	uc := newFixedProfileSeedUseCase(auth, newFakeSeedRepository())

	_, err := uc.EnsureAccount(context.Background())
	require.Error(t, err)
	assert.Empty(t, auth.created, "a transient auth failure must not trigger account creation")
}

func TestRunWritesProfileDocuments(t *testing.T) {
	auth := newFakeAuthClient()
	auth.accounts[testSeedEmail] = &fakeAuthAccount{uid: "uid-ayaan", verified: true}
	repo := newFakeSeedRepository()
	uc := newFixedProfileSeedUseCase(auth, repo)

	uid, err := uc.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, "uid-ayaan", uid)

	// Root user document is replaced wholesale.
	replaced, ok := repo.replaced["users/uid-ayaan"]
	require.True(t, ok)
	user, ok := replaced.(*entity.User)
	require.True(t, ok)
	assert.Equal(t, "uid-ayaan", user.UID)
	assert.Equal(t, "Ayaan Malik", user.FullName)
	assert.Equal(t, "player", user.Role)
	assert.True(t, user.IsProfileComplete)
	assert.Len(t, user.Followers, 3)
	assert.Len(t, user.MutualConnections, 2)

	// Profile documents are merged.
	playerProfile := repo.docs["player_profiles/uid-ayaan"]
	require.NotNil(t, playerProfile)
	assert.Equal(t, "elite", playerProfile["skillLevel"])

	publicProfile := repo.docs["public_profiles/uid-ayaan"]
	require.NotNil(t, publicProfile)
	assert.Equal(t, "uid-ayaan", publicProfile["userId"])
	assert.Equal(t, 312, publicProfile["followersCount"])
}

func TestRunMergePreservesManualProfileEdits(t *testing.T) {
	auth := newFakeAuthClient()
	auth.accounts[testSeedEmail] = &fakeAuthAccount{uid: "uid-ayaan", verified: true}
	repo := newFakeSeedRepository()
	repo.merge("public_profiles", "uid-ayaan", map[string]interface{}{
		"pinnedHighlight": "league_final_2024",
	})
	uc := newFixedProfileSeedUseCase(auth, repo)

	_, err := uc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "league_final_2024", repo.docs["public_profiles/uid-ayaan"]["pinnedHighlight"])
}

func TestRunAbortsWhenRootUserWriteFails(t *testing.T) {
	auth := newFakeAuthClient()
	auth.accounts[testSeedEmail] = &fakeAuthAccount{uid: "uid-ayaan", verified: true}
	repo := newFakeSeedRepository()
	repo.failPath = "users/uid-ayaan"
	uc := newFixedProfileSeedUseCase(auth, repo)

	_, err := uc.Run(context.Background())
	require.Error(t, err)

	assert.NotContains(t, repo.docs, "player_profiles/uid-ayaan")
	assert.NotContains(t, repo.docs, "public_profiles/uid-ayaan")
}
