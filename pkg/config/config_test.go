package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeKeyFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "service-account.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"type":"service_account"}`), 0o600))
	return path
}

func TestProfileSeedOptionsValid(t *testing.T) {
	opts := ProfileSeedOptions{
		ServiceAccountPath: writeKeyFile(t),
		ProjectID:          "demo-sports-app",
		Email:              "seed@example.com",
		Password:           "longenough",
	}
	assert.NoError(t, opts.Validate())
}

func TestProfileSeedOptionsRejectsMissingKeyFile(t *testing.T) {
	opts := ProfileSeedOptions{
		ServiceAccountPath: "/nonexistent/key.json",
		ProjectID:          "demo-sports-app",
		Email:              "seed@example.com",
		Password:           "longenough",
	}
	assert.Error(t, opts.Validate())
}

func TestProfileSeedOptionsRejectsBadEmail(t *testing.T) {
	opts := ProfileSeedOptions{
		ServiceAccountPath: writeKeyFile(t),
		ProjectID:          "demo-sports-app",
		Email:              "not-an-email",
		Password:           "longenough",
	}
	assert.Error(t, opts.Validate())
}

func TestProfileSeedOptionsRejectsShortPassword(t *testing.T) {
	opts := ProfileSeedOptions{
		ServiceAccountPath: writeKeyFile(t),
		ProjectID:          "demo-sports-app",
		Email:              "seed@example.com",
		Password:           "short",
	}
	assert.Error(t, opts.Validate())
}

func TestTournamentSeedOptionsKeyFileIsOptional(t *testing.T) {
	opts := TournamentSeedOptions{TournamentName: "Aurora Clash Invitational"}
	assert.NoError(t, opts.Validate())

	opts.ServiceAccountPath = "/nonexistent/key.json"
	assert.Error(t, opts.Validate())
}

func TestTournamentSeedOptionsRequiresName(t *testing.T) {
	opts := TournamentSeedOptions{}
	assert.Error(t, opts.Validate())
}

func TestLoadDefaultsProject(t *testing.T) {
	t.Setenv("FIREBASE_PROJECT_ID", "")
	os.Unsetenv("FIREBASE_PROJECT_ID")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "demo-sports-app", cfg.FirebaseProject)
}

func TestLoadReadsProjectFromEnv(t *testing.T) {
	t.Setenv("FIREBASE_PROJECT_ID", "playaround-prod")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "playaround-prod", cfg.FirebaseProject)
}
