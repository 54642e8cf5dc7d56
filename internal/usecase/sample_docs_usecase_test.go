package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFixedSampleDocsUseCase(repo *fakeSeedRepository) *SampleDocsUseCase {
	uc := NewSampleDocsUseCase(repo)
	uc.now = func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	}
	return uc
}

func TestSampleDocsSeedsEveryCollection(t *testing.T) {
	repo := newFakeSeedRepository()
	uc := newFixedSampleDocsUseCase(repo)

	require.NoError(t, uc.Run(context.Background()))

	expected := []string{
		"users/player_001",
		"users/coach_001",
		"users/admin_001",
		"venues/venue_central",
		"venues/venue_north",
		"coachListings/listing_casey_peak",
		"listings/listing_central_morning",
		"bookings/booking_1001",
		"tournaments/tournament_fall",
		"matches/match_fall_01",
		"teams/team_alpha",
		"teams/team_beta",
		"teamMembers/member_alpha_player_001",
		"leaderboardEntries/leader_fall_alpha",
		"leaderboardEntries/leader_fall_beta",
		"products/prod_performance_ball",
		"posts/post_training_tips",
		"messageThreads/thread_booking_help",
		"messageThreads/thread_booking_help/messages/msg_001",
		"notifications/notif_player_booking",
	}
	for _, key := range expected {
		assert.Contains(t, repo.docs, key)
	}
	assert.Len(t, repo.docs, len(expected))
}

func TestSampleDocsUserRoles(t *testing.T) {
	repo := newFakeSeedRepository()
	uc := newFixedSampleDocsUseCase(repo)

	require.NoError(t, uc.Run(context.Background()))

	assert.Equal(t, "athlete", repo.docs["users/player_001"]["role"])
	assert.Equal(t, "coach", repo.docs["users/coach_001"]["role"])
	assert.Equal(t, "admin", repo.docs["users/admin_001"]["role"])
	assert.Equal(t, "Sam Player", repo.docs["users/player_001"]["displayName"])
	assert.Equal(t, 4.2, repo.docs["users/player_001"]["rating"])
}

func TestSampleDocsSchedulingOffsets(t *testing.T) {
	repo := newFakeSeedRepository()
	uc := newFixedSampleDocsUseCase(repo)

	require.NoError(t, uc.Run(context.Background()))

	// Offsets from the fixed clock: +24h listing, +14d tournament, and the
	// match one hour after the tournament opens. Millisecond precision
	// matches the app's existing scheduling fields.
	assert.Equal(t, "2025-06-02T12:00:00.000Z", repo.docs["listings/listing_central_morning"]["startsAt"])
	assert.Equal(t, "2025-06-02T12:00:00.000Z", repo.docs["bookings/booking_1001"]["startTime"])
	assert.Equal(t, "2025-06-15T12:00:00.000Z", repo.docs["tournaments/tournament_fall"]["startDate"])
	assert.Equal(t, "2025-06-15T13:00:00.000Z", repo.docs["matches/match_fall_01"]["startTime"])
}

func TestSampleDocsStampsUpdatedAt(t *testing.T) {
	repo := newFakeSeedRepository()
	uc := newFixedSampleDocsUseCase(repo)

	require.NoError(t, uc.Run(context.Background()))

	assert.Equal(t, serverStamp, repo.docs["venues/venue_central"]["updatedAt"])

	// The nested message goes through a plain merge and carries its own
	// createdAt, never an updatedAt stamp.
	message := repo.docs["messageThreads/thread_booking_help/messages/msg_001"]
	assert.NotContains(t, message, "updatedAt")
	assert.Equal(t, "thread_booking_help", message["threadId"])
	assert.Equal(t, "Hey coach, is the Saturday slot still free?", message["body"])
}

func TestSampleDocsRerunPreservesForeignFields(t *testing.T) {
	repo := newFakeSeedRepository()
	repo.merge("users", "player_001", map[string]interface{}{
		"displayName": "Renamed By Hand",
		"customFlag":  true,
	})

	uc := newFixedSampleDocsUseCase(repo)
	require.NoError(t, uc.Run(context.Background()))

	doc := repo.docs["users/player_001"]
	assert.Equal(t, true, doc["customFlag"], "fields outside the seed payload survive a reseed")
	assert.Equal(t, "Sam Player", doc["displayName"], "seeded fields are reasserted")
}

func TestSampleDocsRunIsIdempotent(t *testing.T) {
	repo := newFakeSeedRepository()
	uc := newFixedSampleDocsUseCase(repo)

	require.NoError(t, uc.Run(context.Background()))
	first := len(repo.docs)

	require.NoError(t, uc.Run(context.Background()))
	assert.Equal(t, first, len(repo.docs))
}

func TestSampleDocsReportsFirstWriteError(t *testing.T) {
	repo := newFakeSeedRepository()
	repo.failPath = "bookings/booking_1001"
	uc := newFixedSampleDocsUseCase(repo)

	err := uc.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bookings/booking_1001")
}
