package usecase

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"golang.org/x/sync/errgroup"

	"playaround/internal/domain/repository"
	"playaround/pkg/logger"
)

const (
	day = 24 * time.Hour

	listingLeadTime    = day
	tournamentLeadTime = 14 * day
	matchLeadTime      = 14*day + time.Hour

	// ISO-8601 with millisecond precision, matching how the mobile app
	// formats its scheduling fields.
	isoMillis = "2006-01-02T15:04:05.000Z"
)

// SampleDocsUseCase seeds a deterministic set of development fixtures across
// the core collections. Every write is a merge upsert, so the run is safe to
// repeat and never clobbers fields added by hand.
type SampleDocsUseCase struct {
	seedRepo repository.SeedRepository
	now      func() time.Time
}

func NewSampleDocsUseCase(seedRepo repository.SeedRepository) *SampleDocsUseCase {
	return &SampleDocsUseCase{
		seedRepo: seedRepo,
		now:      time.Now,
	}
}

// Run seeds all collections concurrently and returns the first error. Writes
// are idempotent, so a partial run can simply be retried.
func (uc *SampleDocsUseCase) Run(ctx context.Context) error {
	seeders := []func(context.Context) error{
		uc.seedUsers,
		uc.seedVenues,
		uc.seedCoachListings,
		uc.seedListings,
		uc.seedBookings,
		uc.seedTournaments,
		uc.seedMatches,
		uc.seedTeams,
		uc.seedLeaderboard,
		uc.seedProducts,
		uc.seedPosts,
		uc.seedMessaging,
		uc.seedNotifications,
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, seeder := range seeders {
		seeder := seeder
		g.Go(func() error {
			return seeder(ctx)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("Sample documents created or updated successfully")
	return nil
}

func (uc *SampleDocsUseCase) stamp(offset time.Duration) string {
	return uc.now().Add(offset).UTC().Format(isoMillis)
}

func (uc *SampleDocsUseCase) seedUsers(ctx context.Context) error {
	if err := uc.seedRepo.Upsert(ctx, "users", "player_001", map[string]interface{}{
		"role":         "athlete",
		"displayName":  "Sam Player",
		"email":        "sam.player@example.com",
		"homeClubId":   "club_north",
		"rating":       4.2,
		"lastActiveAt": firestore.ServerTimestamp,
	}); err != nil {
		return err
	}

	if err := uc.seedRepo.Upsert(ctx, "users", "coach_001", map[string]interface{}{
		"role":         "coach",
		"displayName":  "Casey Coach",
		"email":        "casey.coach@example.com",
		"homeClubId":   "club_central",
		"rating":       4.8,
		"lastActiveAt": firestore.ServerTimestamp,
	}); err != nil {
		return err
	}

	return uc.seedRepo.Upsert(ctx, "users", "admin_001", map[string]interface{}{
		"role":         "admin",
		"displayName":  "Al Admin",
		"email":        "al.admin@example.com",
		"lastActiveAt": firestore.ServerTimestamp,
	})
}

func (uc *SampleDocsUseCase) seedVenues(ctx context.Context) error {
	if err := uc.seedRepo.Upsert(ctx, "venues", "venue_central", map[string]interface{}{
		"name":      "Central Courts",
		"city":      "Austin",
		"rating":    4.6,
		"managerId": "coach_001",
		"status":    "active",
	}); err != nil {
		return err
	}

	return uc.seedRepo.Upsert(ctx, "venues", "venue_north", map[string]interface{}{
		"name":      "Northside Dome",
		"city":      "Dallas",
		"rating":    4.1,
		"managerId": "admin_001",
		"status":    "active",
	})
}

func (uc *SampleDocsUseCase) seedCoachListings(ctx context.Context) error {
	return uc.seedRepo.Upsert(ctx, "coachListings", "listing_casey_peak", map[string]interface{}{
		"coachId":      "coach_001",
		"sportId":      "tennis",
		"pricePerHour": 80,
		"rating":       4.8,
		"startsAt":     uc.stamp(0),
	})
}

func (uc *SampleDocsUseCase) seedListings(ctx context.Context) error {
	return uc.seedRepo.Upsert(ctx, "listings", "listing_central_morning", map[string]interface{}{
		"venueId":  "venue_central",
		"coachId":  "coach_001",
		"startsAt": uc.stamp(listingLeadTime),
		"capacity": 8,
		"status":   "open",
	})
}

func (uc *SampleDocsUseCase) seedBookings(ctx context.Context) error {
	return uc.seedRepo.Upsert(ctx, "bookings", "booking_1001", map[string]interface{}{
		"venueId":        "venue_central",
		"userId":         "player_001",
		"coachId":        "coach_001",
		"venueManagerId": "coach_001",
		"startTime":      uc.stamp(listingLeadTime),
		"status":         "confirmed",
	})
}

func (uc *SampleDocsUseCase) seedTournaments(ctx context.Context) error {
	return uc.seedRepo.Upsert(ctx, "tournaments", "tournament_fall", map[string]interface{}{
		"name":      "Fall Classic",
		"seasonId":  "2025_fall",
		"startDate": uc.stamp(tournamentLeadTime),
	})
}

func (uc *SampleDocsUseCase) seedMatches(ctx context.Context) error {
	return uc.seedRepo.Upsert(ctx, "matches", "match_fall_01", map[string]interface{}{
		"tournamentId": "tournament_fall",
		"venueId":      "venue_central",
		"startTime":    uc.stamp(matchLeadTime),
		"homeTeamId":   "team_alpha",
		"awayTeamId":   "team_beta",
	})
}

func (uc *SampleDocsUseCase) seedTeams(ctx context.Context) error {
	if err := uc.seedRepo.Upsert(ctx, "teams", "team_alpha", map[string]interface{}{
		"name":    "Alpha Aces",
		"clubId":  "club_north",
		"coachId": "coach_001",
	}); err != nil {
		return err
	}

	if err := uc.seedRepo.Upsert(ctx, "teams", "team_beta", map[string]interface{}{
		"name":    "Beta Bashers",
		"clubId":  "club_central",
		"coachId": "coach_001",
	}); err != nil {
		return err
	}

	return uc.seedRepo.Upsert(ctx, "teamMembers", "member_alpha_player_001", map[string]interface{}{
		"teamId":    "team_alpha",
		"athleteId": "player_001",
		"coachId":   "coach_001",
		"role":      "starter",
	})
}

func (uc *SampleDocsUseCase) seedLeaderboard(ctx context.Context) error {
	if err := uc.seedRepo.Upsert(ctx, "leaderboardEntries", "leader_fall_alpha", map[string]interface{}{
		"tournamentId": "tournament_fall",
		"teamId":       "team_alpha",
		"score":        12,
		"wins":         4,
	}); err != nil {
		return err
	}

	return uc.seedRepo.Upsert(ctx, "leaderboardEntries", "leader_fall_beta", map[string]interface{}{
		"tournamentId": "tournament_fall",
		"teamId":       "team_beta",
		"score":        8,
		"wins":         2,
	})
}

func (uc *SampleDocsUseCase) seedProducts(ctx context.Context) error {
	return uc.seedRepo.Upsert(ctx, "products", "prod_performance_ball", map[string]interface{}{
		"name":     "Performance Ball Pack",
		"price":    29.99,
		"currency": "USD",
		"tags":     []string{"equipment", "tennis"},
	})
}

func (uc *SampleDocsUseCase) seedPosts(ctx context.Context) error {
	return uc.seedRepo.Upsert(ctx, "posts", "post_training_tips", map[string]interface{}{
		"authorId":    "coach_001",
		"tags":        []string{"training", "tennis"},
		"publishedAt": uc.stamp(0),
		"title":       "Top 5 Footwork Drills",
	})
}

func (uc *SampleDocsUseCase) seedMessaging(ctx context.Context) error {
	if err := uc.seedRepo.Upsert(ctx, "messageThreads", "thread_booking_help", map[string]interface{}{
		"participants": []string{"player_001", "coach_001"},
		"updatedAt":    firestore.ServerTimestamp,
	}); err != nil {
		return err
	}

	// The message document carries its own createdAt and no updatedAt
	// stamp, so it goes through a plain merge.
	return uc.seedRepo.Merge(ctx, "messageThreads/thread_booking_help/messages", "msg_001", map[string]interface{}{
		"threadId":  "thread_booking_help",
		"senderId":  "player_001",
		"createdAt": firestore.ServerTimestamp,
		"body":      "Hey coach, is the Saturday slot still free?",
	})
}

func (uc *SampleDocsUseCase) seedNotifications(ctx context.Context) error {
	return uc.seedRepo.Upsert(ctx, "notifications", "notif_player_booking", map[string]interface{}{
		"userId":    "player_001",
		"createdAt": firestore.ServerTimestamp,
		"type":      "booking_update",
		"bookingId": "booking_1001",
	})
}
