package repository

import (
	"context"
	"time"

	"playaround/internal/domain/entity"
)

// ShowcaseRepository reads existing seeded data and writes the showcase
// tournament graph built on top of it.
type ShowcaseRepository interface {
	ListVenues(ctx context.Context, limit int) ([]*entity.Venue, error)
	ListTeams(ctx context.Context, collection string, limit int) ([]*entity.TeamRecord, error)
	FetchRoster(ctx context.Context, playerIDs []string) ([]entity.RosterPlayer, error)
	ListCompleteUsers(ctx context.Context, limit int) ([]entity.RosterPlayer, error)

	CreateTournamentTeam(ctx context.Context, team *entity.TournamentTeam) error
	CreateTournament(ctx context.Context, tournament *entity.Tournament) error
	CreateMatch(ctx context.Context, match *entity.Match) error
	SeedReactions(ctx context.Context, matchID, tournamentName, status string, seededAt time.Time, reactions []entity.Reaction) error
}
