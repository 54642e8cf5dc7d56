package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"playaround/internal/domain/entity"
	"playaround/internal/domain/repository"
)

type firestoreShowcaseRepository struct {
	client *firestore.Client
}

func NewFirestoreShowcaseRepository(client *firestore.Client) repository.ShowcaseRepository {
	return &firestoreShowcaseRepository{
		client: client,
	}
}

func (r *firestoreShowcaseRepository) ListVenues(ctx context.Context, limit int) ([]*entity.Venue, error) {
	iter := r.client.Collection("venues").Limit(limit).Documents(ctx)

	var venues []*entity.Venue
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var venue entity.Venue
		if err := doc.DataTo(&venue); err != nil {
			return nil, err
		}
		venue.ID = doc.Ref.ID
		venues = append(venues, &venue)
	}

	return venues, nil
}

func (r *firestoreShowcaseRepository) ListTeams(ctx context.Context, collection string, limit int) ([]*entity.TeamRecord, error) {
	iter := r.client.Collection(collection).Limit(limit).Documents(ctx)

	var teams []*entity.TeamRecord
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var team entity.TeamRecord
		if err := doc.DataTo(&team); err != nil {
			return nil, err
		}
		team.ID = doc.Ref.ID
		teams = append(teams, &team)
	}

	return teams, nil
}

func (r *firestoreShowcaseRepository) FetchRoster(ctx context.Context, playerIDs []string) ([]entity.RosterPlayer, error) {
	users := r.client.Collection("users")

	var players []entity.RosterPlayer
	for _, playerID := range playerIDs {
		doc, err := users.Doc(playerID).Get(ctx)
		if err != nil {
			// Stale playerIds entries are tolerated; any other backend
			// failure must surface to the caller.
			if isMissingDoc(err) {
				continue
			}
			return nil, err
		}

		players = append(players, rosterPlayerFromDoc(doc.Ref.ID, doc.Data()))
	}

	return players, nil
}

// isMissingDoc reports whether err is the backend's missing-document error,
// as opposed to a transport or permission failure.
func isMissingDoc(err error) bool {
	return status.Code(err) == codes.NotFound
}

func (r *firestoreShowcaseRepository) ListCompleteUsers(ctx context.Context, limit int) ([]entity.RosterPlayer, error) {
	iter := r.client.Collection("users").
		Where("isProfileComplete", "==", true).
		Limit(limit).
		Documents(ctx)

	var players []entity.RosterPlayer
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		players = append(players, rosterPlayerFromDoc(doc.Ref.ID, doc.Data()))
	}

	return players, nil
}

func (r *firestoreShowcaseRepository) CreateTournamentTeam(ctx context.Context, team *entity.TournamentTeam) error {
	_, err := r.client.Collection("tournament_teams").Doc(team.ID).Set(ctx, team)
	return err
}

func (r *firestoreShowcaseRepository) CreateTournament(ctx context.Context, tournament *entity.Tournament) error {
	_, err := r.client.Collection("tournaments").Doc(tournament.ID).Set(ctx, tournament)
	return err
}

func (r *firestoreShowcaseRepository) CreateMatch(ctx context.Context, match *entity.Match) error {
	_, err := r.client.Collection("tournament_matches").Doc(match.ID).Set(ctx, match)
	return err
}

func (r *firestoreShowcaseRepository) SeedReactions(ctx context.Context, matchID, tournamentName, matchStatus string, seededAt time.Time, reactions []entity.Reaction) error {
	parent := r.client.Collection("matches").Doc(matchID)
	_, err := parent.Set(ctx, map[string]interface{}{
		"matchId":        matchID,
		"tournamentName": tournamentName,
		"status":         matchStatus,
		"createdAt":      seededAt,
	}, firestore.MergeAll)
	if err != nil {
		return err
	}

	reactionsRef := parent.Collection("reactions")
	for _, reaction := range reactions {
		if _, _, err := reactionsRef.Add(ctx, reaction); err != nil {
			return err
		}
	}

	return nil
}

func rosterPlayerFromDoc(id string, data map[string]interface{}) entity.RosterPlayer {
	player := entity.RosterPlayer{
		UID:      id,
		FullName: "Player",
	}
	if name, ok := data["fullName"].(string); ok && name != "" {
		player.FullName = name
	}
	if avatar, ok := data["profilePictureUrl"].(string); ok {
		player.AvatarURL = avatar
	}
	return player
}
