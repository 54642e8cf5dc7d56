package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"playaround/internal/domain/entity"
	"playaround/internal/domain/repository"
	"playaround/pkg/errors"
	"playaround/pkg/logger"
)

const showcaseTeamCount = 4

// teamContext is the in-memory view of a team while the showcase graph is
// being assembled: the stored record plus its resolved roster.
type teamContext struct {
	id           string
	name         string
	logo         string
	sportType    string
	playerIDs    []string
	players      []entity.RosterPlayer
	tournamentID string
}

// MatchSummary records one seeded match for the run report.
type MatchSummary struct {
	ID            string
	Status        string
	MatchNumber   string
	ScheduledTime time.Time
}

// SeedSummary is the run report returned to the caller.
type SeedSummary struct {
	TournamentID   string
	TournamentName string
	VenueName      string
	Matches        []MatchSummary
}

// TournamentSeedUseCase builds a showcase tournament on top of existing
// documents: it picks a venue and rostered teams, fabricates teams from user
// profiles when the database holds too few, and writes a tournament with
// three matches in different lifecycle states plus commentary, player stats
// and reactions.
type TournamentSeedUseCase struct {
	showcaseRepo   repository.ShowcaseRepository
	tournamentName string
	now            time.Time
	rng            *rand.Rand
}

func NewTournamentSeedUseCase(showcaseRepo repository.ShowcaseRepository, tournamentName string) *TournamentSeedUseCase {
	return &TournamentSeedUseCase{
		showcaseRepo:   showcaseRepo,
		tournamentName: tournamentName,
		now:            time.Now().UTC(),
		rng:            rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (uc *TournamentSeedUseCase) Run(ctx context.Context) (*SeedSummary, error) {
	venue, err := uc.pickVenue(ctx)
	if err != nil {
		return nil, err
	}

	teams, err := uc.pickTeams(ctx, showcaseTeamCount, "")
	if err != nil {
		return nil, err
	}

	sportType := "football"
	if len(teams) > 0 {
		sportType = teams[0].sportType
	}

	tournamentID, err := uc.createTournament(ctx, venue, teams, sportType)
	if err != nil {
		return nil, err
	}

	// Teams fabricated before the tournament existed carry an empty
	// tournamentId; re-pick so bootstrapped rosters get linked.
	for _, team := range teams {
		if team.tournamentID == "" {
			teams, err = uc.pickTeams(ctx, showcaseTeamCount, tournamentID)
			if err != nil {
				return nil, err
			}
			break
		}
	}

	matches, err := uc.createMatches(ctx, tournamentID, venue, teams, sportType)
	if err != nil {
		return nil, err
	}

	return &SeedSummary{
		TournamentID:   tournamentID,
		TournamentName: uc.tournamentName,
		VenueName:      venue.DisplayName(),
		Matches:        matches,
	}, nil
}

func (uc *TournamentSeedUseCase) pickVenue(ctx context.Context) (*entity.Venue, error) {
	venues, err := uc.showcaseRepo.ListVenues(ctx, 5)
	if err != nil {
		return nil, err
	}
	if len(venues) == 0 {
		return nil, errors.NotFound("Venue", nil)
	}

	return venues[uc.rng.Intn(len(venues))], nil
}

func (uc *TournamentSeedUseCase) pickTeams(ctx context.Context, count int, pendingTournamentID string) ([]*teamContext, error) {
	var candidates []*teamContext

	for _, collection := range []string{"tournament_teams", "teams"} {
		records, err := uc.showcaseRepo.ListTeams(ctx, collection, count*3)
		if err != nil {
			return nil, err
		}

		for _, record := range records {
			if len(record.PlayerIDs) < 3 {
				continue
			}

			probe := record.PlayerIDs
			if len(probe) > 5 {
				probe = probe[:5]
			}
			players, err := uc.showcaseRepo.FetchRoster(ctx, probe)
			if err != nil {
				return nil, err
			}
			if len(players) < 3 {
				continue
			}

			sportType := strings.ToLower(record.SportType)
			if sportType == "" {
				sportType = "football"
			}
			name := record.Name
			if name == "" {
				name = "Team"
			}

			candidates = append(candidates, &teamContext{
				id:        record.ID,
				name:      name,
				logo:      record.Logo(),
				sportType: sportType,
				playerIDs: record.PlayerIDs,
				players:   players,
			})
		}

		if len(candidates) >= count {
			break
		}
	}

	if len(candidates) < count {
		needed := count - len(candidates)
		logger.Warn("Only found %d rostered teams. Bootstrapping %d teams from existing users...", len(candidates), needed)

		fabricated, err := uc.bootstrapTeams(ctx, needed, pendingTournamentID)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, fabricated...)
	}

	if len(candidates) < count {
		return nil, errors.BadRequest("unable to assemble enough rostered tournament teams; seed more player profiles first", nil)
	}

	uc.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	return candidates[:count], nil
}

func (uc *TournamentSeedUseCase) bootstrapTeams(ctx context.Context, needed int, pendingTournamentID string) ([]*teamContext, error) {
	players, err := uc.showcaseRepo.ListCompleteUsers(ctx, needed*10)
	if err != nil {
		return nil, err
	}
	if len(players) < needed*5 {
		return nil, errors.BadRequest("not enough complete player profiles to fabricate teams", nil)
	}

	uc.rng.Shuffle(len(players), func(i, j int) {
		players[i], players[j] = players[j], players[i]
	})

	sports := []string{"football", "futsal", "cricket"}
	var created []*teamContext

	for idx := 0; idx < needed; idx++ {
		if idx*6 >= len(players) {
			break
		}
		roster := players[idx*6:]
		if len(roster) > 6 {
			roster = roster[:6]
		}
		if len(roster) < 4 {
			break
		}

		sport := sports[uc.rng.Intn(len(sports))]
		name := fmt.Sprintf("Auto %s Club %d", titleCase(sport), idx+1)

		playerIDs := make([]string, len(roster))
		playerNames := make([]string, len(roster))
		for i, player := range roster {
			playerIDs[i] = player.UID
			playerNames[i] = player.FullName
		}

		team := &entity.TournamentTeam{
			ID:           uuid.New().String(),
			Name:         name,
			TournamentID: pendingTournamentID,
			SportType:    sport,
			CoachName:    roster[0].FullName,
			PlayerIDs:    playerIDs,
			PlayerNames:  playerNames,
			CreatedAt:    uc.now,
			IsActive:     true,
		}
		if err := uc.showcaseRepo.CreateTournamentTeam(ctx, team); err != nil {
			return nil, err
		}

		created = append(created, &teamContext{
			id:           team.ID,
			name:         name,
			sportType:    sport,
			playerIDs:    playerIDs,
			players:      roster,
			tournamentID: pendingTournamentID,
		})
	}

	return created, nil
}

func (uc *TournamentSeedUseCase) createTournament(ctx context.Context, venue *entity.Venue, teams []*teamContext, sportType string) (string, error) {
	organizer := teams[0].players[0]

	location := venue.Location
	if location == "" {
		location = "Pakistan"
	}

	tournament := &entity.Tournament{
		ID:                    uuid.New().String(),
		Name:                  uc.tournamentName,
		Description:           "High-visibility invitational showcasing app features.",
		SportType:             sportType,
		Format:                "league",
		Status:                "ongoing",
		OrganizerID:           organizer.UID,
		OrganizerName:         organizer.FullName,
		RegistrationStartDate: uc.now.Add(-30 * day),
		RegistrationEndDate:   uc.now.Add(-10 * day),
		StartDate:             uc.now.Add(-3 * day),
		EndDate:               uc.now.Add(14 * day),
		MaxTeams:              len(teams),
		MinTeams:              2,
		CurrentTeamsCount:     len(teams),
		Location:              location,
		VenueID:               venue.ID,
		VenueName:             venue.DisplayName(),
		ImageURL:              venue.PrimaryImage(),
		Rules: []string{
			"FIFA regulation timing",
			"Max 5 substitutes per match",
			"Yellow card accumulation rules apply",
		},
		Prizes: map[string]string{
			"champion": "PKR 200,000",
			"runnerUp": "PKR 75,000",
			"mvp":      "Flagship kit + cash bonus",
		},
		IsPublic:         true,
		CreatedAt:        uc.now,
		UpdatedAt:        uc.now,
		EntryFee:         5000.0,
		WinningPrize:     200000.0,
		TeamPoints:       map[string]int{},
		AllowTeamEditing: false,
		Metadata: entity.TournamentMetadata{
			SampleTournament: true,
			VenueSnapshot: entity.VenueSnapshot{
				ID:       venue.ID,
				Title:    venue.DisplayName(),
				ImageURL: venue.PrimaryImage(),
			},
		},
	}

	if err := uc.showcaseRepo.CreateTournament(ctx, tournament); err != nil {
		return "", err
	}

	return tournament.ID, nil
}

type matchSpec struct {
	status        string
	scheduledTime time.Time
	startOffset   *time.Duration
	endOffset     *time.Duration
	team1         *teamContext
	team2         *teamContext
	score1        int
	score2        int
	round         string
}

func offset(d time.Duration) *time.Duration { return &d }

func (uc *TournamentSeedUseCase) createMatches(ctx context.Context, tournamentID string, venue *entity.Venue, teams []*teamContext, sportType string) ([]MatchSummary, error) {
	baseSchedule := uc.now.Truncate(time.Hour)

	specs := []matchSpec{
		{
			status:        "completed",
			scheduledTime: baseSchedule.Add(-(2*day + 2*time.Hour)),
			startOffset:   offset(-2 * time.Hour),
			endOffset:     offset(-18 * time.Minute),
			team1:         teams[0],
			team2:         teams[1],
			score1:        3,
			score2:        2,
			round:         "Group Stage",
		},
		{
			status:        "live",
			scheduledTime: baseSchedule,
			startOffset:   offset(-40 * time.Minute),
			team1:         teams[2],
			team2:         teams[3],
			score1:        1,
			score2:        1,
			round:         "Group Stage",
		},
		{
			status:        "scheduled",
			scheduledTime: baseSchedule.Add(day + 3*time.Hour),
			team1:         teams[0],
			team2:         teams[2],
			score1:        0,
			score2:        0,
			round:         "Semi Final",
		},
	}

	var summaries []MatchSummary
	for index, spec := range specs {
		matchNumber := fmt.Sprintf("Match %d", index+1)
		summary, err := uc.writeMatch(ctx, matchNumber, tournamentID, venue, sportType, spec)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

func (uc *TournamentSeedUseCase) writeMatch(ctx context.Context, matchNumber, tournamentID string, venue *entity.Venue, sportType string, spec matchSpec) (MatchSummary, error) {
	matchID := uuid.New().String()

	var actualStart, actualEnd *time.Time
	if spec.startOffset != nil {
		t := spec.scheduledTime.Add(*spec.startOffset)
		actualStart = &t
	}
	if spec.endOffset != nil {
		t := spec.scheduledTime.Add(*spec.endOffset)
		actualEnd = &t
	}

	match := &entity.Match{
		ID:               matchID,
		TournamentID:     tournamentID,
		TournamentName:   uc.tournamentName,
		SportType:        sportType,
		Team1:            uc.buildTeamScore(spec.team1, spec.score1),
		Team2:            uc.buildTeamScore(spec.team2, spec.score2),
		MatchNumber:      matchNumber,
		Round:            spec.round,
		ScheduledTime:    spec.scheduledTime,
		ActualStartTime:  actualStart,
		ActualEndTime:    actualEnd,
		Status:           spec.status,
		Commentary:       uc.buildCommentary(matchID, spec.scheduledTime, spec.team1, spec.team2),
		Team1PlayerStats: uc.buildPlayerStats(spec.team1, 1.2, spec.status),
		Team2PlayerStats: uc.buildPlayerStats(spec.team2, 1.0, spec.status),
		Result:           describeResult(spec.team1, spec.team2, spec.score1, spec.score2),
		WinnerTeamID:     winnerID(spec.team1, spec.team2, spec.score1, spec.score2),
		VenueID:          venue.ID,
		VenueName:        venue.DisplayName(),
		CreatedAt:        uc.now,
		UpdatedAt:        uc.now,
		Metadata: entity.MatchMetadata{
			MatchStats: map[string]map[string]int{
				"possession": {spec.team1.id: 52, spec.team2.id: 48},
				"totalShots": {spec.team1.id: 11, spec.team2.id: 9},
				"fouls":      {spec.team1.id: 12, spec.team2.id: 10},
			},
			SampleMatch: true,
		},
	}

	if err := uc.showcaseRepo.CreateMatch(ctx, match); err != nil {
		return MatchSummary{}, err
	}

	if err := uc.seedReactions(ctx, matchID, spec.team1, spec.team2, spec.status); err != nil {
		return MatchSummary{}, err
	}

	return MatchSummary{
		ID:            matchID,
		Status:        spec.status,
		MatchNumber:   matchNumber,
		ScheduledTime: spec.scheduledTime,
	}, nil
}

func (uc *TournamentSeedUseCase) buildTeamScore(team *teamContext, score int) entity.TeamScore {
	playerIDs := team.playerIDs
	if len(playerIDs) > 10 {
		playerIDs = playerIDs[:10]
	}

	return entity.TeamScore{
		TeamID:      team.id,
		TeamName:    team.name,
		TeamLogoURL: team.logo,
		Score:       score,
		PlayerIDs:   playerIDs,
		SportSpecificData: map[string]interface{}{
			"attempts": uc.randomBetween(6, 15),
			"cards":    uc.randomBetween(0, 3),
			"corners":  uc.randomBetween(2, 8),
		},
	}
}

func (uc *TournamentSeedUseCase) buildPlayerStats(team *teamContext, intensity float64, status string) []entity.PlayerMatchStats {
	roster := team.players
	if len(roster) > 5 {
		roster = roster[:5]
	}

	stats := make([]entity.PlayerMatchStats, 0, len(roster))
	for _, player := range roster {
		entry := entity.PlayerMatchStats{
			PlayerID:       player.UID,
			PlayerName:     player.FullName,
			PlayerImageURL: player.AvatarURL,
			Goals:          int(uc.rng.Float64() * 3 * intensity),
			Assists:        int(uc.rng.Float64() * 2 * intensity),
			YellowCards:    int(uc.rng.Float64() * 1.2 * intensity),
			RedCards:       0,
			Runs:           uc.randomBetween(20, 45),
			Balls:          uc.randomBetween(25, 60),
			Wickets:        0,
			Catches:        uc.randomBetween(0, 3),
			Points:         uc.randomBetween(10, 25),
			Rebounds:       uc.randomBetween(1, 6),
			Steals:         uc.randomBetween(0, 3),
			Fouls:          uc.randomBetween(0, 4),
			Saves:          uc.randomBetween(0, 5),
			CustomStats: map[string]interface{}{
				"keyPasses":   uc.randomBetween(1, 5),
				"heatMapZone": []string{"Left Wing", "Right Wing", "Central"}[uc.rng.Intn(3)],
				"distanceKm":  float64(int((4.5+uc.rng.Float64()*5.7)*10)) / 10,
			},
		}

		if status == "scheduled" {
			entry.Goals = 0
			entry.Assists = 0
			entry.CustomStats = map[string]interface{}{"readiness": "Awaiting kickoff"}
		}

		stats = append(stats, entry)
	}

	return stats
}

func (uc *TournamentSeedUseCase) buildCommentary(matchID string, scheduledTime time.Time, team1, team2 *teamContext) []entity.CommentaryEntry {
	moments := []string{
		fmt.Sprintf("%s warms up confidently.", team1.name),
		fmt.Sprintf("%s responds with an aggressive press.", team2.name),
		fmt.Sprintf("%s opens the scoring with a low drive.", team1.name),
		"Halftime team talks are heated.",
		fmt.Sprintf("%s equalizes from a set piece.", team2.name),
		fmt.Sprintf("%s restores the lead with a curling effort.", team1.name),
	}

	idPrefix := matchID
	if len(idPrefix) > 4 {
		idPrefix = idPrefix[:4]
	}

	entries := make([]entity.CommentaryEntry, 0, len(moments))
	current := scheduledTime
	for i, text := range moments {
		minute := i + 3
		current = current.Add(time.Duration(uc.randomBetween(3, 7)) * time.Minute)
		entries = append(entries, entity.CommentaryEntry{
			ID:        fmt.Sprintf("c_%s_%d", idPrefix, minute),
			Text:      text,
			Timestamp: current.Format(time.RFC3339),
			Minute:    strconv.Itoa(minute),
			EventType: "highlight",
		})
	}

	return entries
}

func (uc *TournamentSeedUseCase) seedReactions(ctx context.Context, matchID string, team1, team2 *teamContext, status string) error {
	sampleUsers := append(append([]entity.RosterPlayer{}, team1.players...), team2.players...)
	if len(sampleUsers) > 5 {
		sampleUsers = sampleUsers[:5]
	}

	emojis := []string{"👏", "🔥", "💪", "⚽", "🙌"}
	seedTime := uc.now.Add(-day)

	reactions := make([]entity.Reaction, 0, len(sampleUsers))
	for idx, user := range sampleUsers {
		reactions = append(reactions, entity.Reaction{
			UserID:    user.UID,
			UserName:  user.FullName,
			Emoji:     emojis[idx%len(emojis)],
			CreatedAt: seedTime.Add(time.Duration(idx*8) * time.Minute),
		})
	}

	return uc.showcaseRepo.SeedReactions(ctx, matchID, uc.tournamentName, status, uc.now, reactions)
}

func (uc *TournamentSeedUseCase) randomBetween(min, max int) int {
	return min + uc.rng.Intn(max-min+1)
}

// winnerID returns nil on a draw so the stored field is null rather than an
// empty id.
func winnerID(team1, team2 *teamContext, score1, score2 int) *string {
	if score1 > score2 {
		return &team1.id
	}
	if score2 > score1 {
		return &team2.id
	}
	return nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func describeResult(team1, team2 *teamContext, score1, score2 int) string {
	if score1 == score2 {
		return fmt.Sprintf("%s drew %s (%d-%d)", team1.name, team2.name, score1, score2)
	}
	winner := team1.name
	if score2 > score1 {
		winner = team2.name
	}
	return fmt.Sprintf("%s won %d-%d", winner, score1, score2)
}
