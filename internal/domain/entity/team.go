package entity

import (
	"time"
)

// TeamRecord is the subset of a team document needed to build a tournament
// bracket. Logo fields differ across the teams and tournament_teams
// collections, so all known variants are read.
type TeamRecord struct {
	ID              string   `json:"id" firestore:"id"`
	Name            string   `json:"name" firestore:"name"`
	SportType       string   `json:"sport_type" firestore:"sportType"`
	PlayerIDs       []string `json:"player_ids" firestore:"playerIds"`
	ProfileImageURL string   `json:"profile_image_url" firestore:"profileImageUrl"`
	LogoURL         string   `json:"logo_url" firestore:"logoUrl"`
	TeamLogoURL     string   `json:"team_logo_url" firestore:"teamLogoUrl"`
}

func (t *TeamRecord) Logo() string {
	if t.ProfileImageURL != "" {
		return t.ProfileImageURL
	}
	if t.LogoURL != "" {
		return t.LogoURL
	}
	return t.TeamLogoURL
}

// TournamentTeam is a roster fabricated by the showcase seeder when the
// database holds too few rostered teams.
type TournamentTeam struct {
	ID           string    `json:"id" firestore:"id"`
	Name         string    `json:"name" firestore:"name"`
	TournamentID string    `json:"tournament_id" firestore:"tournamentId"`
	SportType    string    `json:"sport_type" firestore:"sportType"`
	CoachName    string    `json:"coach_name" firestore:"coachName"`
	PlayerIDs    []string  `json:"player_ids" firestore:"playerIds"`
	PlayerNames  []string  `json:"player_names" firestore:"playerNames"`
	CreatedAt    time.Time `json:"created_at" firestore:"createdAt"`
	IsActive     bool      `json:"is_active" firestore:"isActive"`
}
