package entity

import (
	"time"
)

type TeamScore struct {
	TeamID            string                 `json:"team_id" firestore:"teamId"`
	TeamName          string                 `json:"team_name" firestore:"teamName"`
	TeamLogoURL       string                 `json:"team_logo_url" firestore:"teamLogoUrl"`
	Score             int                    `json:"score" firestore:"score"`
	PlayerIDs         []string               `json:"player_ids" firestore:"playerIds"`
	SportSpecificData map[string]interface{} `json:"sport_specific_data" firestore:"sportSpecificData"`
}

type CommentaryEntry struct {
	ID        string `json:"id" firestore:"id"`
	Text      string `json:"text" firestore:"text"`
	Timestamp string `json:"timestamp" firestore:"timestamp"`
	Minute    string `json:"minute" firestore:"minute"`
	EventType string `json:"event_type" firestore:"eventType"`
}

// PlayerMatchStats covers every supported sport in one document shape; the
// app only renders the fields relevant to the match's sportType.
type PlayerMatchStats struct {
	PlayerID       string                 `json:"player_id" firestore:"playerId"`
	PlayerName     string                 `json:"player_name" firestore:"playerName"`
	PlayerImageURL string                 `json:"player_image_url" firestore:"playerImageUrl"`
	Goals          int                    `json:"goals" firestore:"goals"`
	Assists        int                    `json:"assists" firestore:"assists"`
	YellowCards    int                    `json:"yellow_cards" firestore:"yellowCards"`
	RedCards       int                    `json:"red_cards" firestore:"redCards"`
	Runs           int                    `json:"runs" firestore:"runs"`
	Balls          int                    `json:"balls" firestore:"balls"`
	Wickets        int                    `json:"wickets" firestore:"wickets"`
	Catches        int                    `json:"catches" firestore:"catches"`
	Points         int                    `json:"points" firestore:"points"`
	Rebounds       int                    `json:"rebounds" firestore:"rebounds"`
	Steals         int                    `json:"steals" firestore:"steals"`
	Fouls          int                    `json:"fouls" firestore:"fouls"`
	Saves          int                    `json:"saves" firestore:"saves"`
	CustomStats    map[string]interface{} `json:"custom_stats" firestore:"customStats"`
}

type MatchMetadata struct {
	MatchStats  map[string]map[string]int `json:"match_stats" firestore:"matchStats"`
	SampleMatch bool                      `json:"sample_match" firestore:"sampleMatch"`
}

type Match struct {
	ID               string             `json:"id" firestore:"id"`
	TournamentID     string             `json:"tournament_id" firestore:"tournamentId"`
	TournamentName   string             `json:"tournament_name" firestore:"tournamentName"`
	SportType        string             `json:"sport_type" firestore:"sportType"`
	Team1            TeamScore          `json:"team1" firestore:"team1"`
	Team2            TeamScore          `json:"team2" firestore:"team2"`
	MatchNumber      string             `json:"match_number" firestore:"matchNumber"`
	Round            string             `json:"round" firestore:"round"`
	ScheduledTime    time.Time          `json:"scheduled_time" firestore:"scheduledTime"`
	ActualStartTime  *time.Time         `json:"actual_start_time" firestore:"actualStartTime"`
	ActualEndTime    *time.Time         `json:"actual_end_time" firestore:"actualEndTime"`
	Status           string             `json:"status" firestore:"status"`
	Commentary       []CommentaryEntry  `json:"commentary" firestore:"commentary"`
	Team1PlayerStats []PlayerMatchStats `json:"team1_player_stats" firestore:"team1PlayerStats"`
	Team2PlayerStats []PlayerMatchStats `json:"team2_player_stats" firestore:"team2PlayerStats"`
	Result           string             `json:"result" firestore:"result"`
	WinnerTeamID     *string            `json:"winner_team_id" firestore:"winnerTeamId"`
	VenueID          string             `json:"venue_id" firestore:"venueId"`
	VenueName        string             `json:"venue_name" firestore:"venueName"`
	CreatedAt        time.Time          `json:"created_at" firestore:"createdAt"`
	UpdatedAt        time.Time          `json:"updated_at" firestore:"updatedAt"`
	Metadata         MatchMetadata      `json:"metadata" firestore:"metadata"`
}

// Reaction is a single emoji reaction under matches/{matchId}/reactions.
type Reaction struct {
	UserID    string    `json:"user_id" firestore:"userId"`
	UserName  string    `json:"user_name" firestore:"userName"`
	Emoji     string    `json:"emoji" firestore:"emoji"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
