package entity

import (
	"time"
)

type VenueSnapshot struct {
	ID       string `json:"id" firestore:"id"`
	Title    string `json:"title" firestore:"title"`
	ImageURL string `json:"image_url" firestore:"imageUrl"`
}

type TournamentMetadata struct {
	SampleTournament bool          `json:"sample_tournament" firestore:"sampleTournament"`
	VenueSnapshot    VenueSnapshot `json:"venue_snapshot" firestore:"venueSnapshot"`
}

// Tournament is the showcase tournament document. It is written with a full
// Set, so the struct carries the complete payload.
type Tournament struct {
	ID                    string             `json:"id" firestore:"id"`
	Name                  string             `json:"name" firestore:"name"`
	Description           string             `json:"description" firestore:"description"`
	SportType             string             `json:"sport_type" firestore:"sportType"`
	Format                string             `json:"format" firestore:"format"`
	Status                string             `json:"status" firestore:"status"`
	OrganizerID           string             `json:"organizer_id" firestore:"organizerId"`
	OrganizerName         string             `json:"organizer_name" firestore:"organizerName"`
	RegistrationStartDate time.Time          `json:"registration_start_date" firestore:"registrationStartDate"`
	RegistrationEndDate   time.Time          `json:"registration_end_date" firestore:"registrationEndDate"`
	StartDate             time.Time          `json:"start_date" firestore:"startDate"`
	EndDate               time.Time          `json:"end_date" firestore:"endDate"`
	MaxTeams              int                `json:"max_teams" firestore:"maxTeams"`
	MinTeams              int                `json:"min_teams" firestore:"minTeams"`
	CurrentTeamsCount     int                `json:"current_teams_count" firestore:"currentTeamsCount"`
	Location              string             `json:"location" firestore:"location"`
	VenueID               string             `json:"venue_id" firestore:"venueId"`
	VenueName             string             `json:"venue_name" firestore:"venueName"`
	ImageURL              string             `json:"image_url" firestore:"imageUrl"`
	Rules                 []string           `json:"rules" firestore:"rules"`
	Prizes                map[string]string  `json:"prizes" firestore:"prizes"`
	IsPublic              bool               `json:"is_public" firestore:"isPublic"`
	CreatedAt             time.Time          `json:"created_at" firestore:"createdAt"`
	UpdatedAt             time.Time          `json:"updated_at" firestore:"updatedAt"`
	EntryFee              float64            `json:"entry_fee" firestore:"entryFee"`
	WinningPrize          float64            `json:"winning_prize" firestore:"winningPrize"`
	TeamPoints            map[string]int     `json:"team_points" firestore:"teamPoints"`
	AllowTeamEditing      bool               `json:"allow_team_editing" firestore:"allowTeamEditing"`
	Metadata              TournamentMetadata `json:"metadata" firestore:"metadata"`
}
