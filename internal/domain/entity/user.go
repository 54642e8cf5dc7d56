package entity

import (
	"time"
)

// ConnectionEntry is a denormalized follower/following row embedded in user
// and public profile documents.
type ConnectionEntry struct {
	UserID      string `json:"user_id" firestore:"userId"`
	Name        string `json:"name" firestore:"name"`
	AvatarURL   string `json:"avatar_url" firestore:"avatarUrl"`
	IsFollowing bool   `json:"is_following" firestore:"isFollowing"`
}

// User is the root account document at users/{uid}. The profile seeder
// writes it with a full replace, so every field is always present.
type User struct {
	UID               string   `json:"uid" firestore:"uid"`
	FullName          string   `json:"full_name" firestore:"fullName"`
	Nickname          string   `json:"nickname" firestore:"nickname"`
	Bio               string   `json:"bio" firestore:"bio"`
	Gender            string   `json:"gender" firestore:"gender"`
	Age               int      `json:"age" firestore:"age"`
	Location          string   `json:"location" firestore:"location"`
	Latitude          float64  `json:"latitude" firestore:"latitude"`
	Longitude         float64  `json:"longitude" firestore:"longitude"`
	ProfilePictureURL string   `json:"profile_picture_url" firestore:"profilePictureUrl"`
	ProfilePhotos     []string `json:"profile_photos" firestore:"profilePhotos"`

	Followers         []ConnectionEntry `json:"followers" firestore:"followers"`
	Following         []ConnectionEntry `json:"following" firestore:"following"`
	MutualConnections []ConnectionEntry `json:"mutual_connections" firestore:"mutualConnections"`

	Role              string `json:"role" firestore:"role"`
	IsProfileComplete bool   `json:"is_profile_complete" firestore:"isProfileComplete"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// RosterPlayer is the in-memory view of a users document needed to place a
// player on a tournament roster. Not persisted on its own.
type RosterPlayer struct {
	UID       string
	FullName  string
	AvatarURL string
}
