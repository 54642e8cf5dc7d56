package usecase

import (
	"time"

	"playaround/internal/domain/entity"
)

const (
	seedDisplayName       = "Ayaan Malik"
	seedProfilePictureURL = "https://res.cloudinary.com/demo/image/upload/v1700000000/playaround/ayaan/profile.jpg"
	seedCoverMediaURL     = "https://images.unsplash.com/photo-1521412644187-c49fa049e84d?auto=format&fit=crop&w=1600&q=80"
	seedBio               = "Explosive winger comfortable on either flank. Thrives in high-tempo systems and brings data-driven match prep to every squad."
)

func mediaURL(suffix string) string {
	return "https://res.cloudinary.com/demo/image/upload/v1700000000/playaround/" + suffix
}

func baseUserDoc(uid string, now time.Time) *entity.User {
	return &entity.User{
		UID:               uid,
		FullName:          seedDisplayName,
		Nickname:          "SkyStride",
		Bio:               seedBio,
		Gender:            "male",
		Age:               24,
		Location:          "Karachi, Pakistan",
		Latitude:          24.8607,
		Longitude:         67.0011,
		ProfilePictureURL: seedProfilePictureURL,
		ProfilePhotos: []string{
			mediaURL("matchmaking/ayaan_1.jpg"),
			mediaURL("matchmaking/ayaan_2.jpg"),
			mediaURL("matchmaking/ayaan_3.jpg"),
		},
		Followers: []entity.ConnectionEntry{
			{UserID: "follower_lara", Name: "Lara Ibrahim", AvatarURL: mediaURL("followers/lara.jpg"), IsFollowing: true},
			{UserID: "follower_nabeel", Name: "Nabeel Farooq", AvatarURL: mediaURL("followers/nabeel.jpg"), IsFollowing: true},
			{UserID: "follower_emma", Name: "Emma Johnson", AvatarURL: mediaURL("followers/emma.jpg"), IsFollowing: false},
		},
		Following: []entity.ConnectionEntry{
			{UserID: "following_mikael", Name: "Coach Mikael", AvatarURL: mediaURL("following/mikael.jpg"), IsFollowing: true},
			{UserID: "following_samira", Name: "Coach Samira", AvatarURL: mediaURL("following/samira.jpg"), IsFollowing: true},
			{UserID: "following_thunder_fc", Name: "Thunder FC", AvatarURL: mediaURL("teams/thunder_fc.jpg"), IsFollowing: true},
		},
		MutualConnections: []entity.ConnectionEntry{
			{UserID: "follower_lara", Name: "Lara Ibrahim", AvatarURL: mediaURL("followers/lara.jpg"), IsFollowing: true},
			{UserID: "following_mikael", Name: "Coach Mikael", AvatarURL: mediaURL("following/mikael.jpg"), IsFollowing: true},
		},
		Role:              "player",
		IsProfileComplete: true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func playerProfileDoc() map[string]interface{} {
	return map[string]interface{}{
		"sportsOfInterest": []string{"Football", "Futsal", "Padel"},
		"skillLevel":       "elite",
		"availability": []map[string]interface{}{
			{"day": "Mon", "startTime": "19:00", "endTime": "22:00"},
			{"day": "Wed", "startTime": "19:00", "endTime": "22:00"},
			{"day": "Sat", "startTime": "10:00", "endTime": "14:00"},
		},
		"preferredTrainingType": "both",
	}
}

func publicProfileDoc(uid string, now time.Time) map[string]interface{} {
	thunderFC := map[string]interface{}{
		"id":        "team_thunder_fc",
		"title":     "Thunder FC",
		"subtitle":  "Karachi Premier League",
		"role":      "Captain & RW",
		"imageUrl":  mediaURL("teams/thunder_fc.jpg"),
		"tags":      []string{"High Press", "Title Holders"},
		"ownerName": "Manager Adeel Khattak",
		"ownerId":   "user_manager_adeel",
	}
	championsCup := map[string]interface{}{
		"id":        "tournament_champions_cup",
		"title":     "PlayAround Champions Cup 2024",
		"subtitle":  "International Showcase",
		"role":      "MVP & Golden Boot",
		"imageUrl":  mediaURL("tournaments/champions_cup.jpg"),
		"tags":      []string{"MVP", "Champion"},
		"ownerName": "PlayAround Events Desk",
		"ownerId":   "organization_playaround_events",
	}
	coachSamira := map[string]interface{}{
		"id":        "coach_samira",
		"title":     "Coach Samira Akhtar",
		"subtitle":  "Attack Specialist • UEFA B",
		"role":      "Personal Mentor",
		"imageUrl":  mediaURL("coaches/samira.jpg"),
		"tags":      []string{"Finishing", "Acceleration"},
		"ownerName": "Coach Samira",
		"ownerId":   "coach_samira_uid",
	}

	return map[string]interface{}{
		"userId": uid,
		"identity": map[string]interface{}{
			"fullName":          seedDisplayName,
			"role":              "Elite Wing Forward",
			"tagline":           "Captain • Thunder FC | MVP 2024",
			"city":              "Karachi, Pakistan",
			"age":               24,
			"profilePictureUrl": seedProfilePictureURL,
			"coverMediaUrl":     seedCoverMediaURL,
			"badges": []string{
				"⚡️ 2024 Tournament MVP",
				"🏆 City League Champion",
				"🎯 97% Training Consistency",
			},
			"isVerified": true,
		},
		"stats": []map[string]interface{}{
			{"label": "Posts", "value": 12, "icon": "article_outlined"},
			{"label": "Swipe matches", "value": 6, "icon": "link_rounded"},
			{"label": "Following", "value": 24, "icon": "favorite_outline"},
			{"label": "Followers", "value": 312, "icon": "groups_3_outlined"},
		},
		"postsCount":         12,
		"matchesCount":       6,
		"followersCount":     312,
		"followingCount":     24,
		"isFollowing":        false,
		"isFollowedByViewer": false,
		"about": map[string]interface{}{
			"bio":          seedBio,
			"sports":       []string{"Football", "Futsal", "Padel"},
			"position":     "Right/Left Wing",
			"availability": "Available for elite futsal and 7-a-side tournaments",
			"highlights": []string{
				"Led Thunder FC to back-to-back league titles",
				"Recorded 9 goals and 4 assists at PlayAround Champions Cup 2024",
				"Hosts weekly acceleration clinics for youth squads",
			},
			"attributes": map[string]interface{}{
				"Dominant Foot":       "Right",
				"Preferred Formation": "4-3-3 / 3-4-3",
				"Training Focus":      "Acceleration & Pressing",
				"Languages":           "English, Urdu",
			},
			"statusMessage": "Looking to collaborate with performance analysts and conditioning coaches.",
		},
		"skillPerformance": map[string]interface{}{
			"overallRating": 94,
			"metrics": []map[string]interface{}{
				{
					"name":        "Acceleration",
					"score":       96,
					"maxScore":    100,
					"description": "0-30m sprint in 3.98s; maintains burst late in matches.",
					"icon":        "flash_on",
				},
				{
					"name":        "Vision",
					"score":       92,
					"maxScore":    100,
					"description": "Averages 5 key passes per match with radar-guided scouting.",
					"icon":        "remove_red_eye",
				},
				{
					"name":        "Stamina",
					"score":       95,
					"maxScore":    100,
					"description": "Completes 97% of scheduled endurance drills each block.",
					"icon":        "favorite",
				},
			},
			"trends": []map[string]interface{}{
				{"label": "Feb", "value": 86},
				{"label": "Mar", "value": 88},
				{"label": "Apr", "value": 90},
				{"label": "May", "value": 93},
				{"label": "Jun", "value": 95},
			},
			"achievements": []map[string]interface{}{
				{
					"title":    "MVP • Champions Cup",
					"subtitle": "Golden Boot with 9 goals",
					"icon":     "emoji_events",
					"date":     now,
				},
			},
		},
		"associations": map[string]interface{}{
			"teams": []map[string]interface{}{
				withField(thunderFC, "location", "Karachi"),
			},
			"tournaments": []map[string]interface{}{championsCup},
			"venues": []map[string]interface{}{
				{
					"id":        "venue_riverside_arena",
					"title":     "Riverside Arena",
					"subtitle":  "Premier Futsal Facility",
					"role":      "Weekly Training Ground",
					"imageUrl":  mediaURL("venues/riverside_arena.jpg"),
					"tags":      []string{"Indoor", "Smart Lighting", "Analytics"},
					"ownerName": "Riverside Sports Collective",
					"ownerId":   "venue_riverside_collective",
				},
			},
			"coaches": []map[string]interface{}{coachSamira},
		},
		"availableAssociations": map[string]interface{}{
			"teams": []map[string]interface{}{
				{
					"id":        "team_velocity_five",
					"title":     "Velocity Five",
					"subtitle":  "Doha Futsal Super Series",
					"role":      "Scouted",
					"imageUrl":  mediaURL("teams/velocity_five.jpg"),
					"tags":      []string{"High Tempo", "Analytics Driven"},
					"ownerName": "Coach Silvia Andrade",
					"ownerId":   "coach_silvia_uid",
				},
				{
					"id":        "team_pulse_united",
					"title":     "Pulse United",
					"subtitle":  "Dubai Regional Cup",
					"role":      "Tryout Invitation",
					"imageUrl":  mediaURL("teams/pulse_united.jpg"),
					"tags":      []string{"Adaptive", "Emerging Talent"},
					"ownerName": "GM Imran Shah",
					"ownerId":   "manager_imran_uid",
				},
			},
			"tournaments": []map[string]interface{}{
				{
					"id":        "tournament_asia_elite",
					"title":     "Asia Elite Showcase 2025",
					"subtitle":  "Invitation Confirmed",
					"role":      "Shortlisted Player",
					"imageUrl":  mediaURL("tournaments/asia_showcase.jpg"),
					"tags":      []string{"International", "Scouting"},
					"ownerName": "Asia Elite Board",
					"ownerId":   "org_asia_elite",
				},
			},
			"venues": []map[string]interface{}{
				{
					"id":        "venue_lakeside_dome",
					"title":     "Lakeside Dome",
					"subtitle":  "Climate Controlled Arena",
					"role":      "AI Tracking Sessions",
					"imageUrl":  mediaURL("venues/lakeside_dome.jpg"),
					"tags":      []string{"AI Tracking", "Indoor"},
					"ownerName": "Lakeside Performance Labs",
					"ownerId":   "venue_lakeside_labs",
				},
			},
			"coaches": []map[string]interface{}{
				{
					"id":        "coach_lara_ibrahim",
					"title":     "Coach Lara Ibrahim",
					"subtitle":  "Mindset Mentor",
					"role":      "Sports Psychologist",
					"imageUrl":  mediaURL("coaches/lara.jpg"),
					"tags":      []string{"Mindset", "Visualization"},
					"ownerName": "Coach Lara",
					"ownerId":   "coach_lara_uid",
				},
			},
		},
		"matchmaking": map[string]interface{}{
			"tagline": "Looking to join high-press futsal squads & data-driven collectives.",
			"about":   "Comfortable as inverted winger or advanced 10. Combines pace and vision to spark transitions.",
			"images": []string{
				mediaURL("matchmaking/ayaan_1.jpg"),
				mediaURL("matchmaking/ayaan_2.jpg"),
				mediaURL("matchmaking/ayaan_3.jpg"),
				mediaURL("matchmaking/ayaan_4.jpg"),
				mediaURL("matchmaking/ayaan_5.jpg"),
			},
			"age":    24,
			"city":   "Karachi, Pakistan",
			"sports": []string{"Football", "Futsal"},
			"seeking": []string{
				"High-tempo futsal crews",
				"Analytics-driven squads",
				"Elite invitational tournaments",
			},
			"distanceKm":   4.6,
			"distanceLink": "https://cloud.google.com/maps-platform?utm_source=playaround",
			"featuredTeam": thunderFC,
			"featuredVenue": map[string]interface{}{
				"id":        "venue_riverside_arena",
				"title":     "Riverside Arena",
				"subtitle":  "Premier Futsal Facility",
				"role":      "Weekly Training Ground",
				"imageUrl":  mediaURL("venues/riverside_arena.jpg"),
				"tags":      []string{"Indoor", "Smart Lighting"},
				"ownerName": "Riverside Sports Collective",
				"ownerId":   "venue_riverside_collective",
			},
			"featuredCoach":                coachSamira,
			"featuredTournament":           championsCup,
			"allowMessagesFromFriendsOnly": false,
		},
		"matchmakingLibrary": []string{
			mediaURL("matchmaking/gallery_1.jpg"),
			mediaURL("matchmaking/gallery_2.jpg"),
			mediaURL("matchmaking/gallery_3.jpg"),
			mediaURL("matchmaking/gallery_4.jpg"),
		},
		"reviews": []map[string]interface{}{
			{
				"id":              "review_1",
				"authorName":      "Coach Samira Akhtar",
				"authorAvatarUrl": mediaURL("coaches/samira.jpg"),
				"rating":          4.9,
				"comment":         "Elite decision-making in the final third. Reads defensive shape quickly and adjusts pressing triggers without prompting.",
				"relationship":    "Personal Coach",
				"createdAt":       now,
			},
		},
		"contact": map[string]interface{}{
			"primaryActionLabel":           "Start Chat",
			"allowMessagesFromFriendsOnly": false,
			"links": map[string]interface{}{
				"instagram": "https://instagram.com/ayaan.stride",
				"youtube":   "https://youtube.com/@ayaanstride",
				"facebook":  "https://facebook.com/ayaanstride",
			},
		},
		"featuredPostIds": []string{"post_tactical_breakdown", "post_recovery"},
		"updatedAt":       now,
	}
}

func withField(base map[string]interface{}, key string, value interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(base)+1)
	for k, v := range base {
		out[k] = v
	}
	out[key] = value
	return out
}
