package entity

// Venue is the subset of a venues document the showcase seeder reads.
// Older venue documents use "name" where newer ones use "title".
type Venue struct {
	ID        string   `json:"id" firestore:"id"`
	Title     string   `json:"title" firestore:"title"`
	Name      string   `json:"name" firestore:"name"`
	SportType string   `json:"sport_type" firestore:"sportType"`
	Location  string   `json:"location" firestore:"location"`
	Images    []string `json:"images" firestore:"images"`
}

func (v *Venue) DisplayName() string {
	if v.Title != "" {
		return v.Title
	}
	if v.Name != "" {
		return v.Name
	}
	return "Venue"
}

func (v *Venue) PrimaryImage() string {
	if len(v.Images) == 0 {
		return ""
	}
	return v.Images[0]
}
