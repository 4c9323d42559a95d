package dto

import "github.com/archidesk/models"

// UserSummary is the short reference form used when expanding owner,
// uploader, creator and participant references in responses.
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewUserSummary builds a summary reference from a user record.
func NewUserSummary(u models.User) UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}

// NewUserSummaries maps a slice of user records to summary references.
func NewUserSummaries(users []models.User) []UserSummary {
	summaries := make([]UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, NewUserSummary(u))
	}
	return summaries
}

// ProjectRef is the short reference form for a document's or meeting's project.
type ProjectRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
