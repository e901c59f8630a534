package domain

import "time"

// Review is customer feedback. Append-only: no update or delete path exists.
type Review struct {
	ID        string    `json:"id"`
	Reviewer  string    `json:"reviewer"`
	Email     string    `json:"email,omitempty"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
