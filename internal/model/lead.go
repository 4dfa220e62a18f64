package model

import "time"

// Lead is a stored sales inquiry. Leads are immutable after creation and
// addressed solely by ID; the only supported transitions are creation and
// whole-record deletion.
type Lead struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
