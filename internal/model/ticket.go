package model

import "time"

const (
	StatusTodo       = "Todo"
	StatusInProgress = "In Progress"
	StatusDone       = "Done"
)

// ValidStatus reports whether s is one of the board's swimlane statuses.
func ValidStatus(s string) bool {
	return s == StatusTodo || s == StatusInProgress || s == StatusDone
}

type Ticket struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Description    string      `json:"description"`
	Status         string      `json:"status"`
	AssignedUserID *string     `json:"assigned_user_id,omitempty"`
	AssignedUser   *PublicUser `json:"assigned_user,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// TicketFilter narrows a board listing. Empty fields match everything.
type TicketFilter struct {
	Status       string
	AssignedUser string
}

// TicketSort orders a board listing. Field must be one of name, status or
// created_at; Descending flips the default ascending order.
type TicketSort struct {
	Field      string
	Descending bool
}

// ValidSortField reports whether s names a sortable ticket column. The empty
// string is valid and selects the default created_at order.
func ValidSortField(s string) bool {
	return s == "" || s == "name" || s == "status" || s == "created_at"
}
