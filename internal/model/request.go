package model

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreateTicketRequest struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Status         string  `json:"status"`
	AssignedUserID *string `json:"assigned_user_id"`
}

// UpdateTicketRequest uses pointers so omitted fields are left untouched.
type UpdateTicketRequest struct {
	Name           *string `json:"name"`
	Description    *string `json:"description"`
	Status         *string `json:"status"`
	AssignedUserID *string `json:"assigned_user_id"`
}
