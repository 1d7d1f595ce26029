package model

type LoginResponse struct {
	Token string `json:"token"`
}

// MessageResponse is the body of every non-2xx auth-surface response.
type MessageResponse struct {
	Message string `json:"message"`
}
