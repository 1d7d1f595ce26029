package handler

import (
	"context"
	"net/http"

	"go-kanban-board/internal/model"
)

type userLister interface {
	List(ctx context.Context) ([]model.PublicUser, error)
}

// UserHandler serves the user directory used by the board's assignment
// dropdown. Only public fields are ever serialized.
type UserHandler struct {
	users userLister
}

func NewUserHandler(users userLister) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}
