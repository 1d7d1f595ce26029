package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"go-kanban-board/internal/model"
	"go-kanban-board/pkg/apierror"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, model.MessageResponse{Message: message})
}

func writeError(w http.ResponseWriter, err error) {
	var apiErr *apierror.APIError
	switch {
	case errors.As(err, &apiErr):
		writeMessage(w, apiErr.HTTPStatus, apiErr.Message)
	case errors.Is(err, model.ErrInvalidCredentials):
		writeMessage(w, http.StatusBadRequest, "Invalid username or password.")
	case errors.Is(err, model.ErrTicketNotFound):
		writeMessage(w, http.StatusNotFound, "Ticket not found.")
	case errors.Is(err, model.ErrUserNotFound):
		writeMessage(w, http.StatusNotFound, "User not found.")
	case errors.Is(err, model.ErrInvalidInput):
		writeMessage(w, http.StatusBadRequest, "Invalid input.")
	default:
		// The generic message deliberately leaks nothing about the fault;
		// the log line carries the detail.
		slog.Error("unhandled error in writeError", "error", err.Error())
		writeMessage(w, http.StatusInternalServerError, "An error occurred. Please try again later.")
	}
}
