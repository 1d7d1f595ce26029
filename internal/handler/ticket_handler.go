package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"go-kanban-board/internal/middleware"
	"go-kanban-board/internal/model"
	"go-kanban-board/internal/service"
)

type TicketHandler struct {
	service *service.TicketService
}

func NewTicketHandler(service *service.TicketService) *TicketHandler {
	return &TicketHandler{service: service}
}

func (h *TicketHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := model.TicketFilter{
		Status:       strings.TrimSpace(query.Get("status")),
		AssignedUser: strings.TrimSpace(query.Get("assigned_user")),
	}
	sort := model.TicketSort{
		Field:      strings.TrimSpace(query.Get("sort_by")),
		Descending: strings.EqualFold(strings.TrimSpace(query.Get("sort_order")), "desc"),
	}

	tickets, err := h.service.List(r.Context(), filter, sort)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tickets)
}

func (h *TicketHandler) Get(w http.ResponseWriter, r *http.Request) {
	ticket, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ticket)
}

func (h *TicketHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.CreateTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}

	var creatorID string
	if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
		creatorID = claims.UserID
	}

	ticket, err := h.service.Create(r.Context(), payload, creatorID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, ticket)
}

func (h *TicketHandler) Update(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.UpdateTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}

	ticket, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ticket)
}

func (h *TicketHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "Ticket deleted.")
}
