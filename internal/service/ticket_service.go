package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"go-kanban-board/internal/model"
	"go-kanban-board/pkg/apierror"
)

type TicketStore interface {
	List(ctx context.Context, filter model.TicketFilter, sort model.TicketSort) ([]model.Ticket, error)
	FindByID(ctx context.Context, id string) (model.Ticket, error)
	Create(ctx context.Context, t model.Ticket) error
	Update(ctx context.Context, t model.Ticket) error
	Delete(ctx context.Context, id string) error
}

type UserLookup interface {
	FindByID(ctx context.Context, id string) (model.User, error)
}

type TicketService struct {
	tickets TicketStore
	users   UserLookup
	now     func() time.Time
}

func NewTicketService(tickets TicketStore, users UserLookup) *TicketService {
	return &TicketService{tickets: tickets, users: users, now: time.Now}
}

func (s *TicketService) List(ctx context.Context, filter model.TicketFilter, sort model.TicketSort) ([]model.Ticket, error) {
	if filter.Status != "" && !model.ValidStatus(filter.Status) {
		return nil, apierror.New(http.StatusBadRequest, fmt.Sprintf("unknown status %q", filter.Status))
	}
	if !model.ValidSortField(sort.Field) {
		return nil, apierror.New(http.StatusBadRequest, fmt.Sprintf("unknown sort field %q", sort.Field))
	}
	return s.tickets.List(ctx, filter, sort)
}

func (s *TicketService) Get(ctx context.Context, id string) (model.Ticket, error) {
	return s.tickets.FindByID(ctx, id)
}

// Create adds a ticket to the board. When no assignee is given the ticket is
// assigned to the authenticated creator.
func (s *TicketService) Create(ctx context.Context, req model.CreateTicketRequest, creatorID string) (model.Ticket, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return model.Ticket{}, apierror.New(http.StatusBadRequest, "ticket name is required")
	}

	status := req.Status
	if status == "" {
		status = model.StatusTodo
	}
	if !model.ValidStatus(status) {
		return model.Ticket{}, apierror.New(http.StatusBadRequest, fmt.Sprintf("unknown status %q", status))
	}

	assigneeID := req.AssignedUserID
	if assigneeID == nil && creatorID != "" {
		assigneeID = &creatorID
	}
	if err := s.checkAssignee(ctx, assigneeID); err != nil {
		return model.Ticket{}, err
	}

	now := s.now().UTC()
	ticket := model.Ticket{
		ID:             uuid.NewString(),
		Name:           name,
		Description:    req.Description,
		Status:         status,
		AssignedUserID: assigneeID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return model.Ticket{}, err
	}
	return s.tickets.FindByID(ctx, ticket.ID)
}

func (s *TicketService) Update(ctx context.Context, id string, req model.UpdateTicketRequest) (model.Ticket, error) {
	ticket, err := s.tickets.FindByID(ctx, id)
	if err != nil {
		return model.Ticket{}, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return model.Ticket{}, apierror.New(http.StatusBadRequest, "ticket name cannot be empty")
		}
		ticket.Name = name
	}
	if req.Description != nil {
		ticket.Description = *req.Description
	}
	if req.Status != nil {
		if !model.ValidStatus(*req.Status) {
			return model.Ticket{}, apierror.New(http.StatusBadRequest, fmt.Sprintf("unknown status %q", *req.Status))
		}
		ticket.Status = *req.Status
	}
	if req.AssignedUserID != nil {
		assigneeID := req.AssignedUserID
		if *assigneeID == "" {
			assigneeID = nil
		}
		if err := s.checkAssignee(ctx, assigneeID); err != nil {
			return model.Ticket{}, err
		}
		ticket.AssignedUserID = assigneeID
	}

	ticket.UpdatedAt = s.now().UTC()
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return model.Ticket{}, err
	}
	return s.tickets.FindByID(ctx, id)
}

func (s *TicketService) Delete(ctx context.Context, id string) error {
	return s.tickets.Delete(ctx, id)
}

func (s *TicketService) checkAssignee(ctx context.Context, assigneeID *string) error {
	if assigneeID == nil {
		return nil
	}

	_, err := s.users.FindByID(ctx, *assigneeID)
	if errors.Is(err, model.ErrUserNotFound) {
		return apierror.New(http.StatusBadRequest, "assigned user does not exist")
	}
	return err
}
