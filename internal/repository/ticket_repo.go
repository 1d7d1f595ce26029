package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-kanban-board/internal/model"
)

type TicketRepository struct {
	pool *pgxpool.Pool
}

func NewTicketRepository(pool *pgxpool.Pool) *TicketRepository {
	return &TicketRepository{pool: pool}
}

const ticketColumns = `t.id, t.name, t.description, t.status, t.assigned_user_id,
	t.created_at, t.updated_at, u.id, u.username`

func (r *TicketRepository) List(ctx context.Context, filter model.TicketFilter, sort model.TicketSort) ([]model.Ticket, error) {
	query := `SELECT ` + ticketColumns + `
		 FROM tickets t
		 LEFT JOIN users u ON u.id = t.assigned_user_id`

	conditions := make([]string, 0, 2)
	args := make([]any, 0, 2)
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, "t.status = $"+strconv.Itoa(len(args)))
	}
	if filter.AssignedUser != "" {
		args = append(args, filter.AssignedUser)
		conditions = append(conditions, "lower(u.username) = lower($"+strconv.Itoa(len(args))+")")
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY " + orderClause(sort)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()

	tickets := make([]model.Ticket, 0)
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

func (r *TicketRepository) FindByID(ctx context.Context, id string) (model.Ticket, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+ticketColumns+`
		 FROM tickets t
		 LEFT JOIN users u ON u.id = t.assigned_user_id
		 WHERE t.id = $1`, id)

	t, err := scanTicket(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Ticket{}, model.ErrTicketNotFound
	}
	if err != nil {
		return model.Ticket{}, fmt.Errorf("find ticket by id: %w", err)
	}
	return t, nil
}

func (r *TicketRepository) Create(ctx context.Context, t model.Ticket) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO tickets (id, name, description, status, assigned_user_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		t.ID, t.Name, t.Description, t.Status, t.AssignedUserID, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create ticket: %w", err)
	}
	return nil
}

func (r *TicketRepository) Update(ctx context.Context, t model.Ticket) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE tickets
		 SET name = $2, description = $3, status = $4, assigned_user_id = $5, updated_at = $6
		 WHERE id = $1`,
		t.ID, t.Name, t.Description, t.Status, t.AssignedUserID, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update ticket: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrTicketNotFound
	}
	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tickets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ticket: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrTicketNotFound
	}
	return nil
}

// orderClause maps a sort request to a safe ORDER BY expression. Only
// whitelisted columns are interpolated; anything else falls back to the
// creation order.
func orderClause(sort model.TicketSort) string {
	column := "t.created_at"
	switch sort.Field {
	case "name":
		column = "t.name"
	case "status":
		column = "t.status"
	case "created_at", "":
		column = "t.created_at"
	}

	direction := " ASC"
	if sort.Descending {
		direction = " DESC"
	}
	return column + direction
}

func scanTicket(row pgx.Row) (model.Ticket, error) {
	var (
		t                model.Ticket
		assigneeID       *string
		assigneeUsername *string
	)
	err := row.Scan(&t.ID, &t.Name, &t.Description, &t.Status, &t.AssignedUserID,
		&t.CreatedAt, &t.UpdatedAt, &assigneeID, &assigneeUsername)
	if err != nil {
		return model.Ticket{}, err
	}

	if assigneeID != nil && assigneeUsername != nil {
		t.AssignedUser = &model.PublicUser{ID: *assigneeID, Username: *assigneeUsername}
	}
	return t, nil
}
