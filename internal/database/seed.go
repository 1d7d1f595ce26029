package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type seedTicket struct {
	name        string
	description string
	status      string
	assignee    string
}

var seedUsernames = []string{"JollyGuru", "SunnyScribe", "RadiantComet"}

var seedTickets = []seedTicket{
	{"Design landing page", "Create wireframes and mockups for the landing page.", "Todo", "JollyGuru"},
	{"Set up CI pipeline", "Automate builds and test runs on every push.", "In Progress", "SunnyScribe"},
	{"Write onboarding docs", "Document the local development workflow.", "Todo", "RadiantComet"},
	{"Fix login redirect", "Users land on the wrong page after signing in.", "Done", "JollyGuru"},
	{"Refine swimlane styling", "Tighten spacing and colors on the board columns.", "In Progress", "RadiantComet"},
}

// SeedDemoData inserts the demo users and board tickets when the users table
// is empty. Every demo account uses the password "password".
func (db *DB) SeedDemoData(ctx context.Context) error {
	var count int
	if err := db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	slog.Info("seeding demo users and tickets")

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), 12)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	now := time.Now().UTC()
	userIDs := map[string]string{}
	for _, username := range seedUsernames {
		id := uuid.NewString()
		userIDs[username] = id
		_, err := db.Pool.Exec(ctx,
			`INSERT INTO users (id, username, password_hash, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5)`,
			id, username, string(hash), now, now)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", username, err)
		}
	}

	for _, t := range seedTickets {
		_, err := db.Pool.Exec(ctx,
			`INSERT INTO tickets (id, name, description, status, assigned_user_id, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			uuid.NewString(), t.name, t.description, t.status, userIDs[t.assignee], now, now)
		if err != nil {
			return fmt.Errorf("seed ticket %q: %w", t.name, err)
		}
	}

	return nil
}
