// Command seed loads a small demo catalog (experiences, slots, promo
// codes and a demo account) into the configured database. Intended for
// local development only, every insert is idempotent.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"tripslot/internal/infra/db"
	"tripslot/internal/infra/repository"
	"tripslot/internal/pkg/config"
)

const demoEmail = "demo@tripslot.dev"

type experienceSeed struct {
	name        string
	description string
	longDesc    string
	priceCents  int64
	imageURL    string
	location    string
}

var experiences = []experienceSeed{
	{
		name:        "Sunset Kayak Tour",
		description: "Paddle through the backwaters as the sun goes down.",
		longDesc:    "A guided two hour kayak trip with all gear included. Suitable for beginners.",
		priceCents:  5000,
		imageURL:    "https://images.tripslot.dev/kayak.jpg",
		location:    "Goa",
	},
	{
		name:        "City Food Walk",
		description: "Taste your way through the old town's street food.",
		longDesc:    "Six stops, one evening, all the chaat you can handle. Vegetarian friendly.",
		priceCents:  4000,
		imageURL:    "https://images.tripslot.dev/foodwalk.jpg",
		location:    "Mumbai",
	},
	{
		name:        "Heritage Cycling Trail",
		description: "Early morning ride past forts and stepwells.",
		longDesc:    "A 15 km guided ride on quiet roads with breakfast at a century-old cafe.",
		priceCents:  3500,
		imageURL:    "https://images.tripslot.dev/cycling.jpg",
		location:    "Jaipur",
	},
}

type promoSeed struct {
	code         string
	discountType string
	value        int64
}

var promos = []promoSeed{
	{code: "SAVE10", discountType: "percentage", value: 10},
	{code: "FLAT500", discountType: "fixed", value: 500},
	{code: "WELCOME", discountType: "percentage", value: 15},
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := seed(ctx, pool); err != nil {
		slog.Error("seeding failed", "error", err)
		os.Exit(1)
	}

	slog.Info("seed data loaded",
		"experiences", len(experiences),
		"promos", len(promos),
	)
}

func seed(ctx context.Context, pool *pgxpool.Pool) error {
	for _, exp := range experiences {
		var experienceID string
		err := pool.QueryRow(ctx, `
			INSERT INTO experiences (name, description, long_description, price_cents, image_url, location)
			SELECT $1, $2, $3, $4, $5, $6
			WHERE NOT EXISTS (SELECT 1 FROM experiences WHERE name = $1)
			RETURNING id::text`,
			exp.name, exp.description, exp.longDesc, exp.priceCents, exp.imageURL, exp.location,
		).Scan(&experienceID)
		if err != nil {
			// Already seeded, look the row up for slot creation
			err = pool.QueryRow(ctx,
				`SELECT id::text FROM experiences WHERE name = $1`, exp.name,
			).Scan(&experienceID)
			if err != nil {
				return fmt.Errorf("seed experience %q: %w", exp.name, err)
			}
		}

		if err := seedSlots(ctx, pool, experienceID); err != nil {
			return fmt.Errorf("seed slots for %q: %w", exp.name, err)
		}
	}

	for _, p := range promos {
		_, err := pool.Exec(ctx, `
			INSERT INTO promo_codes (code, discount_type, value, active)
			VALUES ($1, $2, $3, TRUE)
			ON CONFLICT (code) DO NOTHING`,
			p.code, p.discountType, p.value,
		)
		if err != nil {
			return fmt.Errorf("seed promo %q: %w", p.code, err)
		}
	}

	return seedDemoUser(ctx, pool)
}

// Two weeks of slots, two times a day, starting tomorrow.
func seedSlots(ctx context.Context, pool *pgxpool.Pool, experienceID string) error {
	start := time.Now().AddDate(0, 0, 1)
	for day := range 14 {
		date := start.AddDate(0, 0, day).Format("2006-01-02")
		for _, timeOfDay := range []string{"10:00", "16:00"} {
			_, err := pool.Exec(ctx, `
				INSERT INTO slots (experience_id, slot_date, slot_time, remaining_seats, initial_seats)
				VALUES ($1, $2, $3, 8, 8)
				ON CONFLICT (experience_id, slot_date, slot_time) DO NOTHING`,
				experienceID, date, timeOfDay,
			)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func seedDemoUser(ctx context.Context, pool *pgxpool.Pool) error {
	var exists bool
	err := pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, demoEmail,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check demo user: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	users := repository.NewUserRepository()
	if _, err := users.Create(ctx, pool, demoEmail, string(hash), "customer"); err != nil {
		return fmt.Errorf("seed demo user: %w", err)
	}
	return nil
}
