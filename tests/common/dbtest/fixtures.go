//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123", precomputed to keep test setup fast
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) WHERE is_active = true DO NOTHING",
		userID, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1 AND is_active = true", email).Scan(&userID)
	}

	return userID
}

func CreateTestExperience(t *testing.T, db DBLike, name string, priceCents int64) uuid.UUID {
	t.Helper()

	experienceID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO experiences (id, name, description, price_cents, location) VALUES ($1, $2, $3, $4, $5)",
		experienceID, name, "Test description", priceCents, "Test City")
	require.NoError(t, err)

	return experienceID
}

func CreateTestSlot(t *testing.T, db DBLike, experienceID uuid.UUID, date, timeOfDay string, remainingSeats, initialSeats int32) uuid.UUID {
	t.Helper()

	slotID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO slots (id, experience_id, slot_date, slot_time, remaining_seats, initial_seats) VALUES ($1, $2, $3, $4, $5, $6)",
		slotID, experienceID, date, timeOfDay, remainingSeats, initialSeats)
	require.NoError(t, err)

	return slotID
}

func CreateTestPromo(t *testing.T, db DBLike, code, discountType string, value int64, active bool) uuid.UUID {
	t.Helper()

	promoID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO promo_codes (id, code, discount_type, value, active) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (code) DO NOTHING",
		promoID, code, discountType, value, active)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM promo_codes WHERE code = $1", code).Scan(&promoID)
	}

	return promoID
}

func GetRemainingSeats(t *testing.T, db DBLike, slotID uuid.UUID) int32 {
	t.Helper()

	var remaining int32
	err := db.QueryRow(context.Background(), "SELECT remaining_seats FROM slots WHERE id = $1", slotID).Scan(&remaining)
	require.NoError(t, err)
	return remaining
}

func CountBookingsForSlot(t *testing.T, db DBLike, slotID uuid.UUID) int64 {
	t.Helper()

	var count int64
	err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM bookings WHERE slot_id = $1", slotID).Scan(&count)
	require.NoError(t, err)
	return count
}

// inserts basic reference data needed by tests. All booking fixtures
// are created per-test, so there is nothing global to seed yet.
func SeedReferenceData(pool *pgxpool.Pool) error {
	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
