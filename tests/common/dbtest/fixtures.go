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

	"field-booking/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// TestPassword is the plain password of every user created by CreateTestUser.
const TestPassword = "Passw0rd"

var (
	hashOnce     sync.Once
	testPassHash string
	testHashErr  error
)

func testPasswordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		testPassHash, testHashErr = password.HashPasswordWithCost(TestPassword, bcrypt.MinCost)
	})
	require.NoError(t, testHashErr)
	return testPassHash
}

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()
	name := strings.Split(email, "@")[0]
	if len(name) < 2 {
		name = "User " + name
	}

	tag, err := db.Exec(ctx, `INSERT INTO users (id, name, email, password_hash, role)
		VALUES ($1, $2, $3, $4, $5) ON CONFLICT ((lower(email))) DO NOTHING`,
		userID, name, email, testPasswordHash(t), role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE lower(email) = lower($1)", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

func CreateTestField(t *testing.T, db DBLike, name, sportType string, active bool) uuid.UUID {
	t.Helper()

	fieldID := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO fields (id, name, location, sport_type, price_per_hour, active)
		VALUES ($1, $2, '12 Stadium Road', $3, 50.00, $4)`,
		fieldID, name, sportType, active)
	require.NoError(t, err)
	return fieldID
}

func CreateTestBooking(t *testing.T, db DBLike, userID, fieldID uuid.UUID, date time.Time, slot, status string) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO bookings (id, user_id, field_id, booking_date, time_slot, status)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		bookingID, userID, fieldID, date.Format(time.DateOnly), slot, status)
	require.NoError(t, err)
	return bookingID
}

// BookingStatus reads the stored status, bypassing the application.
func BookingStatus(t *testing.T, db DBLike, bookingID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM bookings WHERE id = $1", bookingID).Scan(&status)
	require.NoError(t, err)
	return status
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB empties every table in the public schema.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'`)
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
