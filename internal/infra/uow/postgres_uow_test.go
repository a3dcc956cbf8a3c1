//go:build unit

package uow

import (
	"context"
	"testing"
	"time"

	"field-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"serialization failure", &pgconn.PgError{Code: "40001"}, true},
		{"deadlock", &pgconn.PgError{Code: "40P01"}, true},
		{"wrapped deadlock", errs.Wrap(&pgconn.PgError{Code: "40P01"}, "failed to update booking"), true},
		{"unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"plain error", assert.AnError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond
	for attempt := 0; attempt < 3; attempt++ {
		wait := calculateBackoff(attempt, base)
		floor := time.Duration(1<<attempt) * base
		assert.GreaterOrEqual(t, wait, floor)
		assert.Less(t, wait, floor+floor/5+time.Nanosecond)
	}
}

func TestRunAfterCommitOrder(t *testing.T) {
	tx := &pgTx{}
	var order []int
	tx.AfterCommit(func(_ context.Context) { order = append(order, 1) })
	tx.AfterCommit(func(_ context.Context) { order = append(order, 2) })

	tx.runAfterCommit(context.Background())

	assert.Equal(t, []int{1, 2}, order)
}
