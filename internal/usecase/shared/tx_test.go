//go:build unit

package shared

import (
	"testing"

	"fuel-station/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "serialization failure",
			err:  &pgconn.PgError{Code: "40001"},
			want: true,
		},
		{
			name: "deadlock detected",
			err:  &pgconn.PgError{Code: "40P01"},
			want: true,
		},
		{
			name: "lock not available",
			err:  &pgconn.PgError{Code: "55P03"},
			want: true,
		},
		{
			name: "statement timeout while waiting on a lock",
			err:  &pgconn.PgError{Code: "57014"},
			want: true,
		},
		{
			name: "retryable code survives wrapping",
			err:  errs.Wrap(&pgconn.PgError{Code: "40001"}, "lock fuel type"),
			want: true,
		},
		{
			name: "unique violation is a business error",
			err:  &pgconn.PgError{Code: "23505"},
			want: false,
		},
		{
			name: "check violation is a business error",
			err:  &pgconn.PgError{Code: "23514"},
			want: false,
		},
		{
			name: "plain error",
			err:  errs.New("fuel type not found"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}
