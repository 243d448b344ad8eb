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

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestFuelType inserts a fuel type with an open price interval,
// bypassing the API. Returns the generated id.
func CreateTestFuelType(t *testing.T, db DBLike, name, price, stock string) int64 {
	t.Helper()

	ctx := context.Background()
	var id int64
	err := db.QueryRow(ctx, `
		INSERT INTO fuel_types (name, price_per_litre, stock_litres)
		VALUES ($1, $2, $3)
		RETURNING id`, name, price, stock).Scan(&id)
	require.NoError(t, err)

	_, err = db.Exec(ctx, `
		INSERT INTO fuel_price_history (fuel_type_id, price_per_litre, valid_from)
		VALUES ($1, $2, now())`, id, price)
	require.NoError(t, err)

	return id
}

func CreateTestSale(t *testing.T, db DBLike, fuelTypeID int64, litres, price, amount string, soldAt time.Time) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO sales (fuel_type_id, litres, price_at_sale, amount, sold_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`, fuelTypeID, litres, price, amount, soldAt).Scan(&id)
	require.NoError(t, err)

	return id
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between tests
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

	return nil
}
