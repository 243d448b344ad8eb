//go:build e2e

package station_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"fuel-station/internal/handler/dto/response"
	"fuel-station/internal/infra/db"
	"fuel-station/internal/usecase/shared"
	"fuel-station/tests/common/dbtest"
	"fuel-station/tests/common/httptest"
	"fuel-station/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	fuelTypesURL    = "/api/fuel-types"
	inventoryURL    = "/api/inventory"
	refillURL       = "/api/inventory/refill"
	salesURL        = "/api/sales"
	overviewURL     = "/api/reports/overview"
	timeseriesURL   = "/api/reports/timeseries"
	byFuelTypeURL   = "/api/reports/by-fuel-type"
	priceHistoryURL = "/api/reports/price-history/%d"
)

type StationSuite struct {
	e2e.SharedSuite
}

func (s *StationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestStationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(StationSuite))
}

func (s *StationSuite) createFuelType(name, price, stock string) response.FuelTypeResponse {
	t := s.T()
	reqBody := map[string]any{
		"name":                 name,
		"price_per_litre":      price,
		"initial_stock_litres": stock,
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, fuelTypesURL, reqBody)
	require.Equal(t, http.StatusCreated, w.Code, "fuel type creation failed: %s", w.Body.String())

	var created response.FuelTypeResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	return created
}

// =============================================================================
// Fuel type registry
// =============================================================================

func (s *StationSuite) TestFuelTypeRegistry() {
	s.Run("Normal case: create and list fuel types", func() {
		t := s.T()

		diesel := s.createFuelType("Diesel", "1.859", "5000")
		require.Equal(t, "Diesel", diesel.Name)
		require.Equal(t, "1.859", diesel.PricePerLitre)
		require.Equal(t, "5000.000", diesel.StockLitres)

		s.createFuelType("Super 95", "1.999", "3000")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fuelTypesURL, nil)
		var listed []response.FuelTypeResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &listed)
		require.Len(t, listed, 2)
		require.Equal(t, "Diesel", listed[0].Name)
		require.Equal(t, "Super 95", listed[1].Name)
	})

	s.Run("Normal case: creation writes the opening price interval", func() {
		t := s.T()
		diesel := s.createFuelType("Diesel", "1.859", "5000")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(priceHistoryURL, diesel.ID), nil)
		var intervals []response.PriceIntervalResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &intervals)
		require.Len(t, intervals, 1)
		require.Equal(t, "1.859", intervals[0].PricePerLitre)
		require.Nil(t, intervals[0].ValidTo, "opening interval must be open-ended")
	})

	s.Run("Error case: duplicate name is rejected", func() {
		t := s.T()
		s.createFuelType("Diesel", "1.859", "5000")

		reqBody := map[string]any{"name": "Diesel", "price_per_litre": "2.000"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fuelTypesURL, reqBody)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "already exists")
	})

	s.Run("Error case: name only differing in surrounding spaces is a duplicate", func() {
		t := s.T()
		s.createFuelType("Diesel", "1.859", "5000")

		reqBody := map[string]any{"name": "  Diesel  ", "price_per_litre": "2.000"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fuelTypesURL, reqBody)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "already exists")
	})

	s.Run("Error case: negative price is rejected", func() {
		t := s.T()
		reqBody := map[string]any{"name": "Diesel", "price_per_litre": "-1"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fuelTypesURL, reqBody)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})
}

// =============================================================================
// Sales
// =============================================================================

func (s *StationSuite) TestRecordSale() {
	s.Run("Normal case: sale snapshots price, computes amount and decrements stock", func() {
		t := s.T()
		diesel := s.createFuelType("Diesel", "1.859", "5000")

		reqBody := map[string]any{"fuel_type_id": diesel.ID, "litres": "20.5"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, salesURL, reqBody)

		var sale response.SaleResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &sale)
		require.Equal(t, "20.500", sale.Litres)
		require.Equal(t, "1.859", sale.PriceAtSale)
		require.Equal(t, "38.11", sale.Amount) // 20.5 * 1.859 rounded to cents

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, inventoryURL, nil)
		var inv []response.InventoryItemResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &inv)
		require.Len(t, inv, 1)
		require.Equal(t, "4979.500", inv[0].StockLitres)
	})

	s.Run("Normal case: sale of the entire stock drains it to zero", func() {
		t := s.T()
		diesel := s.createFuelType("Diesel", "1.859", "100")

		reqBody := map[string]any{"fuel_type_id": diesel.ID, "litres": "100"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, salesURL, reqBody)
		require.Equal(t, http.StatusCreated, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, inventoryURL, nil)
		var inv []response.InventoryItemResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &inv)
		require.Equal(t, "0.000", inv[0].StockLitres)
	})

	s.Run("Error case: sale above stock is rejected and stock is untouched", func() {
		t := s.T()
		diesel := s.createFuelType("Diesel", "1.859", "100")

		reqBody := map[string]any{"fuel_type_id": diesel.ID, "litres": "100.001"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, salesURL, reqBody)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Insufficient stock")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, inventoryURL, nil)
		var inv []response.InventoryItemResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &inv)
		require.Equal(t, "100.000", inv[0].StockLitres)
	})

	s.Run("Error case: unknown fuel type", func() {
		t := s.T()
		reqBody := map[string]any{"fuel_type_id": 9999, "litres": "10"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, salesURL, reqBody)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "not found")
	})

	s.Run("Normal case: listing respects filters and order", func() {
		t := s.T()
		diesel := s.createFuelType("Diesel", "1.000", "1000")
		super := s.createFuelType("Super 95", "2.000", "1000")

		for _, id := range []int64{diesel.ID, super.ID, diesel.ID} {
			reqBody := map[string]any{"fuel_type_id": id, "litres": "10"}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, salesURL, reqBody)
			require.Equal(t, http.StatusCreated, w.Code)
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s?fuel_type_id=%d", salesURL, diesel.ID), nil)
		var sales []response.SaleResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &sales)
		require.Len(t, sales, 2)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, salesURL+"?order=desc", nil)
		var descending []response.SaleResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &descending)
		require.Len(t, descending, 3)
		for i := 1; i < len(descending); i++ {
			require.False(t, descending[i-1].SoldAt.Before(descending[i].SoldAt),
				"sales must be sorted newest first")
		}
	})
}

// =============================================================================
// Pricing
// =============================================================================

func (s *StationSuite) TestPriceUpdate() {
	s.Run("Normal case: update closes the old interval and moves the live price", func() {
		t := s.T()
		diesel := s.createFuelType("Diesel", "1.859", "5000")

		reqBody := map[string]any{"price_per_litre": "1.999"}
		url := fmt.Sprintf("%s/%d/price", fuelTypesURL, diesel.ID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url, reqBody)

		var updated response.FuelTypeResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &updated)
		require.Equal(t, "1.999", updated.PricePerLitre)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(priceHistoryURL, diesel.ID), nil)
		var intervals []response.PriceIntervalResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &intervals)
		require.Len(t, intervals, 2)
		require.NotNil(t, intervals[0].ValidTo, "superseded interval must be closed")
		require.Nil(t, intervals[1].ValidTo, "new interval must be open-ended")
		require.Equal(t, "1.999", intervals[1].PricePerLitre)

		// Next sale picks up the new price
		saleBody := map[string]any{"fuel_type_id": diesel.ID, "litres": "10"}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, salesURL, saleBody)
		var sale response.SaleResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &sale)
		require.Equal(t, "1.999", sale.PriceAtSale)
		require.Equal(t, "19.99", sale.Amount)
	})

	s.Run("Normal case: setting the same price still opens a fresh interval", func() {
		t := s.T()
		diesel := s.createFuelType("Diesel", "1.859", "5000")

		reqBody := map[string]any{"price_per_litre": "1.859"}
		url := fmt.Sprintf("%s/%d/price", fuelTypesURL, diesel.ID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url, reqBody)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(priceHistoryURL, diesel.ID), nil)
		var intervals []response.PriceIntervalResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &intervals)
		require.Len(t, intervals, 2)
	})

	s.Run("Error case: unknown fuel type", func() {
		t := s.T()
		reqBody := map[string]any{"price_per_litre": "1.999"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fuelTypesURL+"/9999/price", reqBody)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "not found")
	})
}

// =============================================================================
// Inventory
// =============================================================================

func (s *StationSuite) TestRefill() {
	s.Run("Normal case: refill adds to stock", func() {
		t := s.T()
		diesel := s.createFuelType("Diesel", "1.859", "100")

		reqBody := map[string]any{"fuel_type_id": diesel.ID, "litres": "900"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refillURL, reqBody)

		var updated response.FuelTypeResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &updated)
		require.Equal(t, "1000.000", updated.StockLitres)
	})

	s.Run("Error case: non-positive litres", func() {
		t := s.T()
		diesel := s.createFuelType("Diesel", "1.859", "100")

		reqBody := map[string]any{"fuel_type_id": diesel.ID, "litres": "0"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refillURL, reqBody)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})
}

// =============================================================================
// Concurrency: the row lock must prevent overselling and lost updates
// =============================================================================

func (s *StationSuite) TestConcurrentSales() {
	s.Run("Invariant: stock never goes negative under concurrent sales", func() {
		t := s.T()
		// 10 litres of stock, 20 racing sales of 1 litre each: exactly 10
		// succeed, the rest get a conflict.
		diesel := s.createFuelType("Diesel", "1.000", "10")

		const workers = 20
		codes := make(chan int, workers)
		var wg sync.WaitGroup
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				reqBody := map[string]any{"fuel_type_id": diesel.ID, "litres": "1"}
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, salesURL, reqBody)
				codes <- w.Code
			}()
		}
		wg.Wait()
		close(codes)

		created, conflicts := 0, 0
		for code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicts++
			default:
				t.Errorf("unexpected status %d", code)
			}
		}
		require.Equal(t, 10, created, "exactly the available stock may be sold")
		require.Equal(t, 10, conflicts)

		var stock string
		err := s.DB.QueryRow(context.Background(),
			"SELECT stock_litres::text FROM fuel_types WHERE id = $1", diesel.ID).Scan(&stock)
		require.NoError(t, err)
		require.Equal(t, "0.000", stock)
	})

	s.Run("Invariant: concurrent refills and sales lose no update", func() {
		t := s.T()
		diesel := s.createFuelType("Diesel", "1.000", "1000")

		const rounds = 10
		var wg sync.WaitGroup
		for range rounds {
			wg.Add(2)
			go func() {
				defer wg.Done()
				reqBody := map[string]any{"fuel_type_id": diesel.ID, "litres": "5"}
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, refillURL, reqBody)
				if w.Code != http.StatusOK {
					t.Errorf("refill failed with status %d: %s", w.Code, w.Body.String())
				}
			}()
			go func() {
				defer wg.Done()
				reqBody := map[string]any{"fuel_type_id": diesel.ID, "litres": "3"}
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, salesURL, reqBody)
				if w.Code != http.StatusCreated {
					t.Errorf("sale failed with status %d: %s", w.Code, w.Body.String())
				}
			}()
		}
		wg.Wait()

		// 1000 + 10*5 - 10*3 = 1020
		var stock string
		err := s.DB.QueryRow(context.Background(),
			"SELECT stock_litres::text FROM fuel_types WHERE id = $1", diesel.ID).Scan(&stock)
		require.NoError(t, err)
		require.Equal(t, "1020.000", stock)
	})

	s.Run("Invariant: every sale amount matches a price the fuel type had", func() {
		t := s.T()
		diesel := s.createFuelType("Diesel", "1.000", "10000")

		var wg sync.WaitGroup
		for range 5 {
			wg.Add(2)
			go func() {
				defer wg.Done()
				reqBody := map[string]any{"fuel_type_id": diesel.ID, "litres": "10"}
				httptest.PerformRequest(t, s.Router, http.MethodPost, salesURL, reqBody)
			}()
			go func() {
				defer wg.Done()
				reqBody := map[string]any{"price_per_litre": "2.000"}
				url := fmt.Sprintf("%s/%d/price", fuelTypesURL, diesel.ID)
				httptest.PerformRequest(t, s.Router, http.MethodPatch, url, reqBody)
			}()
		}
		wg.Wait()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, salesURL, nil)
		var sales []response.SaleResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &sales)

		for _, sale := range sales {
			require.Contains(t, []string{"1.000", "2.000"}, sale.PriceAtSale,
				"price snapshot must be one of the prices ever set")
			want := map[string]string{"1.000": "10.00", "2.000": "20.00"}[sale.PriceAtSale]
			require.Equal(t, want, sale.Amount, "amount must match litres * snapshot price")
		}
	})
}

// =============================================================================
// Reporting
// =============================================================================

func (s *StationSuite) TestReports() {
	s.Run("Normal case: overview aggregates the seeded ledger", func() {
		t := s.T()
		diesel := s.createFuelType("Diesel", "1.000", "10000")

		day1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		day2 := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
		dbtest.CreateTestSale(t, s.DB, diesel.ID, "100", "1.000", "100.00", day1)
		dbtest.CreateTestSale(t, s.DB, diesel.ID, "50", "1.000", "50.00", day2)
		dbtest.CreateTestSale(t, s.DB, diesel.ID, "30", "1.000", "30.00", day2)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, overviewURL, nil)
		var overview response.OverviewResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &overview)

		require.Equal(t, "180.00", overview.TotalRevenue)
		require.Equal(t, "180.000", overview.TotalLitres)
		require.Equal(t, int64(3), overview.TxCount)
		require.Equal(t, "60.00", overview.AvgTicket)
		require.Equal(t, "1.000", overview.WeightedAvgPrice)
		require.NotNil(t, overview.PeakDay)
		require.Equal(t, "100.00", overview.PeakDay.Revenue)
		require.NotNil(t, overview.LowDay)
		require.Equal(t, "80.00", overview.LowDay.Revenue)
	})

	s.Run("Normal case: overview of an empty ledger is all zeros", func() {
		t := s.T()
		s.createFuelType("Diesel", "1.000", "10000")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, overviewURL, nil)
		var overview response.OverviewResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &overview)

		require.Equal(t, "0.00", overview.TotalRevenue)
		require.Equal(t, int64(0), overview.TxCount)
		require.Nil(t, overview.FirstSaleAt)
		require.Nil(t, overview.PeakDay)
	})

	s.Run("Normal case: daily timeseries buckets by sale day", func() {
		t := s.T()
		diesel := s.createFuelType("Diesel", "1.000", "10000")

		day1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		day2 := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
		dbtest.CreateTestSale(t, s.DB, diesel.ID, "100", "1.000", "100.00", day1)
		dbtest.CreateTestSale(t, s.DB, diesel.ID, "50", "1.000", "50.00", day2)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, timeseriesURL+"?granularity=day", nil)
		var buckets []response.TimeseriesBucketResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &buckets)

		require.Len(t, buckets, 2)
		require.Equal(t, "100.00", buckets[0].Revenue)
		require.Equal(t, "50.00", buckets[1].Revenue)
	})

	s.Run("Normal case: breakdown by fuel type orders by revenue", func() {
		t := s.T()
		diesel := s.createFuelType("Diesel", "1.000", "10000")
		super := s.createFuelType("Super 95", "2.000", "10000")

		soldAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		dbtest.CreateTestSale(t, s.DB, diesel.ID, "100", "1.000", "100.00", soldAt)
		dbtest.CreateTestSale(t, s.DB, super.ID, "100", "2.000", "200.00", soldAt)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, byFuelTypeURL, nil)
		var breakdown []response.FuelTypeSalesResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &breakdown)

		want := []response.FuelTypeSalesResponse{
			{FuelTypeID: super.ID, Name: "Super 95", Revenue: "200.00", Litres: "100.000", TxCount: 1, AvgPrice: "2.000"},
			{FuelTypeID: diesel.ID, Name: "Diesel", Revenue: "100.00", Litres: "100.000", TxCount: 1, AvgPrice: "1.000"},
		}
		if diff := cmp.Diff(want, breakdown); diff != "" {
			t.Errorf("breakdown mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: range filter narrows the overview", func() {
		t := s.T()
		diesel := s.createFuelType("Diesel", "1.000", "10000")

		dbtest.CreateTestSale(t, s.DB, diesel.ID, "100", "1.000", "100.00",
			time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
		dbtest.CreateTestSale(t, s.DB, diesel.ID, "50", "1.000", "50.00",
			time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC))

		url := overviewURL + "?from=2026-03-15T00:00:00Z&to=2026-04-15T00:00:00Z"
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil)
		var overview response.OverviewResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &overview)
		require.Equal(t, "50.00", overview.TotalRevenue)
		require.Equal(t, int64(1), overview.TxCount)
	})

	s.Run("Error case: inverted range", func() {
		t := s.T()
		url := overviewURL + "?from=2026-04-01T00:00:00Z&to=2026-03-01T00:00:00Z"
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})
}

// =============================================================================
// Retry policy: lock waits hitting the statement timeout retry, then give up
// =============================================================================

func (s *StationSuite) lockRow(ctx context.Context, t *testing.T, id int64) func() {
	blocker, err := s.DB.Begin(ctx)
	require.NoError(t, err)
	_, err = blocker.Exec(ctx, "SELECT id FROM fuel_types WHERE id = $1 FOR UPDATE", id)
	require.NoError(t, err)
	return func() { _ = blocker.Rollback(ctx) }
}

func (s *StationSuite) shortTimeoutPool(t *testing.T) *pgxpool.Pool {
	shortCfg := s.Config.DB
	shortCfg.StatementTimeout = 300 * time.Millisecond
	pool, _, err := db.Connect(shortCfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func (s *StationSuite) TestLockContentionRetry() {
	s.Run("exhausted retries surface a contention error", func() {
		t := s.T()
		id := dbtest.CreateTestFuelType(t, s.DB, "Diesel", "1.500", "100.000")
		pool := s.shortTimeoutPool(t)

		ctx := context.Background()
		release := s.lockRow(ctx, t, id)
		defer release()

		attempts := 0
		_, err := shared.WithDefaultRetry(ctx, pool, func(tx db.DBTX) (int64, error) {
			attempts++
			var locked int64
			scanErr := tx.QueryRow(ctx, "SELECT id FROM fuel_types WHERE id = $1 FOR UPDATE", id).Scan(&locked)
			return locked, scanErr
		})
		require.ErrorIs(t, err, shared.ErrTxContention)
		require.Equal(t, 4, attempts, "initial attempt plus three retries")
	})

	s.Run("a released lock lets a later attempt succeed", func() {
		t := s.T()
		id := dbtest.CreateTestFuelType(t, s.DB, "Petrol 95", "1.859", "100.000")
		pool := s.shortTimeoutPool(t)

		ctx := context.Background()
		release := s.lockRow(ctx, t, id)
		defer release()
		timer := time.AfterFunc(600*time.Millisecond, release)
		defer timer.Stop()

		attempts := 0
		got, err := shared.WithDefaultRetry(ctx, pool, func(tx db.DBTX) (int64, error) {
			attempts++
			var locked int64
			scanErr := tx.QueryRow(ctx, "SELECT id FROM fuel_types WHERE id = $1 FOR UPDATE", id).Scan(&locked)
			return locked, scanErr
		})
		require.NoError(t, err)
		require.Equal(t, id, got)
		require.GreaterOrEqual(t, attempts, 2, "first attempt must have timed out on the held lock")
	})

	s.Run("business errors are returned without retrying", func() {
		t := s.T()
		attempts := 0
		failure := errors.New("tank offline")
		_, err := shared.WithDefaultRetry(context.Background(), s.DB, func(db.DBTX) (struct{}, error) {
			attempts++
			return struct{}{}, failure
		})
		require.ErrorIs(t, err, failure)
		require.NotErrorIs(t, err, shared.ErrTxContention)
		require.Equal(t, 1, attempts)
	})
}
