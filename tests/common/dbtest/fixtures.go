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

func CreateTestConsultant(t *testing.T, db DBLike, displayName string) uuid.UUID {
	t.Helper()

	consultantID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx,
		"INSERT INTO consultants (id, display_name) VALUES ($1, $2)",
		consultantID, displayName)
	require.NoError(t, err)
	return consultantID
}

// CreateWeekdayTemplate installs a Monday-to-Friday 09:00-17:00
// template in the given timezone, effective from 2026-01-01.
func CreateWeekdayTemplate(t *testing.T, db DBLike, consultantID uuid.UUID, timezone string) uuid.UUID {
	t.Helper()

	templateID := uuid.New()
	ctx := context.Background()
	effectiveFrom := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := db.Exec(ctx, `
		INSERT INTO availability_templates (id, consultant_id, timezone, buffer_before_secs, buffer_after_secs, max_per_day, effective_from)
		VALUES ($1, $2, $3, 0, 0, 0, $4)`,
		templateID, consultantID, timezone, effectiveFrom)
	require.NoError(t, err)

	for weekday := 1; weekday <= 5; weekday++ {
		_, err := db.Exec(ctx, `
			INSERT INTO availability_template_windows (template_id, weekday, open_min, close_min)
			VALUES ($1, $2, $3, $4)`,
			templateID, weekday, 9*60, 17*60)
		require.NoError(t, err)
	}
	return templateID
}

func CreateTestCoupon(t *testing.T, db DBLike, code, discountType string, discountValue int64) uuid.UUID {
	t.Helper()

	couponID := uuid.New()
	ctx := context.Background()
	tag, err := db.Exec(ctx, `
		INSERT INTO coupons (id, code, discount_type, discount_value, active)
		VALUES ($1, $2, $3, $4, true)
		ON CONFLICT (code) DO NOTHING`,
		couponID, code, discountType, discountValue)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM coupons WHERE code = $1", code).Scan(&couponID)
	}
	return couponID
}

// CreateLimitedCoupon is CreateTestCoupon with a total usage cap.
func CreateLimitedCoupon(t *testing.T, db DBLike, code, discountType string, discountValue int64, maxUsesTotal int) uuid.UUID {
	t.Helper()

	couponID := uuid.New()
	ctx := context.Background()
	tag, err := db.Exec(ctx, `
		INSERT INTO coupons (id, code, discount_type, discount_value, max_uses_total, active)
		VALUES ($1, $2, $3, $4, $5, true)
		ON CONFLICT (code) DO NOTHING`,
		couponID, code, discountType, discountValue, maxUsesTotal)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM coupons WHERE code = $1", code).Scan(&couponID)
	}
	return couponID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO services (type, duration_secs, base_price_cents, active) VALUES
		    ('initial_consultation', 1800, 5000, true),
		    ('strategy_session', 3600, 12000, true),
		    ('follow_up', 1800, 3000, true)
		ON CONFLICT (type) DO NOTHING;
	`)
	if err != nil {
		return err
	}

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
