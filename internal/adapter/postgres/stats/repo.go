// Package stats implements the user stats repository using PostgreSQL.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/heartmarshall/braindump-backend/internal/adapter/postgres"
	"github.com/heartmarshall/braindump-backend/internal/domain"
)

const table = "user_stats"

var columns = []string{"owner_id", "current_xp", "current_level", "streak_count", "last_active_date", "updated_at"}

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides user stats persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new stats repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const insertBootstrapSQL = `
INSERT INTO user_stats (owner_id, current_xp, current_level, streak_count, last_active_date)
VALUES ($1, 0, 1, 0, NULL)
ON CONFLICT (owner_id) DO NOTHING`

// GetOrCreate returns the owner's stats row, creating the level-1 bootstrap
// row if none exists yet. A user with no row behaves as level 1, zero
// experience, zero streak.
func (r *Repo) GetOrCreate(ctx context.Context, ownerID uuid.UUID) (*domain.UserStats, error) {
	return r.getOrCreate(ctx, ownerID, false)
}

// GetOrCreateForUpdate is GetOrCreate with a row lock. Must be called inside
// a transaction; it serializes concurrent accruals for the same owner.
func (r *Repo) GetOrCreateForUpdate(ctx context.Context, ownerID uuid.UUID) (*domain.UserStats, error) {
	return r.getOrCreate(ctx, ownerID, true)
}

func (r *Repo) getOrCreate(ctx context.Context, ownerID uuid.UUID, forUpdate bool) (*domain.UserStats, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, insertBootstrapSQL, ownerID); err != nil {
		return nil, postgres.MapError(err, "user_stats", ownerID)
	}

	sel := qb.Select(columns...).
		From(table).
		Where(squirrel.Eq{"owner_id": ownerID})
	if forUpdate {
		sel = sel.Suffix("FOR UPDATE")
	}

	sql, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	stats, err := scanStats(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user_stats", ownerID)
	}

	return stats, nil
}

// Update persists a stats snapshot. The caller guarantees the snapshot was
// read under the same transaction's row lock.
func (r *Repo) Update(ctx context.Context, stats domain.UserStats) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Update(table).
		Set("current_xp", stats.CurrentXP).
		Set("current_level", stats.CurrentLevel).
		Set("streak_count", stats.StreakCount).
		Set("last_active_date", dateToPg(stats.LastActiveDate)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"owner_id": stats.OwnerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "user_stats", stats.OwnerID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user_stats %s: %w", stats.OwnerID, domain.ErrNotFound)
	}

	return nil
}

// scanStats reads one stats row in column order.
func scanStats(row pgx.Row) (*domain.UserStats, error) {
	var (
		stats      domain.UserStats
		lastActive pgtype.Date
	)
	err := row.Scan(
		&stats.OwnerID,
		&stats.CurrentXP,
		&stats.CurrentLevel,
		&stats.StreakCount,
		&lastActive,
		&stats.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if lastActive.Valid {
		d := lastActive.Time.UTC()
		stats.LastActiveDate = &d
	}

	return &stats, nil
}

// dateToPg converts a *time.Time to pgtype.Date (nil → NULL).
func dateToPg(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: *t, Valid: true}
}
