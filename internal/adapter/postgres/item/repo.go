// Package item implements the item repository using PostgreSQL.
// It owns the persistence of captured items and their monotonic status
// transitions.
package item

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/braindump-backend/internal/adapter/postgres"
	"github.com/heartmarshall/braindump-backend/internal/domain"
)

const table = "items"

var columns = []string{"id", "owner_id", "content", "status", "reward_value", "created_at"}

// qb builds queries with PostgreSQL placeholders.
var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides item persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new item repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Insert stores a new captured item. The ID is assigned by the database,
// never by the client.
func (r *Repo) Insert(ctx context.Context, ownerID uuid.UUID, content string, rewardValue int) (*domain.Item, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Insert(table).
		Columns("owner_id", "content", "status", "reward_value").
		Values(ownerID, content, domain.StatusCaptured, rewardValue).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	item, err := scanItem(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "item", uuid.Nil)
	}

	return item, nil
}

// GetByID returns an item by primary key.
// Returns domain.ErrNotFound if the item does not exist or belongs to another owner.
func (r *Repo) GetByID(ctx context.Context, ownerID, itemID uuid.UUID) (*domain.Item, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": itemID, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	item, err := scanItem(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "item", itemID)
	}

	return item, nil
}

// ListActive returns the owner's captured items, most recent first.
// Resolved and discarded items never appear here.
func (r *Repo) ListActive(ctx context.Context, ownerID uuid.UUID) ([]*domain.Item, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Select(columns...).
		From(table).
		Where(squirrel.Eq{"owner_id": ownerID, "status": domain.StatusCaptured}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []*domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	return items, nil
}

// CountActive returns the number of captured items for an owner.
func (r *Repo) CountActive(ctx context.Context, ownerID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{"owner_id": ownerID, "status": domain.StatusCaptured}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	var count int
	if err := q.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}

	return count, nil
}

// UpdateStatus transitions an item from one status to another. The WHERE
// clause carries the expected current status, so the first concurrent
// transition wins and every loser observes zero affected rows.
//
// Returns domain.ErrNotFound if the item does not exist (or belongs to
// another owner) and domain.ErrStaleWrite if it exists but has already left
// the expected status.
func (r *Repo) UpdateStatus(ctx context.Context, ownerID, itemID uuid.UUID, from, to domain.ItemStatus) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Update(table).
		Set("status", to).
		Where(squirrel.Eq{"id": itemID, "owner_id": ownerID, "status": from}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "item", itemID)
	}

	if tag.RowsAffected() == 0 {
		return r.classifyMiss(ctx, ownerID, itemID)
	}

	return nil
}

// classifyMiss distinguishes a missing item from a lost transition race
// after a conditional update affected zero rows.
func (r *Repo) classifyMiss(ctx context.Context, ownerID, itemID uuid.UUID) error {
	current, err := r.GetByID(ctx, ownerID, itemID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("item %s: %w", itemID, domain.ErrNotFound)
		}
		return err
	}
	return fmt.Errorf("item %s already %s: %w", itemID, current.Status, domain.ErrStaleWrite)
}

func columnList() string {
	s := columns[0]
	for _, c := range columns[1:] {
		s += ", " + c
	}
	return s
}

// scanItem reads one item row in column order.
func scanItem(row pgx.Row) (*domain.Item, error) {
	var item domain.Item
	err := row.Scan(
		&item.ID,
		&item.OwnerID,
		&item.Content,
		&item.Status,
		&item.RewardValue,
		&item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
