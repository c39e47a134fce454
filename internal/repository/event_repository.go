package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"onelastevent/internal/model"
	apperrors "onelastevent/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const eventColumns = `id, organizer_id, title, description, location,
		start_datetime, end_datetime, capacity, current_participants,
		price, currency, status, image_url, tags, created_at, updated_at`

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error)
	List(ctx context.Context, params model.ListEventsParams) ([]*model.Event, int, error)
	Update(ctx context.Context, id uuid.UUID, params model.UpdateEventParams) (*model.Event, error)

	// Transaction methods
	FindByIDWithLock(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*model.Event, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, from, to model.EventStatus) (*model.Event, error)
	ReserveCapacity(ctx context.Context, tx pgx.Tx, id uuid.UUID) (bool, error)
	ReleaseCapacity(ctx context.Context, tx pgx.Tx, id uuid.UUID) error
}

type EventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &EventRepositoryImpl{
		pool: pool,
	}
}

func scanEvent(row pgx.Row) (*model.Event, error) {
	var event model.Event
	err := row.Scan(
		&event.ID,
		&event.OrganizerID,
		&event.Title,
		&event.Description,
		&event.Location,
		&event.StartDatetime,
		&event.EndDatetime,
		&event.Capacity,
		&event.CurrentParticipants,
		&event.Price,
		&event.Currency,
		&event.Status,
		&event.ImageURL,
		&event.Tags,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	query := fmt.Sprintf(`
		INSERT INTO events (
			id, organizer_id, title, description, location,
			start_datetime, end_datetime, capacity, price, currency, status, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING %s
	`, eventColumns)

	created, err := scanEvent(r.pool.QueryRow(ctx, query,
		event.ID, event.OrganizerID, event.Title, event.Description, event.Location,
		event.StartDatetime, event.EndDatetime, event.Capacity, event.Price,
		event.Currency, event.Status, event.Tags,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return created, nil
}

func (r *EventRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		WHERE id = $1
	`, eventColumns)

	event, err := scanEvent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	return event, nil
}

func (r *EventRepositoryImpl) FindByIDWithLock(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*model.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		WHERE id = $1
		FOR UPDATE
	`, eventColumns)

	event, err := scanEvent(tx.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	return event, nil
}

func (r *EventRepositoryImpl) List(ctx context.Context, params model.ListEventsParams) ([]*model.Event, int, error) {
	params.Normalize()

	wheres := []string{}
	args := []interface{}{}
	argPos := 1

	addWhere := func(clause string, value interface{}) {
		wheres = append(wheres, fmt.Sprintf(clause, argPos))
		args = append(args, value)
		argPos++
	}

	if params.Status != nil {
		addWhere("status = $%d", *params.Status)
	}
	if params.OrganizerID != nil {
		addWhere("organizer_id = $%d", *params.OrganizerID)
	}
	if params.Search != "" {
		addWhere("(title ILIKE $%[1]d OR description ILIKE $%[1]d OR location ILIKE $%[1]d)", "%"+params.Search+"%")
	}
	if params.MinPrice != nil {
		addWhere("price >= $%d", *params.MinPrice)
	}
	if params.MaxPrice != nil {
		addWhere("price <= $%d", *params.MaxPrice)
	}
	if params.From != nil {
		addWhere("start_datetime >= $%d", *params.From)
	}
	if params.To != nil {
		addWhere("start_datetime <= $%d", *params.To)
	}

	whereClause := ""
	if len(wheres) > 0 {
		whereClause = "WHERE " + strings.Join(wheres, " AND ")
	}

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM events %s", whereClause)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		%s
		ORDER BY start_datetime ASC NULLS LAST, created_at DESC
		LIMIT $%d OFFSET $%d
	`, eventColumns, whereClause, argPos, argPos+1)
	args = append(args, params.Limit, (params.Page-1)*params.Limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	events := make([]*model.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, 0, err
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return events, total, nil
}

func (r *EventRepositoryImpl) Update(ctx context.Context, id uuid.UUID, params model.UpdateEventParams) (*model.Event, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	addSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if params.Title != nil {
		addSet("title", *params.Title)
	}
	if params.Description != nil {
		addSet("description", *params.Description)
	}
	if params.Location != nil {
		addSet("location", *params.Location)
	}
	if params.StartDatetime != nil {
		addSet("start_datetime", *params.StartDatetime)
	}
	if params.EndDatetime != nil {
		addSet("end_datetime", *params.EndDatetime)
	}
	if params.Capacity != nil {
		addSet("capacity", *params.Capacity)
	}
	if params.Price != nil {
		addSet("price", *params.Price)
	}
	if params.Currency != nil {
		addSet("currency", *params.Currency)
	}
	if params.ImageURL != nil {
		addSet("image_url", *params.ImageURL)
	}
	if params.Tags != nil {
		addSet("tags", params.Tags)
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	// add updated_at
	sets = append(sets, fmt.Sprintf("updated_at = $%d", argPos))
	args = append(args, time.Now().UTC())
	argPos++

	// add id
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE events
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), argPos, eventColumns)

	event, err := scanEvent(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	return event, nil
}

// UpdateStatus 狀態轉換採 compare-and-set：只有目前狀態等於 from 才會更新
func (r *EventRepositoryImpl) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, from, to model.EventStatus) (*model.Event, error) {
	query := fmt.Sprintf(`
		UPDATE events
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4
		RETURNING %s
	`, eventColumns)

	event, err := scanEvent(tx.QueryRow(ctx, query, to, time.Now().UTC(), id, from))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to update event status: %w", err)
	}

	return event, nil
}

// ReserveCapacity 原子性地佔用一個名額：檢查與遞增在同一條 UPDATE 內完成，
// 兩個併發請求搶最後一個名額時只會有一個成功。名額不足時回傳 false 且不做任何變更。
func (r *EventRepositoryImpl) ReserveCapacity(ctx context.Context, tx pgx.Tx, id uuid.UUID) (bool, error) {
	query := `
		UPDATE events
		SET current_participants = current_participants + 1, updated_at = $1
		WHERE id = $2
		  AND status = $3
		  AND current_participants < capacity
	`

	result, err := tx.Exec(ctx, query, time.Now().UTC(), id, model.EventStatusPublished)
	if err != nil {
		return false, err
	}

	return result.RowsAffected() > 0, nil
}

// ReleaseCapacity 釋放一個名額，下限為 0
func (r *EventRepositoryImpl) ReleaseCapacity(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	query := `
		UPDATE events
		SET current_participants = GREATEST(current_participants - 1, 0), updated_at = $1
		WHERE id = $2
	`

	result, err := tx.Exec(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}
