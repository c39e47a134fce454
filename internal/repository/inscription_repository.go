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

const inscriptionColumns = `id, event_id, user_id, status, notes, created_at, updated_at`

type InscriptionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Inscription, error)
	ListByUser(ctx context.Context, userID uuid.UUID, params model.ListInscriptionsParams) ([]*model.Inscription, int, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*model.Inscription, error)

	// Transaction methods
	Create(ctx context.Context, tx pgx.Tx, inscription *model.Inscription) (*model.Inscription, error)
	FindByEventAndUser(ctx context.Context, tx pgx.Tx, eventID, userID uuid.UUID) (*model.Inscription, error)
	FindByIDWithLock(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*model.Inscription, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status model.InscriptionStatus) (*model.Inscription, error)
	CancelAllActiveByEvent(ctx context.Context, tx pgx.Tx, eventID uuid.UUID) ([]*model.Inscription, error)
}

type InscriptionRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewInscriptionRepository(pool *pgxpool.Pool) InscriptionRepository {
	return &InscriptionRepositoryImpl{
		pool: pool,
	}
}

func scanInscription(row pgx.Row) (*model.Inscription, error) {
	var inscription model.Inscription
	err := row.Scan(
		&inscription.ID,
		&inscription.EventID,
		&inscription.UserID,
		&inscription.Status,
		&inscription.Notes,
		&inscription.CreatedAt,
		&inscription.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inscription, nil
}

func (r *InscriptionRepositoryImpl) Create(ctx context.Context, tx pgx.Tx, inscription *model.Inscription) (*model.Inscription, error) {
	query := fmt.Sprintf(`
		INSERT INTO inscriptions (id, event_id, user_id, status, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s
	`, inscriptionColumns)

	created, err := scanInscription(tx.QueryRow(ctx, query,
		inscription.ID, inscription.EventID, inscription.UserID, inscription.Status, inscription.Notes,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create inscription: %w", err)
	}

	return created, nil
}

func (r *InscriptionRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*model.Inscription, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM inscriptions
		WHERE id = $1
	`, inscriptionColumns)

	inscription, err := scanInscription(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrInscriptionNotFound
		}
		return nil, err
	}

	return inscription, nil
}

func (r *InscriptionRepositoryImpl) FindByIDWithLock(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*model.Inscription, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM inscriptions
		WHERE id = $1
		FOR UPDATE
	`, inscriptionColumns)

	inscription, err := scanInscription(tx.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrInscriptionNotFound
		}
		return nil, err
	}

	return inscription, nil
}

// FindByEventAndUser 取得 (event, user) 的報名紀錄並加鎖。
// 每對 (event, user) 最多一筆非取消的紀錄；取消後重新報名會重用同一筆。
func (r *InscriptionRepositoryImpl) FindByEventAndUser(ctx context.Context, tx pgx.Tx, eventID, userID uuid.UUID) (*model.Inscription, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM inscriptions
		WHERE event_id = $1 AND user_id = $2
		ORDER BY created_at DESC
		LIMIT 1
		FOR UPDATE
	`, inscriptionColumns)

	inscription, err := scanInscription(tx.QueryRow(ctx, query, eventID, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrInscriptionNotFound
		}
		return nil, err
	}

	return inscription, nil
}

func (r *InscriptionRepositoryImpl) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status model.InscriptionStatus) (*model.Inscription, error) {
	query := fmt.Sprintf(`
		UPDATE inscriptions
		SET status = $1, updated_at = $2
		WHERE id = $3
		RETURNING %s
	`, inscriptionColumns)

	inscription, err := scanInscription(tx.QueryRow(ctx, query, status, time.Now().UTC(), id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrInscriptionNotFound
		}
		return nil, fmt.Errorf("failed to update inscription status: %w", err)
	}

	return inscription, nil
}

// CancelAllActiveByEvent 取消活動底下所有未取消的報名，回傳受影響的紀錄供通知使用
func (r *InscriptionRepositoryImpl) CancelAllActiveByEvent(ctx context.Context, tx pgx.Tx, eventID uuid.UUID) ([]*model.Inscription, error) {
	query := fmt.Sprintf(`
		UPDATE inscriptions
		SET status = $1, updated_at = $2
		WHERE event_id = $3 AND status != $1
		RETURNING %s
	`, inscriptionColumns)

	rows, err := tx.Query(ctx, query, model.InscriptionStatusCancelled, time.Now().UTC(), eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	inscriptions := make([]*model.Inscription, 0)
	for rows.Next() {
		inscription, err := scanInscription(rows)
		if err != nil {
			return nil, err
		}
		inscriptions = append(inscriptions, inscription)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return inscriptions, nil
}

func (r *InscriptionRepositoryImpl) ListByUser(ctx context.Context, userID uuid.UUID, params model.ListInscriptionsParams) ([]*model.Inscription, int, error) {
	params.Normalize()

	wheres := []string{"user_id = $1"}
	args := []interface{}{userID}
	argPos := 2

	if params.Status != nil {
		wheres = append(wheres, fmt.Sprintf("status = $%d", argPos))
		args = append(args, *params.Status)
		argPos++
	}

	whereClause := "WHERE " + strings.Join(wheres, " AND ")

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM inscriptions %s", whereClause)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM inscriptions
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, inscriptionColumns, whereClause, argPos, argPos+1)
	args = append(args, params.Limit, (params.Page-1)*params.Limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	inscriptions := make([]*model.Inscription, 0)
	for rows.Next() {
		inscription, err := scanInscription(rows)
		if err != nil {
			return nil, 0, err
		}
		inscriptions = append(inscriptions, inscription)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return inscriptions, total, nil
}

func (r *InscriptionRepositoryImpl) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*model.Inscription, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM inscriptions
		WHERE event_id = $1
		ORDER BY created_at DESC
	`, inscriptionColumns)

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	inscriptions := make([]*model.Inscription, 0)
	for rows.Next() {
		inscription, err := scanInscription(rows)
		if err != nil {
			return nil, err
		}
		inscriptions = append(inscriptions, inscription)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return inscriptions, nil
}
