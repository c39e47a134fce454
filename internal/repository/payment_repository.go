package repository

import (
	"context"
	"fmt"
	"time"

	"onelastevent/internal/model"
	apperrors "onelastevent/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const paymentColumns = `id, user_id, event_id, inscription_id, amount, currency,
		provider, provider_payment_id, client_secret, status, refunded_at,
		created_at, updated_at`

type PaymentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Payment, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Payment, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*model.Payment, error)
	RevenueByEvent(ctx context.Context, eventID uuid.UUID) (float64, error)

	// Transaction methods
	Create(ctx context.Context, tx pgx.Tx, payment *model.Payment) (*model.Payment, error)
	FindByIDWithLock(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*model.Payment, error)
	FindActiveByInscription(ctx context.Context, tx pgx.Tx, inscriptionID uuid.UUID) (*model.Payment, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, from, to model.PaymentStatus) (*model.Payment, error)
	SetProviderInfo(ctx context.Context, tx pgx.Tx, id uuid.UUID, providerPaymentID string, clientSecret *string) error
	MarkRefunded(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*model.Payment, error)
}

type PaymentRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewPaymentRepository(pool *pgxpool.Pool) PaymentRepository {
	return &PaymentRepositoryImpl{
		pool: pool,
	}
}

func scanPayment(row pgx.Row) (*model.Payment, error) {
	var payment model.Payment
	err := row.Scan(
		&payment.ID,
		&payment.UserID,
		&payment.EventID,
		&payment.InscriptionID,
		&payment.Amount,
		&payment.Currency,
		&payment.Provider,
		&payment.ProviderPaymentID,
		&payment.ClientSecret,
		&payment.Status,
		&payment.RefundedAt,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepositoryImpl) Create(ctx context.Context, tx pgx.Tx, payment *model.Payment) (*model.Payment, error) {
	query := fmt.Sprintf(`
		INSERT INTO payments (
			id, user_id, event_id, inscription_id, amount, currency, provider, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s
	`, paymentColumns)

	created, err := scanPayment(tx.QueryRow(ctx, query,
		payment.ID, payment.UserID, payment.EventID, payment.InscriptionID,
		payment.Amount, payment.Currency, payment.Provider, payment.Status,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	return created, nil
}

func (r *PaymentRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*model.Payment, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM payments
		WHERE id = $1
	`, paymentColumns)

	payment, err := scanPayment(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, err
	}

	return payment, nil
}

func (r *PaymentRepositoryImpl) FindByIDWithLock(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*model.Payment, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM payments
		WHERE id = $1
		FOR UPDATE
	`, paymentColumns)

	payment, err := scanPayment(tx.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, err
	}

	return payment, nil
}

// FindActiveByInscription 取得報名目前佔用額度的付款（PENDING 或 PAID），同時只會有一筆
func (r *PaymentRepositoryImpl) FindActiveByInscription(ctx context.Context, tx pgx.Tx, inscriptionID uuid.UUID) (*model.Payment, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM payments
		WHERE inscription_id = $1 AND status IN ($2, $3)
		ORDER BY created_at DESC
		LIMIT 1
		FOR UPDATE
	`, paymentColumns)

	payment, err := scanPayment(tx.QueryRow(ctx, query,
		inscriptionID, model.PaymentStatusPending, model.PaymentStatusPaid,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, err
	}

	return payment, nil
}

// UpdateStatus 付款狀態轉換採 compare-and-set：只有目前狀態等於 from 才會更新
func (r *PaymentRepositoryImpl) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, from, to model.PaymentStatus) (*model.Payment, error) {
	query := fmt.Sprintf(`
		UPDATE payments
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4
		RETURNING %s
	`, paymentColumns)

	payment, err := scanPayment(tx.QueryRow(ctx, query, to, time.Now().UTC(), id, from))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrPaymentNotPending
		}
		return nil, fmt.Errorf("failed to update payment status: %w", err)
	}

	return payment, nil
}

func (r *PaymentRepositoryImpl) SetProviderInfo(ctx context.Context, tx pgx.Tx, id uuid.UUID, providerPaymentID string, clientSecret *string) error {
	query := `
		UPDATE payments
		SET provider_payment_id = $1, client_secret = $2, updated_at = $3
		WHERE id = $4
	`

	result, err := tx.Exec(ctx, query, providerPaymentID, clientSecret, time.Now().UTC(), id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrPaymentNotFound
	}

	return nil
}

// MarkRefunded 只有 PAID 的付款能轉 REFUNDED，並寫入退款時間
func (r *PaymentRepositoryImpl) MarkRefunded(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*model.Payment, error) {
	query := fmt.Sprintf(`
		UPDATE payments
		SET status = $1, refunded_at = $2, updated_at = $2
		WHERE id = $3 AND status = $4
		RETURNING %s
	`, paymentColumns)

	payment, err := scanPayment(tx.QueryRow(ctx, query,
		model.PaymentStatusRefunded, time.Now().UTC(), id, model.PaymentStatusPaid,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrCannotRefund
		}
		return nil, fmt.Errorf("failed to mark payment refunded: %w", err)
	}

	return payment, nil
}

func (r *PaymentRepositoryImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Payment, error) {
	return r.list(ctx, "user_id", userID)
}

func (r *PaymentRepositoryImpl) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*model.Payment, error) {
	return r.list(ctx, "event_id", eventID)
}

func (r *PaymentRepositoryImpl) list(ctx context.Context, column string, id uuid.UUID) ([]*model.Payment, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM payments
		WHERE %s = $1
		ORDER BY created_at DESC
	`, paymentColumns, column)

	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]*model.Payment, 0)
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}

func (r *PaymentRepositoryImpl) RevenueByEvent(ctx context.Context, eventID uuid.UUID) (float64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM payments
		WHERE event_id = $1 AND status = $2
	`

	var revenue float64
	err := r.pool.QueryRow(ctx, query, eventID, model.PaymentStatusPaid).Scan(&revenue)
	if err != nil {
		return 0, err
	}

	return revenue, nil
}
