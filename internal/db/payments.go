package db

import (
	"context"
	"fmt"

	"mealia-backend/internal/models"
)

func (db *PostgresDB) SavePayment(ctx context.Context, payment *models.Payment) error {
	query := `
        INSERT INTO payments (user_id, amount, currency, stripe_session_id, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at
    `

	err := db.pool.QueryRow(ctx, query,
		payment.UserID, payment.Amount, payment.Currency,
		payment.StripeSessionID, payment.Status,
	).Scan(&payment.ID, &payment.CreatedAt, &payment.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to save payment: %w", err)
	}

	return nil
}

func (db *PostgresDB) UpdatePaymentStatus(ctx context.Context, stripeSessionID, status string) error {
	query := `
        UPDATE payments
        SET status = $2, updated_at = NOW()
        WHERE stripe_session_id = $1
    `

	_, err := db.pool.Exec(ctx, query, stripeSessionID, status)
	return err
}
