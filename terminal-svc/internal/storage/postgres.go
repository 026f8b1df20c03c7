package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"restopos/terminal-svc/internal/domain"
)

// PostgresJournal records the payment taken for each closed order. The
// backend's close endpoint does not accept it, so this is the only copy.
type PostgresJournal struct {
	DB *sql.DB
}

func NewPostgresJournal(db *sql.DB) *PostgresJournal {
	return &PostgresJournal{DB: db}
}

func (r *PostgresJournal) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS receipts (
			order_id INTEGER PRIMARY KEY,
			payment_amount BIGINT NOT NULL,
			payment_method TEXT NOT NULL,
			change_amount BIGINT NOT NULL DEFAULT 0,
			cashier_name TEXT NOT NULL DEFAULT '',
			snapshot JSONB NOT NULL,
			printed_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		"CREATE INDEX IF NOT EXISTS receipts_printed_at_idx ON receipts (printed_at)",
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

func (r *PostgresJournal) SaveReceipt(ctx context.Context, entry domain.ReceiptEntry) error {
	snapshot, err := json.Marshal(entry.Order)
	if err != nil {
		return fmt.Errorf("encode order snapshot: %w", err)
	}
	_, err = r.DB.ExecContext(ctx, `
		INSERT INTO receipts (order_id, payment_amount, payment_method, change_amount, cashier_name, snapshot, printed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (order_id) DO UPDATE
		SET payment_amount = EXCLUDED.payment_amount,
			payment_method = EXCLUDED.payment_method,
			change_amount = EXCLUDED.change_amount,
			cashier_name = EXCLUDED.cashier_name,
			snapshot = EXCLUDED.snapshot,
			printed_at = EXCLUDED.printed_at
	`, entry.OrderID, int64(entry.Payment.Amount), string(entry.Payment.Method), int64(entry.Payment.Change),
		entry.CashierName, snapshot, entry.PrintedAt)
	return err
}

// GetReceipt returns nil without error when no payment was recorded.
func (r *PostgresJournal) GetReceipt(ctx context.Context, orderID int) (*domain.ReceiptEntry, error) {
	var (
		entry    domain.ReceiptEntry
		amount   int64
		method   string
		change   int64
		snapshot []byte
	)
	err := r.DB.QueryRowContext(ctx, `
		SELECT order_id, payment_amount, payment_method, change_amount, cashier_name, snapshot, printed_at
		FROM receipts
		WHERE order_id = $1
	`, orderID).Scan(&entry.OrderID, &amount, &method, &change, &entry.CashierName, &snapshot, &entry.PrintedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	entry.Payment = domain.Payment{
		Amount: domain.Money(amount),
		Method: domain.PaymentMethod(method),
		Change: domain.Money(change),
	}
	if err := json.Unmarshal(snapshot, &entry.Order); err != nil {
		return nil, fmt.Errorf("decode order snapshot: %w", err)
	}
	return &entry, nil
}
