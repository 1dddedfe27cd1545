package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/cross_currency_wallet/internal/apperrors"
	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
	portsrepo "github.com/SscSPs/cross_currency_wallet/internal/core/ports/repositories"
	"github.com/SscSPs/cross_currency_wallet/internal/models"
	"github.com/SscSPs/cross_currency_wallet/internal/utils/mapping"
	"github.com/SscSPs/cross_currency_wallet/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const transactionColumns = `
	transaction_id, user_id, type, status, from_currency, to_currency, from_wallet_id, to_wallet_id,
	from_amount, to_amount, fee_amount, exchange_rate, quote_id, reference, description, metadata,
	error_message, processed_at, completed_at, created_at, updated_at`

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID, &m.UserID, &m.Type, &m.Status, &m.FromCurrency, &m.ToCurrency, &m.FromWalletID, &m.ToWalletID,
		&m.FromAmount, &m.ToAmount, &m.FeeAmount, &m.ExchangeRate, &m.QuoteID, &m.Reference, &m.Description, &m.Metadata,
		&m.ErrorMessage, &m.ProcessedAt, &m.CompletedAt, &m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	m, err := scanTransaction(r.Pool.QueryRow(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE transaction_id = $1;`, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// ListTransactionsByUser pages through a user's ledger newest first using a (created_at, transaction_id) keyset.
func (r *PgxTransactionRepository) ListTransactionsByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1`
	args := []interface{}{userID}

	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", err)
		}
		query += ` AND (created_at, transaction_id) < ($2, $3)`
		args = append(args, cursor.CreatedAt, cursor.ID)
	}
	// One extra row tells us whether another page exists.
	query += fmt.Sprintf(` ORDER BY created_at DESC, transaction_id DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list transactions for user %s: %w", userID, err)
	}
	defer rows.Close()

	results := []domain.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		results = append(results, mapping.ToDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	var nextTokenVal *string
	if len(results) > limit {
		results = results[:limit]
		last := results[len(results)-1]
		token := pagination.EncodeCursor(last.CreatedAt, last.TransactionID)
		nextTokenVal = &token
	}
	return results, nextTokenVal, nil
}

// SumOutgoingSince counts exchange debits that have not failed.
func (r *PgxTransactionRepository) SumOutgoingSince(ctx context.Context, walletID string, since time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.Pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(from_amount), 0)
		FROM transactions
		WHERE from_wallet_id = $1
		  AND created_at >= $2
		  AND status IN ('pending', 'processing', 'completed');`,
		walletID, since,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum outgoing transactions for wallet %s: %w", walletID, err)
	}
	return total, nil
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO transactions (`+transactionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);`,
		m.TransactionID, m.UserID, m.Type, m.Status, m.FromCurrency, m.ToCurrency, m.FromWalletID, m.ToWalletID,
		m.FromAmount, m.ToAmount, m.FeeAmount, m.ExchangeRate, m.QuoteID, m.Reference, m.Description, m.Metadata,
		m.ErrorMessage, m.ProcessedAt, m.CompletedAt, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("transaction %s: %w", m.TransactionID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

func (r *PgxTransactionRepository) MarkTransactionFailed(ctx context.Context, transactionID string, errorMessage string, now time.Time) error {
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE transactions
		SET status = 'failed', error_message = $1, processed_at = $2, updated_at = $2
		WHERE transaction_id = $3 AND status IN ('pending', 'processing');`,
		errorMessage, now, transactionID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark transaction %s failed: %w", transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("transaction %s is not in flight: %w", transactionID, apperrors.ErrConflict)
	}
	return nil
}
