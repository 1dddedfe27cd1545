package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/cross_currency_wallet/internal/apperrors"
	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
	portsrepo "github.com/SscSPs/cross_currency_wallet/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxSettlementRepository applies exchanges against wallets, quotes and the ledger in one transaction.
type PgxSettlementRepository struct {
	BaseRepository
}

func newPgxSettlementRepository(db *pgxpool.Pool) portsrepo.SettlementRepositoryWithTx {
	return &PgxSettlementRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.SettlementRepositoryWithTx = (*PgxSettlementRepository)(nil)

func (r *PgxSettlementRepository) SettleExchange(ctx context.Context, s portsrepo.ExchangeSettlement) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		if err := r.lockWallets(ctx, tx, s.FromWalletID, s.ToWalletID); err != nil {
			return err
		}

		cmdTag, err := tx.Exec(ctx, `
			UPDATE quotes
			SET status = 'executed', executed_at = $1
			WHERE quote_id = $2 AND status = 'active' AND expires_at > $1;`,
			s.SettledAt, s.QuoteID,
		)
		if err != nil {
			return fmt.Errorf("failed to mark quote %s executed: %w", s.QuoteID, err)
		}
		if cmdTag.RowsAffected() == 0 {
			return r.unflippedQuoteError(ctx, tx, s.QuoteID, s.SettledAt)
		}

		batch := &pgx.Batch{}
		batch.Queue(`
			UPDATE wallets
			SET balance = balance - $1, available_balance = available_balance - $1, updated_at = $2
			WHERE wallet_id = $3 AND status = 'active' AND available_balance >= $1;`,
			s.DebitAmount, s.SettledAt, s.FromWalletID)
		batch.Queue(`
			UPDATE wallets
			SET balance = balance + $1, available_balance = available_balance + $1, updated_at = $2
			WHERE wallet_id = $3 AND status = 'active';`,
			s.CreditAmount, s.SettledAt, s.ToWalletID)
		batch.Queue(`
			UPDATE transactions
			SET status = 'completed', processed_at = $1, completed_at = $1, updated_at = $1
			WHERE transaction_id = $2 AND status = 'processing';`,
			s.SettledAt, s.TransactionID)

		// Errors for a zero-row result of each queued statement, in queue order.
		noRowErrs := []error{
			apperrors.ErrInsufficientBalance,
			apperrors.ErrWalletNotActive,
			fmt.Errorf("ledger entry %s is not processing: %w", s.TransactionID, apperrors.ErrConflict),
		}

		br := tx.SendBatch(ctx, batch)
		var batchErr error
		for i := 0; i < batch.Len(); i++ {
			ct, err := br.Exec()
			if err != nil {
				batchErr = fmt.Errorf("settlement step %d failed: %w", i+1, err)
				break
			}
			if ct.RowsAffected() == 0 {
				batchErr = noRowErrs[i]
				break
			}
		}
		if err := br.Close(); err != nil && batchErr == nil {
			batchErr = fmt.Errorf("failed to close settlement batch: %w", err)
		}
		return batchErr
	})
}

// unflippedQuoteError explains why the active -> executed flip matched no row.
func (r *PgxSettlementRepository) unflippedQuoteError(ctx context.Context, tx pgx.Tx, quoteID string, settledAt time.Time) error {
	var status string
	var expiresAt time.Time
	err := tx.QueryRow(ctx, `SELECT status, expires_at FROM quotes WHERE quote_id = $1;`, quoteID).Scan(&status, &expiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrQuoteNotFound
		}
		return fmt.Errorf("failed to re-read quote %s: %w", quoteID, err)
	}
	return quoteFlipError(domain.QuoteStatus(status), expiresAt, settledAt)
}

func quoteFlipError(status domain.QuoteStatus, expiresAt, settledAt time.Time) error {
	switch {
	case status == domain.QuoteExpired:
		return apperrors.ErrQuoteExpired
	case status == domain.QuoteActive && !settledAt.Before(expiresAt):
		return apperrors.ErrQuoteExpired
	}
	return apperrors.ErrQuoteConsumed
}

// lockWallets takes row locks on both wallets in id order and checks both can move funds.
func (r *PgxSettlementRepository) lockWallets(ctx context.Context, tx pgx.Tx, walletIDs ...string) error {
	rows, err := tx.Query(ctx, `
		SELECT wallet_id, status
		FROM wallets
		WHERE wallet_id = ANY($1)
		ORDER BY wallet_id
		FOR UPDATE;`,
		walletIDs,
	)
	if err != nil {
		return fmt.Errorf("failed to lock wallets: %w", err)
	}
	defer rows.Close()

	found := 0
	for rows.Next() {
		var id, status string
		if err := rows.Scan(&id, &status); err != nil {
			return fmt.Errorf("failed to scan locked wallet row: %w", err)
		}
		if domain.WalletStatus(status) != domain.WalletActive {
			return fmt.Errorf("%w: wallet %s is %s", apperrors.ErrWalletNotActive, id, status)
		}
		found++
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating locked wallet rows: %w", err)
	}
	if found != len(walletIDs) {
		return apperrors.ErrWalletNotFound
	}
	return nil
}
