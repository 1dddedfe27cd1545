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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const quoteColumns = `
	quote_id, user_id, rate_id, from_currency, to_currency, from_amount, exchange_rate,
	fee_flat, fee_percentage, total_fee, to_amount, status, expires_at, executed_at, created_at`

type PgxQuoteRepository struct {
	BaseRepository
}

func newPgxQuoteRepository(db *pgxpool.Pool) portsrepo.QuoteRepositoryFacade {
	return &PgxQuoteRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.QuoteRepositoryFacade = (*PgxQuoteRepository)(nil)

func (r *PgxQuoteRepository) FindQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE quote_id = $1;`

	var m models.Quote
	err := r.Pool.QueryRow(ctx, query, quoteID).Scan(
		&m.QuoteID, &m.UserID, &m.RateID, &m.FromCurrency, &m.ToCurrency, &m.FromAmount, &m.ExchangeRate,
		&m.FeeFlat, &m.FeePercentage, &m.TotalFee, &m.ToAmount, &m.Status, &m.ExpiresAt, &m.ExecutedAt, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find quote %s: %w", quoteID, err)
	}

	q := mapping.ToDomainQuote(m)
	return &q, nil
}

func (r *PgxQuoteRepository) SaveQuote(ctx context.Context, quote domain.Quote) error {
	m := mapping.ToModelQuote(quote)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO quotes (`+quoteColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);`,
		m.QuoteID, m.UserID, m.RateID, m.FromCurrency, m.ToCurrency, m.FromAmount, m.ExchangeRate,
		m.FeeFlat, m.FeePercentage, m.TotalFee, m.ToAmount, m.Status, m.ExpiresAt, m.ExecutedAt, m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("quote %s: %w", m.QuoteID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert quote: %w", err)
	}
	return nil
}

// TransitionQuoteStatus is a compare-and-set on the status column.
func (r *PgxQuoteRepository) TransitionQuoteStatus(ctx context.Context, quoteID string, from, to domain.QuoteStatus) error {
	cmdTag, err := r.Pool.Exec(ctx,
		`UPDATE quotes SET status = $1 WHERE quote_id = $2 AND status = $3;`,
		string(to), quoteID, string(from),
	)
	if err != nil {
		return fmt.Errorf("failed to transition quote %s: %w", quoteID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("quote %s is no longer %s: %w", quoteID, from, apperrors.ErrConflict)
	}
	return nil
}

func (r *PgxQuoteRepository) ExpireQuotes(ctx context.Context, now time.Time) (int64, error) {
	cmdTag, err := r.Pool.Exec(ctx,
		`UPDATE quotes SET status = 'expired' WHERE status = 'active' AND expires_at <= $1;`,
		now,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to expire quotes: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
