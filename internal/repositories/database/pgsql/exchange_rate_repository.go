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

const exchangeRateColumns = `
	exchange_rate_id, from_currency, to_currency, rate, fee_flat, fee_percentage,
	min_amount, max_amount, status, valid_from, valid_until, quote_ttl_seconds,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxExchangeRateRepository implements the exchange rate ports using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

func newPgxExchangeRateRepository(db *pgxpool.Pool) portsrepo.ExchangeRateRepositoryFacade {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

func scanExchangeRate(row pgx.Row) (models.ExchangeRate, error) {
	var m models.ExchangeRate
	err := row.Scan(
		&m.ExchangeRateID, &m.FromCurrency, &m.ToCurrency, &m.Rate, &m.FeeFlat, &m.FeePercentage,
		&m.MinAmount, &m.MaxAmount, &m.Status, &m.ValidFrom, &m.ValidUntil, &m.QuoteTTLSeconds,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func collectExchangeRates(rows pgx.Rows) ([]domain.ExchangeRate, error) {
	defer rows.Close()

	rates := []domain.ExchangeRate{}
	for rows.Next() {
		m, err := scanExchangeRate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan exchange rate: %w", err)
		}
		rates = append(rates, mapping.ToDomainExchangeRate(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating exchange rates: %w", err)
	}
	return rates, nil
}

// FindUnexpiredExchangeRates returns the pair's active rows whose window has not closed by now,
// including rows scheduled to start later. Newest window first.
func (r *PgxExchangeRateRepository) FindUnexpiredExchangeRates(ctx context.Context, from, to domain.CurrencyCode, now time.Time) ([]domain.ExchangeRate, error) {
	query := `SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE from_currency = $1 AND to_currency = $2
		  AND status = 'active'
		  AND (valid_until IS NULL OR valid_until > $3)
		ORDER BY valid_from DESC;`

	rows, err := r.Pool.Query(ctx, query, string(from), string(to), now)
	if err != nil {
		return nil, fmt.Errorf("failed to query active exchange rates %s->%s: %w", from, to, err)
	}
	return collectExchangeRates(rows)
}

// FindExchangeRateByID retrieves an exchange rate by its ID.
func (r *PgxExchangeRateRepository) FindExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error) {
	query := `SELECT ` + exchangeRateColumns + ` FROM exchange_rates WHERE exchange_rate_id = $1;`

	m, err := scanExchangeRate(r.Pool.QueryRow(ctx, query, rateID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find exchange rate %s: %w", rateID, err)
	}

	rate := mapping.ToDomainExchangeRate(m)
	return &rate, nil
}

// ListExchangeRates retrieves exchange rates with optional filtering, newest first.
func (r *PgxExchangeRateRepository) ListExchangeRates(ctx context.Context, filter portsrepo.ExchangeRateFilter, limit, offset int) ([]domain.ExchangeRate, error) {
	query := `SELECT ` + exchangeRateColumns + ` FROM exchange_rates WHERE 1=1`
	args := []interface{}{}
	argNum := 1

	if filter.FromCurrency != nil {
		query += fmt.Sprintf(" AND from_currency = $%d", argNum)
		args = append(args, string(*filter.FromCurrency))
		argNum++
	}
	if filter.ToCurrency != nil {
		query += fmt.Sprintf(" AND to_currency = $%d", argNum)
		args = append(args, string(*filter.ToCurrency))
		argNum++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, string(*filter.Status))
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC, exchange_rate_id LIMIT $%d OFFSET $%d;", argNum, argNum+1)
	args = append(args, limit, offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates: %w", err)
	}
	return collectExchangeRates(rows)
}

// SaveExchangeRate inserts a new rate. When the rate is active the pair is locked for the
// duration of the insert and any active row with an intersecting window is rejected.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		if rate.Status == domain.RateActive {
			if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1));`, string(rate.FromCurrency)+":"+string(rate.ToCurrency)); err != nil {
				return fmt.Errorf("failed to lock currency pair: %w", err)
			}

			rows, err := tx.Query(ctx, `SELECT `+exchangeRateColumns+`
				FROM exchange_rates
				WHERE from_currency = $1 AND to_currency = $2 AND status = 'active';`,
				string(rate.FromCurrency), string(rate.ToCurrency))
			if err != nil {
				return fmt.Errorf("failed to query active exchange rates: %w", err)
			}
			existing, err := collectExchangeRates(rows)
			if err != nil {
				return err
			}
			for _, other := range existing {
				if rate.Overlaps(other) {
					return fmt.Errorf("%w: conflicts with %s", apperrors.ErrOverlappingRate, other.ExchangeRateID)
				}
			}
		}

		m := mapping.ToModelExchangeRate(rate)
		if _, err := tx.Exec(ctx, `
			INSERT INTO exchange_rates (`+exchangeRateColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);`,
			m.ExchangeRateID, m.FromCurrency, m.ToCurrency, m.Rate, m.FeeFlat, m.FeePercentage,
			m.MinAmount, m.MaxAmount, m.Status, m.ValidFrom, m.ValidUntil, m.QuoteTTLSeconds,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("exchange rate %s: %w", m.ExchangeRateID, apperrors.ErrDuplicate)
			}
			return fmt.Errorf("failed to insert exchange rate: %w", err)
		}
		return nil
	})
}

// UpdateExchangeRateStatus changes the status of a rate.
func (r *PgxExchangeRateRepository) UpdateExchangeRateStatus(ctx context.Context, rateID string, status domain.RateStatus, updatedBy string, now time.Time) error {
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE exchange_rates
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE exchange_rate_id = $4;`,
		string(status), now, updatedBy, rateID,
	)
	if err != nil {
		return fmt.Errorf("failed to update exchange rate status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("exchange rate %s: %w", rateID, apperrors.ErrNotFound)
	}
	return nil
}
