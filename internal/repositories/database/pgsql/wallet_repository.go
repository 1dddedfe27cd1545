package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/cross_currency_wallet/internal/apperrors"
	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
	portsrepo "github.com/SscSPs/cross_currency_wallet/internal/core/ports/repositories"
	"github.com/SscSPs/cross_currency_wallet/internal/models"
	"github.com/SscSPs/cross_currency_wallet/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const walletColumns = `
	wallet_id, user_id, currency, balance, available_balance, reserved_balance,
	status, daily_limit, monthly_limit, created_at, updated_at`

type PgxWalletRepository struct {
	BaseRepository
}

func newPgxWalletRepository(db *pgxpool.Pool) portsrepo.WalletRepositoryFacade {
	return &PgxWalletRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.WalletRepositoryFacade = (*PgxWalletRepository)(nil)

func scanWallet(row pgx.Row) (models.Wallet, error) {
	var m models.Wallet
	err := row.Scan(
		&m.WalletID, &m.UserID, &m.Currency, &m.Balance, &m.AvailableBalance, &m.ReservedBalance,
		&m.Status, &m.DailyLimit, &m.MonthlyLimit, &m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

func (r *PgxWalletRepository) findOne(ctx context.Context, where string, args ...interface{}) (*domain.Wallet, error) {
	m, err := scanWallet(r.Pool.QueryRow(ctx, `SELECT `+walletColumns+` FROM wallets WHERE `+where, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find wallet: %w", err)
	}
	w := mapping.ToDomainWallet(m)
	return &w, nil
}

func (r *PgxWalletRepository) FindWalletByUserAndCurrency(ctx context.Context, userID string, currency domain.CurrencyCode) (*domain.Wallet, error) {
	return r.findOne(ctx, `user_id = $1 AND currency = $2;`, userID, string(currency))
}

func (r *PgxWalletRepository) FindWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error) {
	return r.findOne(ctx, `wallet_id = $1;`, walletID)
}

func (r *PgxWalletRepository) ListWalletsByUser(ctx context.Context, userID string) ([]domain.Wallet, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+walletColumns+` FROM wallets WHERE user_id = $1 ORDER BY currency;`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallets for user %s: %w", userID, err)
	}
	defer rows.Close()

	wallets := []domain.Wallet{}
	for rows.Next() {
		m, err := scanWallet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wallet row: %w", err)
		}
		wallets = append(wallets, mapping.ToDomainWallet(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating wallet rows: %w", err)
	}
	return wallets, nil
}

func (r *PgxWalletRepository) CreateWalletIfMissing(ctx context.Context, wallet domain.Wallet) error {
	m := mapping.ToModelWallet(wallet)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO wallets (`+walletColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (user_id, currency) DO NOTHING;`,
		m.WalletID, m.UserID, m.Currency, m.Balance, m.AvailableBalance, m.ReservedBalance,
		m.Status, m.DailyLimit, m.MonthlyLimit, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create wallet: %w", err)
	}
	return nil
}
