package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
	portsrepo "github.com/SscSPs/cross_currency_wallet/internal/core/ports/repositories"
	"github.com/SscSPs/cross_currency_wallet/internal/models"
	"github.com/SscSPs/cross_currency_wallet/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxKYCRepository struct {
	BaseRepository
}

func newPgxKYCRepository(db *pgxpool.Pool) portsrepo.KYCRepositoryFacade {
	return &PgxKYCRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.KYCRepositoryFacade = (*PgxKYCRepository)(nil)

func (r *PgxKYCRepository) SaveKYCDocument(ctx context.Context, doc domain.KYCDocument) error {
	m := mapping.ToModelKYCDocument(doc)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO kyc_documents (document_id, user_id, document_type, storage_key, file_url, content_type, status, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
		m.DocumentID, m.UserID, m.DocumentType, m.StorageKey, m.FileURL, m.ContentType, m.Status, m.UploadedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save kyc document: %w", err)
	}
	return nil
}

func (r *PgxKYCRepository) ListKYCDocumentsByUser(ctx context.Context, userID string) ([]domain.KYCDocument, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT document_id, user_id, document_type, storage_key, file_url, content_type, status, uploaded_at
		FROM kyc_documents
		WHERE user_id = $1
		ORDER BY uploaded_at DESC;`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list kyc documents: %w", err)
	}
	defer rows.Close()

	docs := []domain.KYCDocument{}
	for rows.Next() {
		var m models.KYCDocument
		if err := rows.Scan(&m.DocumentID, &m.UserID, &m.DocumentType, &m.StorageKey, &m.FileURL, &m.ContentType, &m.Status, &m.UploadedAt); err != nil {
			return nil, fmt.Errorf("failed to scan kyc document: %w", err)
		}
		docs = append(docs, mapping.ToDomainKYCDocument(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating kyc documents: %w", err)
	}
	return docs, nil
}
