package models

import "time"

// KYCDocument is a row of the kyc_documents table.
type KYCDocument struct {
	DocumentID   string    `db:"document_id"`
	UserID       string    `db:"user_id"`
	DocumentType string    `db:"document_type"`
	StorageKey   string    `db:"storage_key"`
	FileURL      string    `db:"file_url"`
	ContentType  string    `db:"content_type"`
	Status       string    `db:"status"`
	UploadedAt   time.Time `db:"uploaded_at"`
}
