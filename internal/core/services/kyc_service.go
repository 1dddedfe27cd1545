package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/SscSPs/cross_currency_wallet/internal/apperrors"
	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
	portsrepo "github.com/SscSPs/cross_currency_wallet/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cross_currency_wallet/internal/core/ports/services"
	"github.com/google/uuid"
)

var allowedKYCContentTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"application/pdf": ".pdf",
}

type kycService struct {
	BaseService
	kycRepo portsrepo.KYCRepositoryFacade
	storage portsrepo.DocumentStorage
}

var _ portssvc.KYCSvcFacade = (*kycService)(nil)

// NewKYCService returns a service that rejects uploads when storage is nil.
func NewKYCService(kycRepo portsrepo.KYCRepositoryFacade, storage portsrepo.DocumentStorage, options ...ServiceOption) portssvc.KYCSvcFacade {
	o := applyOptions(options)
	return &kycService{
		BaseService: BaseService{clock: o.clock},
		kycRepo:     kycRepo,
		storage:     storage,
	}
}

// kycStorageKey builds {userId}/{documentType}-{unixTimestamp}.{ext}.
func kycStorageKey(userID string, docType domain.KYCDocumentType, unix int64, ext string) string {
	return fmt.Sprintf("%s/%s-%d%s", userID, docType, unix, ext)
}

func documentExtension(fileName, contentType string) (string, error) {
	want, ok := allowedKYCContentTypes[contentType]
	if !ok {
		return "", fmt.Errorf("%w: content type %q is not accepted", apperrors.ErrValidation, contentType)
	}
	if ext := strings.ToLower(filepath.Ext(fileName)); ext == ".jpeg" && want == ".jpg" {
		return ext, nil
	}
	return want, nil
}

func (s *kycService) UploadDocument(ctx context.Context, userID string, upload portssvc.KYCUpload) (*domain.KYCDocument, error) {
	if !upload.DocumentType.IsValid() {
		return nil, fmt.Errorf("%w: unknown document type %q", apperrors.ErrValidation, upload.DocumentType)
	}
	if upload.Body == nil {
		return nil, fmt.Errorf("%w: document file is required", apperrors.ErrValidation)
	}
	ext, err := documentExtension(upload.FileName, upload.ContentType)
	if err != nil {
		return nil, err
	}
	if s.storage == nil {
		return nil, apperrors.NewAppError(http.StatusServiceUnavailable, "document storage is not configured", errors.New("kyc storage disabled"))
	}

	now := s.Now()
	key := kycStorageKey(userID, upload.DocumentType, now.Unix(), ext)
	url, err := s.storage.Upload(ctx, key, upload.Body, upload.ContentType)
	if err != nil {
		s.LogError(ctx, err, "Failed to upload KYC document", slog.String("key", key))
		return nil, fmt.Errorf("failed to store document: %w", err)
	}

	doc := domain.KYCDocument{
		DocumentID:   uuid.NewString(),
		UserID:       userID,
		DocumentType: upload.DocumentType,
		StorageKey:   key,
		FileURL:      url,
		ContentType:  upload.ContentType,
		Status:       domain.KYCPending,
		UploadedAt:   now,
	}
	if err := s.kycRepo.SaveKYCDocument(ctx, doc); err != nil {
		// the uploaded object is left in the bucket
		s.LogError(ctx, err, "Failed to save KYC document", slog.String("key", key))
		return nil, err
	}

	s.LogInfo(ctx, "KYC document uploaded", slog.String("document_id", doc.DocumentID), slog.String("document_type", string(doc.DocumentType)))
	return &doc, nil
}

func (s *kycService) ListDocuments(ctx context.Context, userID string) ([]domain.KYCDocument, error) {
	docs, err := s.kycRepo.ListKYCDocumentsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list KYC documents")
		return nil, err
	}
	return docs, nil
}
