package domain

import "time"

// KYCDocumentType names the kind of identity document uploaded.
type KYCDocumentType string

const (
	DocumentPassport      KYCDocumentType = "passport"
	DocumentNationalID    KYCDocumentType = "national_id"
	DocumentDriverLicense KYCDocumentType = "driver_license"
	DocumentSelfie        KYCDocumentType = "selfie"
	DocumentProofAddress  KYCDocumentType = "proof_of_address"
)

// IsValid reports whether t is a known document type.
func (t KYCDocumentType) IsValid() bool {
	switch t {
	case DocumentPassport, DocumentNationalID, DocumentDriverLicense, DocumentSelfie, DocumentProofAddress:
		return true
	}
	return false
}

// KYCStatus is the review state of an uploaded document.
type KYCStatus string

const (
	KYCPending  KYCStatus = "pending"
	KYCApproved KYCStatus = "approved"
	KYCRejected KYCStatus = "rejected"
)

// KYCDocument is an identity document stored in object storage.
type KYCDocument struct {
	DocumentID   string          `json:"documentID"`
	UserID       string          `json:"userID"`
	DocumentType KYCDocumentType `json:"documentType"`
	StorageKey   string          `json:"storageKey"`
	FileURL      string          `json:"fileURL"`
	ContentType  string          `json:"contentType"`
	Status       KYCStatus       `json:"status"`
	UploadedAt   time.Time       `json:"uploadedAt"`
}
