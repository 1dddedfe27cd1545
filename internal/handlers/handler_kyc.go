package handlers

import (
	"errors"
	"net/http"

	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
	portssvc "github.com/SscSPs/cross_currency_wallet/internal/core/ports/services"
	"github.com/SscSPs/cross_currency_wallet/internal/dto"
	"github.com/gin-gonic/gin"
)

type kycHandler struct {
	kycService     portssvc.KYCSvcFacade
	maxUploadBytes int64
}

func registerKYCRoutes(rg *gin.RouterGroup, kycService portssvc.KYCSvcFacade, maxUploadBytes int64) {
	h := &kycHandler{kycService: kycService, maxUploadBytes: maxUploadBytes}

	kyc := rg.Group("/kyc")
	{
		kyc.POST("/documents", h.uploadDocument)
		kyc.GET("/documents", h.listDocuments)
	}
}

// uploadDocument godoc
// @Summary Upload an identity document
// @Tags kyc
// @Accept multipart/form-data
// @Produce json
// @Param documentType formData string true "passport, national_id, driver_license, selfie or proof_of_address"
// @Param file formData file true "JPEG, PNG or PDF"
// @Success 201 {object} dto.KYCDocumentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Document storage not configured"
// @Security BearerAuth
// @Router /kyc/documents [post]
func (h *kycHandler) uploadDocument(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "File exceeds the maximum upload size"})
			return
		}
		respondBindError(c, err)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, err, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	doc, err := h.kycService.UploadDocument(c.Request.Context(), userID, portssvc.KYCUpload{
		DocumentType: domain.KYCDocumentType(c.PostForm("documentType")),
		FileName:     fileHeader.Filename,
		ContentType:  fileHeader.Header.Get("Content-Type"),
		Body:         file,
	})
	if err != nil {
		respondError(c, err, "Failed to upload document")
		return
	}
	c.JSON(http.StatusCreated, dto.ToKYCDocumentResponse(doc))
}

// listDocuments godoc
// @Summary List the caller's identity documents
// @Tags kyc
// @Produce json
// @Success 200 {array} dto.KYCDocumentResponse
// @Security BearerAuth
// @Router /kyc/documents [get]
func (h *kycHandler) listDocuments(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	docs, err := h.kycService.ListDocuments(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list documents")
		return
	}
	c.JSON(http.StatusOK, dto.ToListKYCDocumentResponse(docs))
}
