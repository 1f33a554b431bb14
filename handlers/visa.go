package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"staffstream/services/storage"
	"staffstream/services/visa"
	"staffstream/utils"

	"github.com/gin-gonic/gin"
)

// visaFolder is the blob-storage folder visa documents land in.
const visaFolder = "visa-documents"

// VisaHandler exposes the visa document workflow endpoints.
type VisaHandler struct {
	Service    visa.VisaService
	StorageSvc storage.StorageService
}

// NewVisaHandler creates a new VisaHandler instance.
func NewVisaHandler(svc visa.VisaService, storageSvc storage.StorageService) *VisaHandler {
	return &VisaHandler{Service: svc, StorageSvc: storageSvc}
}

// GetStatusHandler handles GET /api/visa.
func (h *VisaHandler) GetStatusHandler(c *gin.Context) {
	view, err := h.Service.GetStatus(c.GetString("userID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// UploadDocumentHandler handles POST /api/visa/upload (multipart field
// "file"). The file goes to blob storage; only the URL is persisted.
func (h *VisaHandler) UploadDocumentHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		utils.RespondError(c, utils.UpstreamError("Failed to save uploaded file", err))
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := h.StorageSvc.UploadFile(c, tempFilePath, visaFolder)
	if err != nil {
		utils.RespondError(c, utils.UpstreamError("Failed to upload document", err))
		return
	}
	fileURL, err := h.StorageSvc.GetDownloadURL(c, publicID)
	if err != nil {
		utils.RespondError(c, utils.UpstreamError("Failed to construct download URL", err))
		return
	}

	if _, err := h.Service.SubmitDocument(c.GetString("userID"), fileURL); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document uploaded successfully"})
}

// ApproveDocumentHandler handles POST /api/visa/hr/:id/approve.
func (h *VisaHandler) ApproveDocumentHandler(c *gin.Context) {
	if _, err := h.Service.Approve(c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document approved successfully"})
}

// RejectDocumentHandler handles POST /api/visa/hr/:id/reject.
func (h *VisaHandler) RejectDocumentHandler(c *gin.Context) {
	var req struct {
		Feedback string `json:"feedback"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Feedback is required")
		return
	}

	if _, err := h.Service.Reject(c.Param("id"), req.Feedback); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document rejected successfully"})
}

// InProgressHandler handles GET /api/visa/hr/in-progress.
func (h *VisaHandler) InProgressHandler(c *gin.Context) {
	views, err := h.Service.InProgressApplications()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// AllApplicationsHandler handles GET /api/visa/hr/all.
func (h *VisaHandler) AllApplicationsHandler(c *gin.Context) {
	views, err := h.Service.AllApplications()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}
