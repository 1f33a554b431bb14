package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"staffstream/services/storage"
	"staffstream/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// filesFolder is the blob-storage folder general uploads land in.
const filesFolder = "files"

// downloadURLTTL bounds how long a signed download link stays valid.
const downloadURLTTL = time.Hour

// StorageHandler handles general file upload and download endpoints.
type StorageHandler struct {
	StorageSvc storage.StorageService
}

// NewStorageHandler creates a new StorageHandler instance.
func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{StorageSvc: svc}
}

// UploadFileHandler handles POST /api/files/upload (multipart field "file").
// Files are stored under a random name to avoid collisions; the original
// name is returned for display.
func (h *StorageHandler) UploadFileHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	storedName := uuid.New().String() + filepath.Ext(fileHeader.Filename)
	tempFilePath := filepath.Join(os.TempDir(), storedName)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		utils.RespondError(c, utils.UpstreamError("Failed to save uploaded file", err))
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := h.StorageSvc.UploadFile(c, tempFilePath, filesFolder)
	if err != nil {
		utils.RespondError(c, utils.UpstreamError("Failed to upload file", err))
		return
	}
	fileURL, err := h.StorageSvc.GetSecureDownloadURL(c, publicID, downloadURLTTL)
	if err != nil {
		utils.RespondError(c, utils.UpstreamError("Failed to construct download URL", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"fileName":   fileHeader.Filename,
		"fileUrl":    fileURL,
		"uploadDate": time.Now(),
	})
}

// DownloadFileHandler handles GET /api/files/download/:filename.
func (h *StorageHandler) DownloadFileHandler(c *gin.Context) {
	filename := c.Param("filename")

	url, err := h.StorageSvc.GetSecureDownloadURL(c, filesFolder+"/"+filename, downloadURLTTL)
	if err != nil {
		utils.RespondError(c, utils.UpstreamError("Failed to generate download URL", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
