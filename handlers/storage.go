package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"stayx/middleware"
	"stayx/services/storage"
	"stayx/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxUploadBytes = 10 << 20 // 10 MiB

// StorageHandler serves property image uploads.
type StorageHandler struct {
	Storage storage.StorageService
}

// NewStorageHandler constructs a StorageHandler.
func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{Storage: svc}
}

// UploadHandler handles POST /api/uploads. The multipart "file" part is
// staged to a temp file, pushed to Cloudinary and the secure URL returned.
func (h *StorageHandler) UploadHandler(c *gin.Context) {
	uid, _ := middleware.UserID(c)

	file, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing file", err.Error())
		return
	}
	if file.Size > maxUploadBytes {
		utils.JSONError(c, http.StatusRequestEntityTooLarge, "File too large", "")
		return
	}

	tmpPath := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		utils.GetLogger().Error("failed to stage upload", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Upload failed", "")
		return
	}
	defer os.Remove(tmpPath)

	publicID, err := h.Storage.UploadFile(c.Request.Context(), tmpPath, "properties/"+uid)
	if err != nil {
		utils.GetLogger().Error("cloudinary upload failed", zap.String("uid", uid), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Upload failed", "")
		return
	}

	url, err := h.Storage.GetDownloadURL(c.Request.Context(), publicID, 0)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Upload failed", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"publicId": publicID, "url": url})
}
