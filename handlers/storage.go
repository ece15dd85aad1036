package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"stylebook/services/storage"

	"github.com/gin-gonic/gin"
)

// StorageHandler handles media upload and download-URL endpoints.
type StorageHandler struct {
	StorageSvc storage.StorageService
}

// NewStorageHandler creates a new StorageHandler instance.
func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{StorageSvc: svc}
}

// allowedBuckets defines permitted buckets for file uploads.
var allowedBuckets = map[string]bool{
	"profiles": true,
	"salons":   true,
	"services": true,
}

// UploadFileHandler handles image uploads for profiles, salons and services.
func (h *StorageHandler) UploadFileHandler(c *gin.Context) {
	bucket := c.Param("bucket")
	if !allowedBuckets[bucket] {
		jsonError(c, http.StatusBadRequest, "invalid bucket; allowed values are 'profiles', 'salons' and 'services'")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		jsonError(c, http.StatusBadRequest, "file not provided: "+err.Error())
		return
	}

	tempDir := os.TempDir()
	tempFilePath := filepath.Join(tempDir, fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		jsonError(c, http.StatusInternalServerError, "failed to save file: "+err.Error())
		return
	}
	defer os.Remove(tempFilePath)

	destFolder := "images/" + bucket

	publicID, err := h.StorageSvc.UploadFile(c, tempFilePath, destFolder)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "failed to upload file: "+err.Error())
		return
	}

	downloadURL, err := h.StorageSvc.GetDownloadURL(c, publicID, 0)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "failed to construct download URL: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "file uploaded successfully",
		"publicID":    publicID,
		"downloadURL": downloadURL,
	})
}

// GetDownloadURLHandler generates a public download URL for an asset.
func (h *StorageHandler) GetDownloadURLHandler(c *gin.Context) {
	bucket := c.Param("bucket")
	filename := c.Param("filename")
	if !allowedBuckets[bucket] {
		jsonError(c, http.StatusBadRequest, "invalid bucket; allowed values are 'profiles', 'salons' and 'services'")
		return
	}

	destPath := "images/" + bucket + "/" + filename

	expiry := 15 * time.Minute
	if expStr := c.Query("expires"); expStr != "" {
		if exp, err := time.ParseDuration(expStr); err == nil {
			expiry = exp
		}
	}

	url, err := h.StorageSvc.GetDownloadURL(c, destPath, expiry)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "failed to generate download URL: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"downloadURL": url})
}
