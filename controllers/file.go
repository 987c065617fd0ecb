package controllers

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"time"

	"tuneshop-backend/models"
	"tuneshop-backend/repositories"
	"tuneshop-backend/storage"
	"tuneshop-backend/utils"

	"github.com/gin-gonic/gin"
)

// UploadFileInput carries an ECU file as base64 plus its metadata.
type UploadFileInput struct {
	OrderID  uint   `json:"orderId" binding:"required"`
	FileName string `json:"fileName" binding:"required"`
	FileType string `json:"fileType" binding:"required,oneof=original modified"`
	FileData string `json:"fileData" binding:"required"`
	FileSize *int64 `json:"fileSize"`
}

type FileController struct {
	files   *repositories.FileRepository
	orders  *repositories.OrderRepository
	storage storage.Storage
}

func NewFileController(files *repositories.FileRepository, orders *repositories.OrderRepository, store storage.Storage) *FileController {
	return &FileController{files: files, orders: orders, storage: store}
}

// Upload decodes the payload, stores the raw bytes in the object store and
// records the file row. If the row insert fails after the bytes were stored,
// the orphaned object is not cleaned up.
func (fc *FileController) Upload(c *gin.Context) {
	var input UploadFileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	order, err := fc.orders.GetByID(input.OrderID)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if order == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Order not found")
		return
	}

	data, err := base64.StdEncoding.DecodeString(input.FileData)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "fileData is not valid base64")
		return
	}

	sum := sha256.Sum256(data)
	checksum := hex.EncodeToString(sum[:])

	fileKey := fmt.Sprintf("orders/%d/%s/%d-%s",
		input.OrderID, input.FileType, time.Now().UnixMilli(), input.FileName)

	url, err := fc.storage.Put(fileKey, data, "application/octet-stream")
	if err != nil {
		log.Printf("File upload failed for order %d: %v", input.OrderID, err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to upload file")
		return
	}

	size := int64(len(data))
	if input.FileSize != nil {
		size = *input.FileSize
	}

	file := models.File{
		OrderID:  input.OrderID,
		FileName: input.FileName,
		FileType: input.FileType,
		FileKey:  fileKey,
		FileURL:  url,
		FileSize: &size,
		Checksum: checksum,
	}
	if err := fc.files.Create(&file); err != nil {
		// The stored object stays behind; accepted inconsistency window.
		log.Printf("File record insert failed for key %s: %v", fileKey, err)
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "url": url})
}

func (fc *FileController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	file, err := fc.files.GetByID(id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if file == nil {
		utils.RespondWithError(c, http.StatusNotFound, "File not found")
		return
	}

	c.JSON(http.StatusOK, file)
}

// Delete reports success without removing the stored object or the record.
// Callers must not rely on storage being reclaimed.
func (fc *FileController) Delete(c *gin.Context) {
	if _, ok := parseIDParam(c, "id"); !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
