package files

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"novusfiles-backend/internal/config"
	users_middleware "novusfiles-backend/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FileController struct {
	fileService *FileService
}

func (c *FileController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/upload", c.Upload)
	router.GET("/files", c.ListFiles)
	router.DELETE("/files/:id", c.DeleteFile)
}

// RegisterPublicRoutes registers routes that don't require Bearer
// authentication: possession of the download token is the credential.
func (c *FileController) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.GET("/download/:token", c.Download)
	router.GET("/file-info/:token", c.GetFileInfo)
}

// Upload
// @Summary Upload a file
// @Description Store one file and return its metadata including a shareable download link
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Success 200 {object} FileRecordDTO
// @Failure 400
// @Failure 401
// @Failure 413
// @Router /upload [post]
func (c *FileController) Upload(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	maxBytes := config.GetEnv().MaxUploadSizeBytes()
	if ctx.Request.ContentLength > maxBytes {
		ctx.JSON(
			http.StatusRequestEntityTooLarge,
			gin.H{"error": fmt.Sprintf("file exceeds the %s upload limit", FormatFileSize(maxBytes))},
		)
		return
	}
	// ContentLength can lie, the reader enforces the real bound
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxBytes)

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			ctx.JSON(
				http.StatusRequestEntityTooLarge,
				gin.H{"error": fmt.Sprintf("file exceeds the %s upload limit", FormatFileSize(maxBytes))},
			)
			return
		}

		ctx.JSON(http.StatusBadRequest, gin.H{"error": "no file provided"})
		return
	}

	response, err := c.fileService.Upload(user, fileHeader)
	if err != nil {
		if errors.Is(err, ErrNoFile) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ListFiles
// @Summary List own files
// @Description List the authenticated user's files, most recent first
// @Tags files
// @Produce json
// @Success 200 {array} FileRecordDTO
// @Failure 401
// @Router /files [get]
func (c *FileController) ListFiles(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	response, err := c.fileService.ListFiles(user)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list files"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// DeleteFile
// @Summary Delete a file
// @Description Delete an owned file record and its stored bytes
// @Tags files
// @Param id path string true "File ID"
// @Success 200 {object} map[string]string
// @Failure 400
// @Failure 401
// @Failure 403
// @Failure 404
// @Router /files/{id} [delete]
func (c *FileController) DeleteFile(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid file ID"})
		return
	}

	if err := c.fileService.DeleteFile(user, id); err != nil {
		if errors.Is(err, ErrFileNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, ErrNotFileOwner) {
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Delete failed"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "file deleted successfully"})
}

// Download
// @Summary Download a file by token
// @Description Stream the file bytes, no authentication required. Anyone with the link can download.
// @Tags files
// @Param token path string true "Download token"
// @Success 200 {file} file
// @Failure 404
// @Router /download/{token} [get]
func (c *FileController) Download(ctx *gin.Context) {
	record, err := c.fileService.GetByDownloadToken(ctx.Param("token"))
	if err != nil {
		if errors.Is(err, ErrFileNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Download failed"})
		return
	}

	blob, err := c.fileService.OpenBlob(record)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "File no longer available"})
		return
	}
	defer func() {
		if err := blob.Close(); err != nil {
			fmt.Printf("Error closing file reader: %v\n", err)
		}
	}()

	c.fileService.RegisterDownload(record)

	ctx.Header("Content-Type", record.MimeType)
	ctx.Header("Content-Length", fmt.Sprintf("%d", record.SizeBytes))
	ctx.Header(
		"Content-Disposition",
		fmt.Sprintf(
			"attachment; filename=\"%s\"; filename*=UTF-8''%s",
			sanitizeFilename(record.OriginalFilename),
			url.PathEscape(record.OriginalFilename),
		),
	)
	ctx.Header("X-Content-Type-Options", "nosniff")
	ctx.Header("Cache-Control", "no-cache")

	if _, err := io.Copy(ctx.Writer, blob); err != nil {
		// headers are already on the wire, nothing left to report to the client
		fmt.Printf("Error streaming file: %v\n", err)
	}
}

// GetFileInfo
// @Summary Get file information by token
// @Description Describe a shared file without downloading it, no authentication required
// @Tags files
// @Param token path string true "Download token"
// @Produce json
// @Success 200 {object} FileInfoResponseDTO
// @Failure 404
// @Router /file-info/{token} [get]
func (c *FileController) GetFileInfo(ctx *gin.Context) {
	response, err := c.fileService.GetFileInfo(ctx.Param("token"))
	if err != nil {
		if errors.Is(err, ErrFileNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get file info"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// sanitizeFilename keeps the plain ASCII fallback of Content-Disposition
// free of quotes and control characters.
func sanitizeFilename(name string) string {
	result := make([]rune, 0, len(name))
	for _, char := range name {
		switch {
		case char == '"' || char == '\\':
			result = append(result, '_')
		case char < 0x20:
			result = append(result, '_')
		default:
			result = append(result, char)
		}
	}

	return string(result)
}
