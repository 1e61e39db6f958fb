package handler

import (
	"errors"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yemmycode/alx-files-manager/internal/files"
	"github.com/yemmycode/alx-files-manager/internal/logger"
	"github.com/yemmycode/alx-files-manager/internal/middleware"
)

type uploadRequest struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	ParentID int64  `json:"parentId"`
	IsPublic bool   `json:"isPublic"`
	Data     string `json:"data"`
}

func isValidationError(err error) bool {
	return errors.Is(err, files.ErrMissingName) ||
		errors.Is(err, files.ErrMissingType) ||
		errors.Is(err, files.ErrMissingData) ||
		errors.Is(err, files.ErrInvalidData) ||
		errors.Is(err, files.ErrParentNotFound) ||
		errors.Is(err, files.ErrParentNotFolder)
}

// PostUpload creates a folder, file or image under the caller's account.
func (h *Handler) PostUpload(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req uploadRequest
	_ = c.ShouldBindJSON(&req)

	created, err := h.files.Create(c.Request.Context(), user.ID, files.CreateRequest{
		Name:     req.Name,
		Type:     req.Type,
		ParentID: req.ParentID,
		IsPublic: req.IsPublic,
		Data:     req.Data,
	})
	if err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("upload failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to create file"})
		return
	}

	c.JSON(http.StatusCreated, created.Project())
}

// GetShow returns one of the caller's files. Files the caller does not
// own are reported as missing, not forbidden.
func (h *Handler) GetShow(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	file, err := h.files.Show(c.Request.Context(), id, user.ID)
	if errors.Is(err, files.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to fetch file"})
		return
	}

	c.JSON(http.StatusOK, file.Project())
}

// GetIndex lists the caller's files under parentId, paginated.
func (h *Handler) GetIndex(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	parentID, err := strconv.ParseInt(c.DefaultQuery("parentId", "0"), 10, 64)
	if err != nil {
		parentID = files.RootParentID
	}
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		page = 0
	}

	list, err := h.files.Index(c.Request.Context(), user.ID, parentID, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to fetch files"})
		return
	}

	out := make([]files.Projection, 0, len(list))
	for i := range list {
		out = append(out, list[i].Project())
	}
	c.JSON(http.StatusOK, out)
}

// PutPublish marks one of the caller's files public.
func (h *Handler) PutPublish(c *gin.Context) {
	h.setPublic(c, true)
}

// PutUnpublish marks one of the caller's files private.
func (h *Handler) PutUnpublish(c *gin.Context) {
	h.setPublic(c, false)
}

func (h *Handler) setPublic(c *gin.Context, public bool) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	file, err := h.files.SetPublic(c.Request.Context(), id, user.ID, public)
	if errors.Is(err, files.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to update file"})
		return
	}

	c.JSON(http.StatusOK, file.Project())
}

// GetFileData serves a file's raw bytes, or a rendition when ?size= is
// given for an image. Works anonymously for public files.
func (h *Handler) GetFileData(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	requesterID := ""
	if user, ok := middleware.UserFromContext(c); ok {
		requesterID = user.ID
	}

	data, name, err := h.files.Content(
		c.Request.Context(), id, requesterID, c.Query("size"),
	)
	if errors.Is(err, files.ErrFolderContent) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errors.Is(err, files.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to fetch file"})
		return
	}

	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Data(http.StatusOK, contentType, data)
}
