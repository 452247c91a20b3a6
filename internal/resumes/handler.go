package resumes

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-vault/internal/shared/server/middleware"
	"resume-vault/internal/shared/server/respond"
	"resume-vault/internal/shared/storage/object"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the protected router group.
// upload optionally takes extra middleware (rate limiting).
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, uploadMiddleware ...gin.HandlerFunc) {
	handlers := append(append([]gin.HandlerFunc{}, uploadMiddleware...), h.upload)
	rg.POST("/resumes/upload", handlers...)
	rg.GET("/resumes", h.list)
	rg.GET("/resumes/:id", h.get)
	rg.PUT("/resumes/:id", h.update)
	rg.DELETE("/resumes/:id", h.remove)
	rg.GET("/resumes/:id/download", h.download)
}

func (h *Handler) upload(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "unable to read file")
		return
	}
	defer file.Close()

	resume, err := h.Svc.Upload(c.Request.Context(), userID, fileHeader.Filename, file)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Error processing resume")
		return
	}

	respond.OK(c, toResponse(resume))
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	records, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Server Error")
		return
	}

	out := make([]ResumeResponse, 0, len(records))
	for _, r := range records {
		out = append(out, toResponse(r))
	}
	respond.OK(c, out)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	resume, err := h.Svc.Get(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		h.respondAccessError(c, err)
		return
	}

	respond.OK(c, toResponse(resume))
}

type updateRequest struct {
	ParsedData ParsedData `json:"parsedData"`
}

func (h *Handler) update(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	resume, err := h.Svc.UpdateParsed(c.Request.Context(), c.Param("id"), userID, req.ParsedData)
	if err != nil {
		h.respondAccessError(c, err)
		return
	}

	respond.OK(c, toResponse(resume))
}

func (h *Handler) remove(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	if err := h.Svc.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		h.respondAccessError(c, err)
		return
	}

	respond.Msg(c, "Resume removed")
}

func (h *Handler) download(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	rc, fileName, err := h.Svc.Download(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, object.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "Physical file not found on server")
			return
		}
		h.respondAccessError(c, err)
		return
	}
	defer rc.Close()

	headers := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", fileName),
	}
	c.DataFromReader(http.StatusOK, -1, "application/octet-stream", rc, headers)
}

// respondAccessError maps the shared fetch-and-own failure modes. Ownership
// violations come back 401 regardless of whether the record exists.
func (h *Handler) respondAccessError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "Resume not found")
	case errors.Is(err, ErrNotOwner):
		respond.Error(c, http.StatusUnauthorized, "Not authorized")
	default:
		respond.Error(c, http.StatusInternalServerError, "Server Error")
	}
}
