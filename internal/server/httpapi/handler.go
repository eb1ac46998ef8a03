package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/diagramkeeper/internal/common"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/api"
	"github.com/dmitrijs2005/diagramkeeper/internal/server/blobstore"
)

func (s *Server) generate(c *gin.Context) {
	var req api.GenerateRequest
	if !bind(c, &req) {
		return
	}
	req.DiagramType = c.Param("kind")
	respond(c, s, http.StatusOK, req, s.api.Generate)
}

func (s *Server) upload(c *gin.Context) {
	var req api.UploadRequest
	if !bind(c, &req) {
		return
	}
	respond(c, s, http.StatusOK, req, s.api.Upload)
}

func (s *Server) retryMetadata(c *gin.Context) {
	var req api.RetryMetadataRequest
	if !bind(c, &req) {
		return
	}
	req.FileID = c.Param("fileId")
	respond(c, s, http.StatusOK, req, s.api.RetryMetadata)
}

func (s *Server) listVersions(c *gin.Context) {
	var req api.ListVersionsRequest
	if !bind(c, &req) {
		return
	}
	req.FileID = c.Param("fileId")
	respond(c, s, http.StatusOK, req, s.api.ListVersions)
}

func (s *Server) restore(c *gin.Context) {
	var req api.RestoreRequest
	if !bind(c, &req) {
		return
	}
	req.FileID = c.Param("fileId")
	respond(c, s, http.StatusOK, req, s.api.Restore)
}

func (s *Server) imageURL(c *gin.Context) {
	var req api.ImageURLRequest
	if !bind(c, &req) {
		return
	}
	req.FileID = c.Param("fileId")
	respond(c, s, http.StatusOK, req, s.api.ImageURL)
}

func (s *Server) listFiles(c *gin.Context) {
	req := api.ListFilesRequest{TenantID: c.Param("tenantId")}
	var err error
	if req.Limit, err = queryInt(c, "limit"); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "limit must be an integer"})
		return
	}
	if req.Offset, err = queryInt(c, "offset"); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "offset must be an integer"})
		return
	}
	respond(c, s, http.StatusOK, req, s.api.ListFiles)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

// blob serves stored content when the blob backend is in-process.
func (s *Server) blob(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	body, err := s.blobs.Download(key, c.Request.URL.Query())
	switch {
	case errors.Is(err, blobstore.ErrInvalidURL):
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "not found"})
		return
	}
	c.Data(http.StatusOK, http.DetectContentType(body), body)
}

func bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "malformed request: " + err.Error()})
		return false
	}
	return true
}

func respond[Req, Resp any](c *gin.Context, s *Server, code int, req Req, call func(context.Context, Req) (Resp, error)) {
	resp, err := call(c.Request.Context(), req)
	if err != nil {
		status := statusCode(err)
		if status == http.StatusInternalServerError {
			s.logger.Error(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
		}
		if status == http.StatusInternalServerError && !errors.Is(err, common.ErrPartialWrite) {
			c.JSON(status, api.ErrorResponse{Error: "internal error"})
			return
		}
		c.JSON(status, api.NewErrorResponse(err))
		return
	}
	c.JSON(code, resp)
}

// statusCode maps service errors to HTTP statuses. A partial write also wraps
// the store error that caused it, so it is checked first.
func statusCode(err error) int {
	switch {
	case errors.Is(err, common.ErrPartialWrite):
		return http.StatusInternalServerError
	case errors.Is(err, common.ErrValidation), errors.Is(err, common.ErrUnsupportedFormat):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrNotFound), errors.Is(err, common.ErrVersionNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, common.ErrRender):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func queryInt(c *gin.Context, name string) (int, error) {
	v := c.Query(name)
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}
