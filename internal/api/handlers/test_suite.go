package handlers

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	apperrors "metadata-catalog/internal/errors"
	"metadata-catalog/internal/paging"
	"metadata-catalog/internal/service"
	"metadata-catalog/internal/types"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TestSuiteHandler handles HTTP requests for test suite operations
type TestSuiteHandler struct {
	testSuiteService service.TestSuiteServiceInterface
}

// NewTestSuiteHandler creates a new test suite handler
func NewTestSuiteHandler(testSuiteService service.TestSuiteServiceInterface) *TestSuiteHandler {
	return &TestSuiteHandler{
		testSuiteService: testSuiteService,
	}
}

// GetTestSuiteByName handles GET /testSuites/name/:fqn
// @Summary Get test suite by fully qualified name
// @Description Get a test suite by its fully qualified name. The owner is only populated when requested through fields.
// @Tags testSuites
// @Accept json
// @Produce json
// @Param fqn path string true "Test suite fully qualified name"
// @Param fields query string false "Comma separated fields to include (owner)"
// @Success 200 {object} types.TestSuite "Successfully retrieved test suite"
// @Failure 404 {object} ErrorResponse "Test suite not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /testSuites/name/{fqn} [get]
func (h *TestSuiteHandler) GetTestSuiteByName(c *gin.Context) {
	fqn := c.Param("fqn")
	if fqn == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "test suite name is required"})
		return
	}

	suite, err := h.testSuiteService.GetByName(fqn, types.ParseFields(c.Query("fields")))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, suite)
}

// ListTestSuites handles GET /testSuites
// @Summary List test suites
// @Description Cursor paged list of test suites ordered by fully qualified name
// @Tags testSuites
// @Accept json
// @Produce json
// @Param fields query string false "Comma separated fields to include (owner)"
// @Param limit query int false "Page size"
// @Param before query string false "Cursor of the previous page"
// @Param after query string false "Cursor of the next page"
// @Success 200 {object} paging.List[types.TestSuite] "Successfully retrieved test suites"
// @Failure 400 {object} ErrorResponse "Invalid paging parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /testSuites [get]
func (h *TestSuiteHandler) ListTestSuites(c *gin.Context) {
	cursor, limit, ok := parsePaging(c)
	if !ok {
		return
	}

	suites, err := h.testSuiteService.List(cursor, limit, types.ParseFields(c.Query("fields")))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, suites)
}

// PatchTestSuite handles PATCH /testSuites/:id
// @Summary Patch a test suite
// @Description Apply an RFC 6902 JSON patch to a test suite. Only description, displayName and owner may change.
// @Tags testSuites
// @Accept json-patch+json
// @Produce json
// @Param id path string true "Test suite ID (UUID)"
// @Param patch body []object true "JSON patch operations"
// @Success 200 {object} types.TestSuite "Patched test suite"
// @Failure 400 {object} ErrorResponse "Invalid patch or immutable field"
// @Failure 404 {object} ErrorResponse "Test suite not found"
// @Failure 415 {object} ErrorResponse "Unsupported content type"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /testSuites/{id} [patch]
func (h *TestSuiteHandler) PatchTestSuite(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid test suite ID"})
		return
	}

	contentType := c.ContentType()
	if contentType != types.JSONPatchMediaType && contentType != "application/json" {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "content type must be " + types.JSONPatchMediaType})
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil || len(strings.TrimSpace(string(body))) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "patch body is required"})
		return
	}

	suite, err := h.testSuiteService.Patch(id, body, c.GetHeader(types.UserHeader))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, suite)
}

// parsePaging reads limit/before/after and writes a 400 when they are unusable.
func parsePaging(c *gin.Context) (paging.Cursor, int, bool) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		l, err := strconv.Atoi(raw)
		if err != nil || l < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrInvalidPaginationParams.Error(), "details": "limit must be a non-negative integer"})
			return paging.Cursor{}, 0, false
		}
		limit = l
	}

	cursor, err := paging.ParseCursor(c.Query("before"), c.Query("after"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return paging.Cursor{}, 0, false
	}
	return cursor, limit, true
}

// writeError maps the error taxonomy onto HTTP status codes.
func writeError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error", "details": err.Error()})
	}
}
