package handlers

import (
	"net/http"

	"metadata-catalog/internal/service"
	"metadata-catalog/internal/types"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TestCaseHandler handles HTTP requests for test case operations
type TestCaseHandler struct {
	testCaseService service.TestCaseServiceInterface
}

// NewTestCaseHandler creates a new test case handler
func NewTestCaseHandler(testCaseService service.TestCaseServiceInterface) *TestCaseHandler {
	return &TestCaseHandler{
		testCaseService: testCaseService,
	}
}

// ListTestCases handles GET /testCases
// @Summary List test cases
// @Description Cursor paged list of test cases ordered by fully qualified name, optionally scoped to one test suite
// @Tags testCases
// @Accept json
// @Produce json
// @Param testSuiteId query string false "Test suite ID (UUID)"
// @Param fields query string false "Comma separated fields to include (testCaseResult, testDefinition)"
// @Param limit query int false "Page size"
// @Param before query string false "Cursor of the previous page"
// @Param after query string false "Cursor of the next page"
// @Success 200 {object} paging.List[types.TestCase] "Successfully retrieved test cases"
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /testCases [get]
func (h *TestCaseHandler) ListTestCases(c *gin.Context) {
	params := service.ListTestCasesParams{
		Fields: types.ParseFields(c.Query("fields")),
	}

	if raw := c.Query("testSuiteId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid test suite ID"})
			return
		}
		params.TestSuiteID = &id
	}

	cursor, limit, ok := parsePaging(c)
	if !ok {
		return
	}
	params.Cursor = cursor
	params.Limit = limit

	cases, err := h.testCaseService.List(params)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, cases)
}
