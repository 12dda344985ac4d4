package handlers

import (
	"net/http"

	"metadata-catalog/internal/service"

	"github.com/gin-gonic/gin"
)

// OwnerHandler serves the user and team lookups used when picking an owner
type OwnerHandler struct {
	ownerService service.OwnerServiceInterface
}

// NewOwnerHandler creates a new owner handler
func NewOwnerHandler(ownerService service.OwnerServiceInterface) *OwnerHandler {
	return &OwnerHandler{
		ownerService: ownerService,
	}
}

// GetUserByName handles GET /users/name/:name
// @Summary Get user by name
// @Tags owners
// @Produce json
// @Param name path string true "User name"
// @Success 200 {object} types.User "Successfully retrieved user"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /users/name/{name} [get]
func (h *OwnerHandler) GetUserByName(c *gin.Context) {
	user, err := h.ownerService.GetUserByName(c.Param("name"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetTeamByName handles GET /teams/name/:name
// @Summary Get team by name
// @Tags owners
// @Produce json
// @Param name path string true "Team name"
// @Success 200 {object} types.Team "Successfully retrieved team"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/name/{name} [get]
func (h *OwnerHandler) GetTeamByName(c *gin.Context) {
	team, err := h.ownerService.GetTeamByName(c.Param("name"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}
