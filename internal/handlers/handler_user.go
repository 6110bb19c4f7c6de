package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/orghub/org_management_app/internal/core/ports/services"
	"github.com/orghub/org_management_app/internal/dto"
	"github.com/orghub/org_management_app/internal/middleware"
)

// userHandler handles HTTP requests for user accounts.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		users.GET("/me", h.getCurrentUser)
		users.GET("", middleware.RequireAdmin(), h.listUsers)
		users.GET("/:id", h.getUserByID)
		users.PUT("/:id", h.updateUser)
		users.DELETE("/:id", middleware.RequireAdmin(), h.deactivateUser)
	}
}

// getCurrentUser godoc
// @Summary Get the authenticated user
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me [get]
func (h *userHandler) getCurrentUser(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	user, err := h.userService.GetUserByID(c.Request.Context(), actor.UserID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve user")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// getUserByID godoc
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *userHandler) getUserByID(c *gin.Context) {
	user, err := h.userService.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve user")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// listUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Param role query string false "ADMIN or MEMBER"
// @Param search query string false "Matches name and email"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.ListUsersResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /users [get]
func (h *userHandler) listUsers(c *gin.Context) {
	var params dto.ListUsersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindQueryError(c, err)
		return
	}

	resp, err := h.userService.ListUsers(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err, "Failed to list users")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// updateUser godoc
// @Summary Update a user
// @Description Users may edit their own name; role and active-flag changes require the admin role.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body dto.UpdateUserRequest true "Fields to update"
// @Success 200 {object} dto.UserResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [put]
func (h *userHandler) updateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindJSONError(c, err)
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondServiceError(c, err, "Failed to update user")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// deactivateUser godoc
// @Summary Deactivate a user
// @Description Marks the account inactive so it can no longer authenticate. Accounts are never hard-deleted.
// @Tags users
// @Param id path string true "User ID"
// @Success 204
// @Failure 400 {object} ErrorResponse "Admins cannot deactivate themselves"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *userHandler) deactivateUser(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	if err := h.userService.DeactivateUser(c.Request.Context(), c.Param("id"), actor); err != nil {
		respondServiceError(c, err, "Failed to deactivate user")
		return
	}
	c.Status(http.StatusNoContent)
}
