package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orghub/org_management_app/internal/apperrors"
	"github.com/orghub/org_management_app/internal/core/domain"
	"github.com/orghub/org_management_app/internal/middleware"
)

// ErrorResponse is the generic error payload returned by all handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondServiceError translates a service error into the matching HTTP
// status. Unknown errors become a 500 with a generic message so internals
// never leak to the client.
func respondServiceError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrStorage):
		logger.Error("Storage provider failure", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Storage provider error"})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}

// mustActor fetches the authenticated actor or aborts with 401. Routes behind
// AuthMiddleware always have one; this guards against wiring mistakes.
func mustActor(c *gin.Context) (domain.Actor, bool) {
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Actor missing from authenticated route")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	}
	return actor, ok
}

func bindJSONError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request body", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
}

func bindQueryError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind query parameters", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
}
