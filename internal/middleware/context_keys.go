package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/orghub/org_management_app/internal/core/domain"
)

// contextKey is a private type for context keys to prevent collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	actorCtxKey  = contextKey("actor")
)

// GetActorFromContext retrieves the authenticated actor from the request
// context. The boolean is false when no auth middleware ran.
func GetActorFromContext(c *gin.Context) (domain.Actor, bool) {
	return actorFromCtx(c.Request.Context())
}

func actorFromCtx(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorCtxKey).(domain.Actor)
	return actor, ok
}
