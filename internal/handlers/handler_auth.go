package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/orghub/org_management_app/internal/core/ports/services"
	"github.com/orghub/org_management_app/internal/dto"
	"github.com/orghub/org_management_app/internal/middleware"
	"github.com/orghub/org_management_app/internal/utils"
	"github.com/orghub/org_management_app/pkg/config"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// authHandler handles registration and login.
type authHandler struct {
	userService portssvc.UserSvcFacade
	cfg         *config.Config
}

func newAuthHandler(us portssvc.UserSvcFacade, cfg *config.Config) *authHandler {
	return &authHandler{userService: us, cfg: cfg}
}

// registerAuthRoutes sets up the public authentication routes. Login is rate
// limited per client IP to slow down credential stuffing.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, userService portssvc.UserSvcFacade) {
	h := newAuthHandler(userService, cfg)

	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", middleware.RateLimit(ipLimiter), h.login)
	}
}

// register godoc
// @Summary Register new user
// @Description Creates a new member account.
// @Tags auth
// @Accept json
// @Produce json
// @Param user body dto.RegisterRequest true "Registration details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindJSONError(c, err)
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to register user")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("User registered", slog.String("user_id", user.UserID))
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// login godoc
// @Summary User login
// @Description Authenticates a user and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindJSONError(c, err)
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		logger.Warn("Login rejected", slog.String("email", req.Email))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
		return
	}

	token, err := utils.GenerateJWT(user.UserID, string(user.Role), h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	logger.Info("User logged in", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, User: dto.ToUserResponse(user)})
}
