package handler

import (
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/kelanaapp/kelana/internal/pkg/models"
	"github.com/kelanaapp/kelana/services/profiles/handler/http"
)

// Handler coordinates the HTTP handlers for the profiles service
type Handler struct {
	profileHandler      *http.ProfileHandler
	verificationHandler *http.VerificationHandler
	cfg                 *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	profileHandler *http.ProfileHandler,
	verificationHandler *http.VerificationHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		profileHandler:      profileHandler,
		verificationHandler: verificationHandler,
		cfg:                 cfg,
	}
}

// GetJWTMiddleware returns the configured JWT middleware for HTTP requests
func (h *Handler) GetJWTMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(h.cfg.JWT.Secret),
		SuccessHandler: func(c echo.Context) {
			// Parse the token directly from Authorization header to avoid type conflicts
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader != "" && len(authHeader) > 7 && authHeader[:7] == "Bearer " {
				tokenString := authHeader[7:]
				token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
					return []byte(h.cfg.JWT.Secret), nil
				})
				if err == nil && token.Valid {
					if claims, ok := token.Claims.(jwt.MapClaims); ok {
						if userID, exists := claims["user_id"]; exists {
							c.Set("user_id", userID)
						}
						if role, exists := claims["role"]; exists {
							c.Set("role", role)
						}
					}
				}
			}
		},
	})
}

// RegisterRoutes registers all routes for the profiles service. The mutation
// limiter is applied to every write endpoint.
func (h *Handler) RegisterRoutes(e *echo.Echo, mutationLimiter echo.MiddlewareFunc) {
	protected := e.Group("", h.GetJWTMiddleware())

	// Self-service profile routes
	meGroup := protected.Group("/profiles/me")
	meGroup.GET("", h.profileHandler.GetMyProfile)
	meGroup.PATCH("", h.profileHandler.UpdateMyProfile, mutationLimiter)
	meGroup.DELETE("", h.profileHandler.DeleteMyProfile, mutationLimiter)
	meGroup.PUT("/type", h.profileHandler.UpdateMyType, mutationLimiter)
	meGroup.PATCH("/vendor-data", h.profileHandler.UpdateMyVendorData, mutationLimiter)
	meGroup.POST("/media/:slot", h.profileHandler.UploadMedia, mutationLimiter)

	// Profile lookup routes
	profileGroup := protected.Group("/profiles")
	profileGroup.GET("", h.profileHandler.ListProfiles)
	profileGroup.GET("/:id", h.profileHandler.GetProfile)

	// Verification workflow routes
	verificationGroup := protected.Group("/verifications")
	verificationGroup.POST("", h.verificationHandler.SubmitVerification, mutationLimiter)
	verificationGroup.GET("", h.verificationHandler.ListVerifications)
	verificationGroup.GET("/:id", h.verificationHandler.GetVerification)
	verificationGroup.POST("/:id/decision", h.verificationHandler.DecideVerification, mutationLimiter)
}
