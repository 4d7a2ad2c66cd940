package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mrlokans/bookstore/internal/auth"
)

type AuthController struct {
	service AuthService
	log     *logrus.Logger
}

func NewAuthController(service AuthService, log *logrus.Logger) *AuthController {
	return &AuthController{service: service, log: log}
}

type signupRequest struct {
	Username string `json:"username" binding:"required,max=80"`
	Email    string `json:"email" binding:"required,max=80"`
	Password string `json:"password" binding:"required"`
}

// loginRequest has no binding tags: missing credentials get a single combined message.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the API token for the Authorization header.
type LoginResponse struct {
	Message   string    `json:"message"`
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Signup registers a user
// POST /api/signup
func (ac *AuthController) Signup(c *gin.Context) {
	var req signupRequest
	if err := bindJSON(c, &req); err != nil {
		respondAppError(c, ac.log, err, "signup")
		return
	}

	user, err := ac.service.Signup(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		respondAppError(c, ac.log, err, "signup")
		return
	}

	ac.log.WithField("user_id", user.ID).Info("user signed up")
	respondCreated(c, "User created successfully", user.ID)
}

// Login exchanges credentials for a bearer token
// POST /api/login
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := bindJSON(c, &req); err != nil {
		respondAppError(c, ac.log, err, "login")
		return
	}

	token, _, err := ac.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondAppError(c, ac.log, err, "login")
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Message:   "Login successful",
		Token:     token.Value,
		TokenType: auth.TokenType,
		ExpiresAt: token.ExpiresAt,
	})
}
