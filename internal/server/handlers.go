package server

import (
	"errors"
	"net/http"

	"mealia-backend/internal/auth"
	"mealia-backend/internal/db"
	"mealia-backend/internal/menu"
	"mealia-backend/internal/models"
	"mealia-backend/internal/payment"
	"mealia-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4"
)

// Handler carries the dependencies of the HTTP surface.
type Handler struct {
	store      *db.PostgresDB
	tokens     *auth.TokenManager
	google     auth.GoogleVerifier
	generator  *menu.Generator
	stripe     *payment.StripeClient
	successURL string
	cancelURL  string
	logger     *logger.Logger
}

func NewHandler(
	store *db.PostgresDB,
	tokens *auth.TokenManager,
	google auth.GoogleVerifier,
	generator *menu.Generator,
	stripe *payment.StripeClient,
	successURL, cancelURL string,
	l *logger.Logger,
) *Handler {
	return &Handler{
		store:      store,
		tokens:     tokens,
		google:     google,
		generator:  generator,
		stripe:     stripe,
		successURL: successURL,
		cancelURL:  cancelURL,
		logger:     l,
	}
}

type registerRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.logger.Error("Failed to hash password", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register"})
		return
	}

	user := &models.User{
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hash,
		Goal:         models.GoalMaintenance,
	}

	if err := h.store.CreateUser(c.Request.Context(), user); err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			return
		}
		h.logger.Error("Failed to create user", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register"})
		return
	}

	h.issueToken(c, user)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.store.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	h.issueToken(c, user)
}

type googleLoginRequest struct {
	Token string `json:"token" binding:"required"`
}

// GoogleLogin verifies a Google ID token and signs the user in, creating
// the account on first sight.
func (h *Handler) GoogleLogin(c *gin.Context) {
	var req googleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	identity, err := h.google.Verify(c.Request.Context(), req.Token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid Google token"})
		return
	}

	user, err := h.store.GetUserByEmail(c.Request.Context(), identity.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		user = &models.User{
			Email:     identity.Email,
			FirstName: identity.FirstName,
			LastName:  identity.LastName,
			Goal:      models.GoalMaintenance,
		}
		if err := h.store.CreateUser(c.Request.Context(), user); err != nil {
			h.logger.Error("Failed to provision Google user", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign in"})
			return
		}
	} else if err != nil {
		h.logger.Error("Failed to look up user", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign in"})
		return
	}

	h.issueToken(c, user)
}

func (h *Handler) issueToken(c *gin.Context, user *models.User) {
	token, err := h.tokens.Issue(user.ID, user.Email)
	if err != nil {
		h.logger.Error("Failed to issue token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (h *Handler) GetProfile(c *gin.Context) {
	user, err := h.store.GetUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

type profileUpdateRequest struct {
	FirstName *string          `json:"first_name"`
	LastName  *string          `json:"last_name"`
	HeightM   *float64         `json:"height"`
	WeightKg  *float64         `json:"weight"`
	Birthdate *models.JSONDate `json:"birthdate"`
	Goal      *string          `json:"goal"`
	PhotoURL  *string          `json:"photo_url"`
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var req profileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Goal != nil && !models.ValidGoal(*req.Goal) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "goal must be one of: Déficit, Aumentar masa, Mantenimiento"})
		return
	}

	user, err := h.store.GetUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.HeightM != nil {
		user.HeightM = req.HeightM
	}
	if req.WeightKg != nil {
		user.WeightKg = req.WeightKg
	}
	if req.Birthdate != nil {
		t := req.Birthdate.Time()
		user.Birthdate = &t
	}
	if req.Goal != nil {
		user.Goal = *req.Goal
	}
	if req.PhotoURL != nil {
		user.PhotoURL = *req.PhotoURL
	}

	if err := h.store.UpdateProfile(c.Request.Context(), user); err != nil {
		h.logger.Error("Failed to update profile", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, user)
}
