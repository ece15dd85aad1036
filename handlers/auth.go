package handlers

import (
	"errors"
	"net/http"
	"time"

	userRepo "stylebook/database/repository/user"
	"stylebook/models"
	"stylebook/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 7 * 24 * time.Hour

// AuthHandler covers registration and login.
type AuthHandler struct {
	Users userRepo.UserRepository
}

func NewAuthHandler(users userRepo.UserRepository) *AuthHandler {
	return &AuthHandler{Users: users}
}

// RegisterHandler creates an account and returns a signed token.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req struct {
		Email     string `json:"email" binding:"required,email"`
		Password  string `json:"password" binding:"required,min=8"`
		FirstName string `json:"firstName" binding:"required"`
		LastName  string `json:"lastName" binding:"required"`
		Phone     string `json:"phone"`
		Role      string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	role := req.Role
	switch role {
	case "", "client":
		role = "client"
	case "stylist":
	default:
		// Admin accounts are provisioned out of band.
		jsonError(c, http.StatusBadRequest, "role must be client or stylist")
		return
	}

	if existing, err := h.Users.GetByEmail(c.Request.Context(), req.Email); err == nil && existing != nil {
		jsonError(c, http.StatusConflict, "an account with this email already exists")
		return
	} else if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		getLogger(c).Error("failed to check existing account", zap.Error(err))
		jsonError(c, http.StatusInternalServerError, "registration failed")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		getLogger(c).Error("failed to hash password", zap.Error(err))
		jsonError(c, http.StatusInternalServerError, "registration failed")
		return
	}

	u := &models.User{
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Role:         role,
		PasswordHash: string(hash),
	}
	if err := h.Users.Create(c.Request.Context(), u); err != nil {
		getLogger(c).Error("failed to create user", zap.Error(err))
		jsonError(c, http.StatusInternalServerError, "registration failed")
		return
	}

	token, err := h.issueToken(c, u)
	if err != nil {
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": u, "token": token})
}

// LoginHandler verifies credentials and returns a signed token.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	u, err := h.Users.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		jsonError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		jsonError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := h.issueToken(c, u)
	if err != nil {
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u, "token": token})
}

// issueToken signs a JWT and primes the auth cache with its hash, so the
// first authenticated request skips signature validation.
func (h *AuthHandler) issueToken(c *gin.Context, u *models.User) (string, error) {
	role := u.Role
	if u.IsAdmin {
		role = "admin"
	}
	token, err := utils.GenerateToken(u.ID, role, tokenLifetime)
	if err != nil {
		getLogger(c).Error("failed to sign token", zap.Error(err))
		jsonError(c, http.StatusInternalServerError, "authentication failed")
		return "", err
	}

	if cache := utils.GetAuthCacheClient(); cache != nil {
		key := utils.AuthCachePrefix + u.ID
		_ = cache.Set(c.Request.Context(), key, utils.HashToken(token), utils.AuthCacheTTL).Err()
	}
	return token, nil
}
