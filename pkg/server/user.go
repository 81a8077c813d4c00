package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ramsvik.no/Olsmak/pkg/auth"
	"ramsvik.no/Olsmak/pkg/model"
)

type userRepository interface {
	AddUser(ctx context.Context, name string, email string, passwordHash string) (*model.User, error)
}

// UserServer owns organizer accounts and token issuance.
type UserServer struct {
	logger      *zap.Logger
	users       userRepository
	authManager *auth.Manager
}

func NewUserServer(users userRepository, authManager *auth.Manager, logger *zap.Logger) *UserServer {
	return &UserServer{logger: logger, users: users, authManager: authManager}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (s *UserServer) Register(c *gin.Context) {
	var request registerRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	hash, err := auth.HashPassword(request.Password)
	if err != nil {
		s.logger.Error("error hashing password", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error creating user"})

		return
	}

	user, err := s.users.AddUser(c.Request.Context(), request.Name, request.Email, hash)
	if err != nil {
		s.logger.Error("error creating user", zap.String("email", request.Email), zap.Error(err))
		c.JSON(http.StatusConflict, gin.H{"error": "error creating user"})

		return
	}

	c.JSON(http.StatusCreated, userResponse{
		ID:    user.UUID.String(),
		Name:  user.Name,
		Email: user.Email,
	})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type tokenResponse struct {
	Token string        `json:"token"`
	User  *userResponse `json:"user,omitempty"`
}

func (s *UserServer) Login(c *gin.Context) {
	var request loginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	token, user, err := s.authManager.Login(c.Request.Context(), request.Email, request.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})

			return
		}

		s.logger.Error("error logging in", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error logging in"})

		return
	}

	c.JSON(http.StatusOK, tokenResponse{
		Token: token,
		User: &userResponse{
			ID:    user.UUID.String(),
			Name:  user.Name,
			Email: user.Email,
		},
	})
}

// Identity hands out an anonymous participant token. No account, no
// password: the uuid baked into the token is the participant's whole
// identity.
func (s *UserServer) Identity(c *gin.Context) {
	token, subject, err := s.authManager.AnonymousToken()
	if err != nil {
		s.logger.Error("error issuing participant token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error issuing token"})

		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "id": subject})
}
