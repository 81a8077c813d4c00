package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"ramsvik.no/Olsmak/configs"
	"ramsvik.no/Olsmak/pkg/model"
	"ramsvik.no/Olsmak/pkg/repository"
)

// Context keys for the authenticated identity.
const (
	UserKey        = "auth.user"        // *model.User, organizer requests only
	ParticipantKey = "auth.participant" // string uuid, any authenticated request
)

// Token kinds. Organizer tokens are backed by a user row; participant tokens
// are anonymous, the uuid subject is the only identity that exists.
const (
	KindOrganizer   = "organizer"
	KindParticipant = "participant"
)

var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type userRepository interface {
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

type Manager struct {
	conf   *configs.Config
	repo   userRepository
	logger *zap.Logger
}

func NewManager(conf *configs.Config, repo userRepository, logger *zap.Logger) *Manager {
	return &Manager{conf: conf, repo: repo, logger: logger}
}

// HashPassword derives the stored hash for an organizer password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// Login verifies organizer credentials and issues a bearer token.
func (a *Manager) Login(ctx context.Context, email string, password string) (string, *model.User, error) {
	user, err := a.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}

		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := a.issueToken(jwt.MapClaims{
		"sub":   user.UUID.String(),
		"email": user.Email,
		"kind":  KindOrganizer,
	})
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// AnonymousToken issues a participant token with a fresh uuid subject. The
// client keeps the token across visits so the subject stays stable per
// device.
func (a *Manager) AnonymousToken() (string, string, error) {
	subject := uuid.New().String()

	token, err := a.issueToken(jwt.MapClaims{
		"sub":  subject,
		"kind": KindParticipant,
	})
	if err != nil {
		return "", "", err
	}

	return token, subject, nil
}

func (a *Manager) issueToken(claims jwt.MapClaims) (string, error) {
	claims["exp"] = time.Now().Add(time.Duration(a.conf.Auth.TokenExpiry) * time.Hour).Unix()
	claims["iat"] = time.Now().Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(a.conf.Auth.SecretKey))
}

// Identify accepts any valid token and puts the subject uuid on the request
// context. Both organizers and anonymous participants pass.
func (a *Manager) Identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := a.parseRequestToken(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})

			return
		}

		subject, found := claims["sub"].(string)
		if !found {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token has no subject"})

			return
		}

		c.Set(ParticipantKey, subject)
		c.Next()
	}
}

// RequireOrganizer only passes organizer tokens, and resolves the backing
// user row into the request context.
func (a *Manager) RequireOrganizer() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := a.parseRequestToken(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})

			return
		}

		if kind, _ := claims["kind"].(string); kind != KindOrganizer {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "organizer token required"})

			return
		}

		email, found := claims["email"].(string)
		if !found {
			a.logger.Error("unable to get email from token", zap.Any("claims", claims))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unable to get user from token"})

			return
		}

		user, err := a.repo.GetUserByEmail(c.Request.Context(), email)
		if err != nil {
			a.logger.Error("error authenticating user", zap.Error(err))

			status := http.StatusInternalServerError
			if errors.Is(err, repository.ErrUserNotFound) {
				status = http.StatusUnauthorized
			}

			c.AbortWithStatusJSON(status, gin.H{"error": "error authenticating user"})

			return
		}

		if subject, _ := claims["sub"].(string); subject != "" {
			c.Set(ParticipantKey, subject)
		}

		c.Set(UserKey, user)
		c.Next()
	}
}

func (a *Manager) parseRequestToken(r *http.Request) (jwt.MapClaims, error) {
	tokenString, err := a.extractToken(r)
	if err != nil {
		return nil, err
	}

	keyFunc := func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected signing method %v", ErrInvalidToken, token.Header["alg"])
		}

		return []byte(a.conf.Auth.SecretKey), nil
	}

	token, err := jwt.ParseWithClaims(tokenString, jwt.MapClaims{}, keyFunc)
	if err != nil {
		a.logger.Error("error parsing token", zap.Error(err))

		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, found := token.Claims.(jwt.MapClaims)
	if !found || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (a *Manager) extractToken(r *http.Request) (string, error) {
	authorization := r.Header.Get("Authorization")
	if len(authorization) == 0 {
		// WebSocket clients cannot set headers from the browser, so the
		// live endpoint passes the token as a query parameter instead.
		if token := r.URL.Query().Get("token"); token != "" {
			return token, nil
		}

		return "", fmt.Errorf("%w: authorization header not found", ErrInvalidToken)
	}

	prefix := "Bearer "
	if !strings.HasPrefix(authorization, prefix) {
		prefix = "bearer "
	}

	token, found := strings.CutPrefix(authorization, prefix)
	if !found {
		return "", fmt.Errorf("%w: authorization format must be Bearer {token}", ErrInvalidToken)
	}

	return token, nil
}
