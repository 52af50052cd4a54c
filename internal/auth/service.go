// Package auth issues role-scoped session tokens for the dashboard.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/grupoherz/conversation-dashboard/internal/config"
	"github.com/grupoherz/conversation-dashboard/internal/middleware"
	"github.com/grupoherz/conversation-dashboard/internal/model"
	"github.com/grupoherz/conversation-dashboard/pkg/logger"
)

// ErrInvalidCredentials is returned for any username/password mismatch.
// The caller cannot distinguish an unknown user from a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// User is one configured dashboard account.
type User struct {
	Username string
	Password string // bcrypt hash or plain text from env
	Role     model.Role
	Name     string
	Company  string
}

// Service checks configured credentials and signs session tokens.
type Service struct {
	users  map[string]User
	secret []byte
	ttl    time.Duration
	logger *logger.Logger
}

// NewService builds the account set from configuration. Accounts with an
// empty password are disabled.
func NewService(cfg *config.Config, log *logger.Logger) *Service {
	users := make(map[string]User)
	add := func(c config.Credentials, role model.Role) {
		if c.Username == "" || c.Password == "" {
			return
		}
		users[c.Username] = User{
			Username: c.Username,
			Password: c.Password,
			Role:     role,
			Name:     c.Name,
			Company:  c.Company,
		}
	}
	add(cfg.AdminUser, model.RoleAdmin)
	add(cfg.CompanyUser, model.RoleCompany)
	add(cfg.ClientUser, model.RoleClient)

	return &Service{
		users:  users,
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.JWTExpiration,
		logger: log,
	}
}

// Login verifies the credentials and returns a signed token plus the
// session record it encodes.
func (s *Service) Login(username, password string) (*model.LoginResponse, error) {
	user, ok := s.users[username]
	if !ok || !checkPassword(user.Password, password) {
		s.logger.Warn("login rejected", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	claims := middleware.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Role:    user.Role,
		Name:    user.Name,
		Company: user.Company,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &model.LoginResponse{
		Token: token,
		Session: model.UserSession{
			Username:  user.Username,
			Role:      user.Role,
			Name:      user.Name,
			Company:   user.Company,
			LoginTime: now,
		},
	}, nil
}

// checkPassword accepts either a bcrypt hash or a plain configured value.
// Plain values are compared in constant time.
func checkPassword(configured, supplied string) bool {
	if strings.HasPrefix(configured, "$2a$") || strings.HasPrefix(configured, "$2b$") || strings.HasPrefix(configured, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(configured), []byte(supplied)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(configured), []byte(supplied)) == 1
}
