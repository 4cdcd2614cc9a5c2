package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hausbib/hausbib/pkg/errcodes"
	"github.com/hausbib/hausbib/pkg/models"
	"github.com/hausbib/hausbib/pkg/permissions"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"golang.org/x/crypto/bcrypt"
)

const (
	// BcryptCost is the cost factor for bcrypt hashing.
	BcryptCost = 12
	// TokenExpiry is how long session tokens are valid.
	TokenExpiry = 30 * 24 * time.Hour // 30 days
)

// SessionClaims are the claims embedded in a session token.
type SessionClaims struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
	jwt.RegisteredClaims
}

// Service handles authentication operations.
type Service struct {
	db            *bun.DB
	sessionSecret []byte
}

// NewService creates a new auth service.
func NewService(db *bun.DB, sessionSecret string) *Service {
	return &Service{
		db:            db,
		sessionSecret: []byte(sessionSecret),
	}
}

// Authenticate validates credentials and returns the user if valid. The
// identifier can be a username or an email address. Unknown identifiers,
// inactive accounts, and wrong passwords all produce the same generic error
// so that callers can't probe which accounts exist.
func (s *Service) Authenticate(ctx context.Context, identifier, password string) (*models.User, error) {
	user := &models.User{}
	err := s.db.NewSelect().
		Model(user).
		Where("(u.username = ? COLLATE NOCASE OR u.email = ? COLLATE NOCASE)", identifier, identifier).
		Where("u.is_active = ?", true).
		Scan(ctx)
	if err != nil {
		return nil, errcodes.Unauthorized("Invalid username or password")
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return nil, errcodes.Unauthorized("Invalid username or password")
	}

	return user, nil
}

// GenerateToken creates a new session token for the user. The role string is
// normalized through the closed role set before it is embedded.
func (s *Service) GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		UserID:      user.ID,
		DisplayName: user.Username,
		Role:        string(permissions.ParseRole(user.Role)),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(s.sessionSecret)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return signedToken, nil
}

// ValidateToken validates a session token and returns the claims.
func (s *Service) ValidateToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.sessionSecret, nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// HashPassword hashes a password using bcrypt.
func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return string(hashedPassword), nil
}

// CheckPassword compares a password with a hash.
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
