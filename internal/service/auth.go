package service

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"personapath/internal/models"
	"personapath/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/argon2"
)

var ( // Define custom errors
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidRoles are the access roles a user may register with.
var ValidRoles = map[string]bool{
	"Employee":   true,
	"HR Manager": true,
	"Admin":      true,
}

type AuthService interface {
	Register(username, password, role string) (*models.User, error)
	Login(username, password string) (string, time.Time, *models.User, error)
	Profile(id int64) (*models.User, error)
	JWTSecret() []byte
}

type authService struct {
	repo      repository.AuthRepository
	logger    *zap.Logger
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(repo repository.AuthRepository, jwtSecret string, tokenTTL time.Duration, logger *zap.Logger) AuthService {
	if jwtSecret == "" {
		// Development fallback only.
		jwtSecret = "supersecretjwtkey"
	}
	return &authService{
		repo:      repo,
		logger:    logger,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

func (s *authService) JWTSecret() []byte {
	return s.jwtSecret
}

// Profile loads the account behind an authenticated request.
func (s *authService) Profile(id int64) (*models.User, error) {
	user, err := s.repo.GetUserByID(id)
	if err != nil {
		s.logger.Error("Failed to load user profile", zap.Int64("user_id", id), zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *authService) Register(username, password, role string) (*models.User, error) {
	if !ValidRoles[role] {
		role = "Employee"
	}

	existing, err := s.repo.GetUserByUsername(username)
	if err != nil {
		s.logger.Error("Failed to check existing user", zap.Error(err))
		return nil, fmt.Errorf("failed to check existing users: %w", err)
	}
	if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	passwordHash, err := HashPassword(password)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
	}

	if err := s.repo.CreateUser(user); err != nil {
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User registered", zap.String("username", username), zap.String("role", role))
	return user, nil
}

func (s *authService) Login(username, password string) (string, time.Time, *models.User, error) {
	user, err := s.repo.GetUserByUsername(username)
	if err != nil {
		s.logger.Error("Failed to get user by username", zap.Error(err))
		return "", time.Time{}, nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	if user == nil {
		return "", time.Time{}, nil, ErrUserNotFound
	}

	if !VerifyPassword(user.PasswordHash, password) {
		return "", time.Time{}, nil, ErrInvalidCredentials
	}

	expirationTime := time.Now().Add(s.tokenTTL)
	claims := &models.Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		s.logger.Error("Failed to generate JWT token", zap.Error(err))
		return "", time.Time{}, nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("User logged in successfully.", zap.String("username", user.Username))
	return tokenString, expirationTime, user, nil
}

// HashPassword uses Argon2id to hash the password. The salt and parameters
// are encoded into the stored string:
// $argon2id$v=19$m=65536,t=1,p=4$BASE64_SALT$BASE64_HASH
func HashPassword(password string) (string, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	hash := argon2.IDKey([]byte(password), salt, 1, 64*1024, uint8(4), 32)

	encodedSalt := base64.RawStdEncoding.EncodeToString(salt)
	encodedHash := base64.RawStdEncoding.EncodeToString(hash)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s", argon2.Version, 64*1024, 1, 4, encodedSalt, encodedHash), nil
}

// VerifyPassword compares a plaintext password with a stored hash.
func VerifyPassword(hashedPassword, password string) bool {
	sections := strings.Split(strings.TrimPrefix(hashedPassword, "$"), "$")
	// Expected format: ["argon2id", "v=19", "m=65536,t=1,p=4", "salt", "hash"]
	if len(sections) != 5 || sections[0] != "argon2id" {
		return false
	}

	var version int
	fmt.Sscanf(sections[1], "v=%d", &version)

	var m, t, p uint32
	fmt.Sscanf(sections[2], "m=%d,t=%d,p=%d", &m, &t, &p)

	decodedSalt, err := base64.RawStdEncoding.DecodeString(sections[3])
	if err != nil {
		return false
	}
	decodedHash, err := base64.RawStdEncoding.DecodeString(sections[4])
	if err != nil {
		return false
	}

	comparisonHash := argon2.IDKey([]byte(password), decodedSalt, t, m, uint8(p), uint32(len(decodedHash)))

	return subtle.ConstantTimeCompare(comparisonHash, decodedHash) == 1
}
