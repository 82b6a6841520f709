package userapp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"socialfeed/internal/core/apperr"
	userEntity "socialfeed/internal/core/user"
	"socialfeed/internal/ports"
	userPort "socialfeed/internal/ports/user"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenIssuer    = "socialfeed"
	tokenLifetime  = 24 * time.Hour
	minPasswordLen = 6
)

var ErrInvalidToken = errors.New("invalid token")

// UserService سرویس مدیریت کاربران و صدور/اعتبارسنجی توکن
type UserService struct {
	UserRepository userPort.UserRepository
	jwtKey         []byte
	logger         *zap.Logger
	now            func() time.Time
}

func NewUserService(repo userPort.UserRepository, jwtKey []byte, logger *zap.Logger) *UserService {
	return &UserService{
		UserRepository: repo,
		jwtKey:         jwtKey,
		logger:         logger,
		now:            time.Now,
	}
}

// RegisterUser ثبت‌نام کاربر جدید
func (s *UserService) RegisterUser(ctx context.Context, username, name, avatar, password string) (*userPort.UserDTO, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, apperr.Validation("username and password are required")
	}
	if len(password) < minPasswordLen {
		return nil, apperr.Validation("password must be at least %d characters", minPasswordLen)
	}

	// بررسی تکراری نبودن یوزرنیم
	existing, err := s.UserRepository.FindByUsername(ctx, username)
	if err == nil && existing != nil {
		return nil, apperr.Validation("username already taken")
	}
	if err != nil && !errors.Is(err, ports.ErrNotFound) {
		return nil, apperr.Wrap(err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Wrap(err)
	}

	u, err := s.UserRepository.Create(ctx, &userEntity.User{
		ID:       uuid.Must(uuid.NewV4()),
		Username: username,
		Name:     strings.TrimSpace(name),
		Avatar:   strings.TrimSpace(avatar),
		Password: string(hashedPassword),
	})
	if err != nil {
		return nil, apperr.Wrap(err)
	}

	s.logger.Info("User registered", zap.String("userID", u.ID.String()), zap.String("username", u.Username))
	return userPort.ToDTO(u), nil
}

// LoginUser ورود کاربر و صدور توکن JWT
func (s *UserService) LoginUser(ctx context.Context, username, password string) (*userPort.LoginResponse, error) {
	u, err := s.UserRepository.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if !errors.Is(err, ports.ErrNotFound) {
			s.logger.Error("Error finding user", zap.Error(err))
		}
		return nil, apperr.Authorization("invalid credentials")
	}

	// مقایسه پسورد هش‌شده
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, apperr.Authorization("invalid credentials")
	}

	expiresAt := s.now().Add(tokenLifetime)
	token, err := s.generateJWT(u, expiresAt)
	if err != nil {
		s.logger.Error("Error generating JWT", zap.Error(err))
		return nil, apperr.Wrap(fmt.Errorf("could not generate token: %w", err))
	}

	return &userPort.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
		User:      userPort.ToDTO(u),
	}, nil
}

// generateJWT برای تولید توکن JWT
func (s *UserService) generateJWT(u *userEntity.User, expiresAt time.Time) (string, error) {
	claims := &jwt.StandardClaims{
		Subject:   u.ID.String(),
		Issuer:    tokenIssuer,
		IssuedAt:  s.now().Unix(),
		ExpiresAt: expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtKey)
}

// VerifyToken توکن را اعتبارسنجی کرده و شناسه کاربر را برمی‌گرداند
func (s *UserService) VerifyToken(tokenString string) (string, error) {
	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.jwtKey, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if _, err := uuid.FromString(claims.Subject); err != nil {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// GetProfile اطلاعات کاربر جاری
func (s *UserService) GetProfile(ctx context.Context, userID string) (*userPort.UserDTO, error) {
	u, err := s.UserRepository.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Wrap(err)
	}
	return userPort.ToDTO(u), nil
}
