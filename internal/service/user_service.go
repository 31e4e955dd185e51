package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mahlalem-eng/themosthigh-backend/internal/entity"
	"github.com/mahlalem-eng/themosthigh-backend/internal/repository"
)

type UserService struct {
	users     repository.UserRepository
	rdb       *redis.Client
	jwtSecret []byte
}

func NewUserService(users repository.UserRepository, rdb *redis.Client, jwtSecret string) *UserService {
	return &UserService{
		users:     users,
		rdb:       rdb,
		jwtSecret: []byte(jwtSecret),
	}
}

type JwtCustomClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func (s *UserService) Register(ctx context.Context, user *entity.User, password string) (*entity.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user.ID = uuid.NewString()
	user.Password = string(hash)
	user.CreatedAt = time.Now()

	if err := s.users.Create(ctx, user); err != nil {
		logger.Error().Err(err).Msg("Error creating user")
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (*entity.User, error) {
	return s.users.GetByID(ctx, id)
}

// Login checks the password and issues a 24h session token.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	claims := &JwtCustomClaims{
		Name:  user.Username,
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", err
	}

	if s.rdb != nil {
		if err := s.rdb.Set(ctx, "session:"+user.Email, token, 24*time.Hour).Err(); err != nil {
			logger.Error().Err(err).Msgf("Error storing session for %s", user.Email)
		}
	}

	return token, nil
}

// IdentityFromToken resolves a bearer token to a user id. Invalid or absent
// tokens fall back to the guest identity.
func (s *UserService) IdentityFromToken(tokenString string) string {
	if tokenString == "" {
		return entity.GuestIdentity
	}

	claims := &JwtCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return entity.GuestIdentity
	}
	return claims.Subject
}
