package userapp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofrs/uuid"
	"golang.org/x/crypto/bcrypt"
	"yatube/internal/core/errs"
	userEntity "yatube/internal/core/user"
	userPort "yatube/internal/ports/user"
)

// UserService implements the user directory: signup, login and lookups.
type UserService struct {
	UserRepository userPort.UserRepository
	jwtKey         []byte
}

func NewUserService(repo userPort.UserRepository, jwtKey []byte) *UserService {
	return &UserService{
		UserRepository: repo,
		jwtKey:         jwtKey,
	}
}

// Claims carries the username alongside the standard subject so handlers can
// build profile links without a directory lookup.
type Claims struct {
	jwt.StandardClaims
	Username string `json:"username"`
}

const tokenLifetime = 24 * time.Hour

// Register creates a user with a bcrypt-hashed password.
func (s *UserService) Register(ctx context.Context, firstName, lastName, username, email, password string) (*userPort.UserDTO, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return nil, fmt.Errorf("%w: username and password are required", errs.ErrValidation)
	}

	existing, err := s.UserRepository.FindByUsernameOrEmail(username, email)
	if err == nil && existing != nil {
		return nil, fmt.Errorf("%w: username or email already taken", errs.ErrConflict)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &userEntity.User{
		ID:        uuid.Must(uuid.NewV4()),
		Username:  username,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Password:  string(hashed),
	}

	created, err := s.UserRepository.Create(u)
	if err != nil {
		return nil, err
	}
	return toDTO(created), nil
}

// Login checks the password and issues a signed session token.
func (s *UserService) Login(ctx context.Context, username, password string) (*userPort.LoginResponse, error) {
	u, err := s.UserRepository.FindByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", errs.ErrAuthorization)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", errs.ErrAuthorization)
	}

	expiresAt := time.Now().Add(tokenLifetime)
	claims := &Claims{
		StandardClaims: jwt.StandardClaims{
			Subject:   u.ID.String(),
			Issuer:    "yatube",
			ExpiresAt: expiresAt.Unix(),
		},
		Username: u.Username,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtKey)
	if err != nil {
		return nil, fmt.Errorf("could not generate token: %w", err)
	}

	return &userPort.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*userPort.UserDTO, error) {
	u, err := s.UserRepository.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	return toDTO(u), nil
}

// ParseToken validates a session token and returns its claims.
func ParseToken(jwtKey []byte, token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return jwtKey, nil
	})
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: invalid session token", errs.ErrAuthorization)
	}
	return claims, nil
}

func toDTO(u *userEntity.User) *userPort.UserDTO {
	return &userPort.UserDTO{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
