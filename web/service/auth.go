package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"blog-api/config"
	"blog-api/database"
	"blog-api/database/model"
	"blog-api/logger"
	"blog-api/util/common"
	"blog-api/util/random"
)

const (
	bcryptCost = 12
	tokenTTL   = 72 * time.Hour
)

// AuthService issues and verifies bearer tokens and manages user accounts.
type AuthService struct {
	secret []byte
}

func NewAuthService() *AuthService {
	secret := config.GetJWTSecret()
	if secret == "" {
		// Without a configured secret every restart invalidates all
		// outstanding tokens.
		secret = random.Seq(32)
		logger.Warning("BLOG_JWT_SECRET is not set, using a generated secret")
	}
	return &AuthService{secret: []byte(secret)}
}

// Register validates and creates a new user, returning a token for it.
// The raw password is never stored.
func (s *AuthService) Register(username, password string, role model.Role) (string, *model.User, error) {
	if err := s.validate(username, password, role); err != nil {
		return "", nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", nil, err
	}
	user := &model.User{
		Username: username,
		Password: string(hash),
		Role:     role,
	}
	if err := database.GetDB().Create(user).Error; err != nil {
		return "", nil, err
	}

	token, err := s.token(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Login checks the credentials and returns a token for the user.
// A missing user and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(username, password string) (string, *model.User, error) {
	ve := newValidationError()
	if username == "" {
		ve.add("username", "username is required")
	}
	if password == "" {
		ve.add("password", "password is required")
	}
	if err := ve.orNil(); err != nil {
		return "", nil, err
	}

	var user model.User
	if err := database.GetDB().Where("username = ?", username).First(&user).Error; err != nil {
		if database.IsNotFound(err) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.token(&user)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

// VerifyToken parses a bearer token and returns the id of the principal
// it names. Resolving the id to a user is the caller's business.
func (s *AuthService) VerifyToken(tokenString string) (int, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.NewErrorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, common.NewError("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, common.NewError("invalid token claims")
	}
	id, ok := claims["id"].(float64)
	if !ok {
		return 0, common.NewError("invalid token claims")
	}
	return int(id), nil
}

func (s *AuthService) token(user *model.User) (string, error) {
	claims := jwt.MapClaims{
		"id":       user.Id,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *AuthService) validate(username, password string, role model.Role) error {
	ve := newValidationError()

	if username == "" {
		ve.add("username", "username is required")
	} else {
		var count int64
		if err := database.GetDB().Model(&model.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			ve.add("username", "username has already been taken")
		}
	}

	if password == "" {
		ve.add("password", "password is required")
	} else if len(password) < 8 {
		ve.add("password", "password must be at least 8 characters")
	}

	if role == "" {
		ve.add("role", "role is required")
	} else if !role.IsValid() {
		ve.add("role", "selected role is invalid")
	}

	return ve.orNil()
}
