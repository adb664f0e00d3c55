package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"synapseBack/internal/models"
	"synapseBack/internal/repositories"
	"synapseBack/utils"
)

const (
	accessTokenTTL  = 20 * time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
)

type UserService struct {
	UserRepo     *repositories.UserRepository
	TokenManager *utils.Manager
}

func (s *UserService) SignUp(ctx context.Context, user models.User) (models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	user.Password = string(hashedPassword)
	if user.Role == "" {
		user.Role = "user"
	}

	return s.UserRepo.CreateUser(ctx, user)
}

func (s *UserService) SignIn(ctx context.Context, email, password string) (models.User, models.Tokens, error) {
	user, err := s.UserRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if err == models.ErrUserNotFound {
			return models.User{}, models.Tokens{}, models.ErrInvalidCredentials
		}
		return models.User{}, models.Tokens{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, models.Tokens{}, models.ErrInvalidCredentials
	}

	var tokens models.Tokens
	tokens.AccessToken, err = s.TokenManager.NewAccessToken(user.ID, user.Role, accessTokenTTL)
	if err != nil {
		return models.User{}, models.Tokens{}, err
	}

	tokens.RefreshToken, err = s.TokenManager.NewRefreshToken()
	if err != nil {
		tokens.RefreshToken = uuid.New().String()
	}

	session := models.Session{
		UserID:       user.ID,
		Role:         user.Role,
		RefreshToken: tokens.RefreshToken,
		ExpiresAt:    time.Now().Add(refreshTokenTTL),
	}
	if err := s.UserRepo.SaveSession(ctx, session); err != nil {
		return models.User{}, models.Tokens{}, err
	}

	user.Password = ""
	return user, tokens, nil
}

func (s *UserService) GetUsers(ctx context.Context) ([]models.User, error) {
	return s.UserRepo.GetUsers(ctx)
}

func (s *UserService) GetUserByID(ctx context.Context, id int) (models.User, error) {
	return s.UserRepo.GetUserByID(ctx, id)
}

func (s *UserService) UpdateUserRole(ctx context.Context, id int, role string) error {
	return s.UserRepo.UpdateUserRole(ctx, id, role)
}

func (s *UserService) DeleteUser(ctx context.Context, id int) error {
	return s.UserRepo.DeleteUser(ctx, id)
}
