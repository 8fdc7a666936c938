package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"gympoint-backend/internal/domain"
	"gympoint-backend/internal/repository"
	"gympoint-backend/internal/security"
)

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrUnauthenticated
		}
		return "", nil, err
	}
	if !user.Active {
		return "", nil, domain.ErrUnauthenticated
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrUnauthenticated
	}

	role, err := domain.CanonicalRole(string(user.Role))
	if err != nil {
		return "", nil, err
	}
	user.Role = role

	token, err := s.tokens.GenerateAccessToken(user.ID, user.Email, role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
