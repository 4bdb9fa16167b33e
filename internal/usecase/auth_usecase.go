package usecase

import (
	"context"
	"errors"

	"crewplan/internal/pkg/jwt"
	"crewplan/internal/repository"
	ucauth "crewplan/internal/usecase/auth"
)

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)

type AuthUsecase interface {
	Register(ctx context.Context, in ucauth.RegisterInput) (repository.User, string, string, error)
	Login(ctx context.Context, in ucauth.LoginInput) (repository.User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type Auth struct {
	authSvc *ucauth.Service
	users   repository.UserRepository
	jwt     jwt.Service
}

func NewAuthUsecase(users repository.UserRepository, jwtSvc jwt.Service) *Auth {
	return &Auth{authSvc: ucauth.NewService(users), users: users, jwt: jwtSvc}
}

func (u *Auth) Register(ctx context.Context, in ucauth.RegisterInput) (repository.User, string, string, error) {
	usr, err := u.authSvc.Register(ctx, in)
	if err != nil {
		return repository.User{}, "", "", err
	}
	access, refresh, err := u.issueTokens(usr)
	if err != nil {
		return repository.User{}, "", "", err
	}
	return usr, access, refresh, nil
}

func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (repository.User, string, string, error) {
	usr, err := u.authSvc.Login(ctx, in)
	if err != nil {
		return repository.User{}, "", "", err
	}
	access, refresh, err := u.issueTokens(usr)
	if err != nil {
		return repository.User{}, "", "", err
	}
	return usr, access, refresh, nil
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrRefreshTokenExpired
		}
		return "", "", ErrInvalidRefreshToken
	}

	if !u.jwt.IsRefreshToken(claims) {
		return "", "", ErrInvalidRefreshToken
	}

	usr, err := u.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", "", ErrInternal
	}

	return u.issueTokens(usr)
}

func (u *Auth) issueTokens(usr repository.User) (string, string, error) {
	access, err := u.jwt.GenerateAccessToken(usr.ID, usr.Email)
	if err != nil {
		return "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(usr.ID)
	if err != nil {
		return "", "", ErrInternal
	}
	return access, refresh, nil
}
