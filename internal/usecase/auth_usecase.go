package usecase

import (
	"context"

	"jaybesin/pkg/errors"
	"jaybesin/pkg/logger"
)

type AuthUseCase struct {
	firebaseAuth AuthClient
}

func NewAuthUseCase(firebaseAuth AuthClient) *AuthUseCase {
	return &AuthUseCase{
		firebaseAuth: firebaseAuth,
	}
}

type AuthResult struct {
	Token string
	UID   string
}

// Login signs the admin in with email and password. All failure modes
// collapse into one generic message.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	token, err := uc.firebaseAuth.SignInWithEmailPassword(email, password)
	if err != nil {
		logger.Warn("Login failed for %s: %v", email, err)
		return nil, errors.Unauthorized("Invalid credentials", err)
	}

	uid, err := uc.firebaseAuth.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Internal("Failed to verify token", err)
	}

	return &AuthResult{
		Token: token,
		UID:   uid,
	}, nil
}

// Logout revokes the user's refresh tokens; existing ID tokens expire on
// their own within the hour.
func (uc *AuthUseCase) Logout(ctx context.Context, token string) error {
	uid, err := uc.firebaseAuth.VerifyToken(ctx, token)
	if err != nil {
		return errors.Unauthorized("Invalid token", err)
	}

	if err := uc.firebaseAuth.RevokeTokens(ctx, uid); err != nil {
		return errors.Internal("Failed to revoke tokens", err)
	}

	return nil
}
