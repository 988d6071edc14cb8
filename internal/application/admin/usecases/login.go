package usecases

import (
	"context"

	"officetools/internal/shared/errors"
	"officetools/internal/shared/logger"
)

// KeyVerifier maps a presented admin key to a role.
type KeyVerifier interface {
	Verify(key string) (role string, ok bool)
}

type TokenIssuer interface {
	Generate(subject, role string) (token string, expiresIn int64, err error)
}

type LoginCommand struct {
	AdminKey  string
	ClientIP  string
	UserAgent string
}

type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	Role        string `json:"role"`
}

// LoginUseCase trades a shared admin key for a short-lived bearer token so
// the key itself is not sent with every request.
type LoginUseCase struct {
	verifier KeyVerifier
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(verifier KeyVerifier, tokens TokenIssuer, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{verifier: verifier, tokens: tokens, logger: logger}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	role, ok := uc.verifier.Verify(cmd.AdminKey)
	if !ok {
		uc.logger.Warnw("admin login rejected", "ip", cmd.ClientIP, "user_agent", cmd.UserAgent)
		return nil, errors.NewUnauthorizedError("invalid admin key")
	}

	token, expiresIn, err := uc.tokens.Generate(role, role)
	if err != nil {
		uc.logger.Errorw("failed to issue admin token", "role", role, "error", err)
		return nil, errors.NewInternalError("failed to issue token")
	}

	uc.logger.Infow("admin login", "role", role, "ip", cmd.ClientIP)
	return &LoginResult{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
		Role:        role,
	}, nil
}
