package auth

import (
	"context"
	"fmt"
)

type ValidateTokenUsecase struct {
	tokens TokenService
}

func NewValidateTokenUsecase(tokens TokenService) *ValidateTokenUsecase {
	return &ValidateTokenUsecase{tokens: tokens}
}

// 失敗はすべてErrInvalidToken（メッセージに元のtokenを含める）
func (u *ValidateTokenUsecase) Execute(ctx context.Context, token string) error {
	if err := u.tokens.ValidateToken(token); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidToken, token)
	}
	return nil
}
