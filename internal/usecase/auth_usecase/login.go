package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/AshishTripathi80/product-catlog-backend/internal/domain/model"
	"github.com/AshishTripathi80/product-catlog-backend/internal/repository"
)

// handlerからusecaseに渡す入力
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

var (
	// emailに該当するユーザーがいない
	ErrUserNotFound = errors.New("no user found with email")
	// パスワードが違う
	ErrInvalidAccess = errors.New("invalid access")
)

type LoginUsecase struct {
	userRepo repository.UserRepository
	verifier PasswordVerifier
	tokens   TokenService
}

func NewLoginUsecase(
	userRepo repository.UserRepository,
	verifier PasswordVerifier,
	tokens TokenService,
) *LoginUsecase {
	return &LoginUsecase{
		userRepo: userRepo,
		verifier: verifier,
		tokens:   tokens,
	}
}

// ログイン処理を実行する
// tokenは返却用のユーザーにだけセットし、保存はしない
func (u *LoginUsecase) Execute(ctx context.Context, in LoginInput) (*model.UserCredential, error) {
	//emailでユーザー取得
	user, err := u.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUserNotFound, in.Email)
		}
		return nil, err
	}

	//パスワード照合
	if ok := u.verifier.Verify(in.Password, user.PasswordHash); !ok {
		return nil, ErrInvalidAccess
	}

	token, err := u.tokens.GenerateToken(user.Email)
	if err != nil {
		return nil, err
	}

	user.Token = &token
	return user, nil
}
