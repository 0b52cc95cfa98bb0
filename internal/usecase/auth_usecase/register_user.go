package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AshishTripathi80/product-catlog-backend/internal/domain/model"
	"github.com/AshishTripathi80/product-catlog-backend/internal/repository"
	"github.com/AshishTripathi80/product-catlog-backend/internal/validator"
)

// 会員登録の入力（POST /auth のボディ）
type RegisterUserInput struct {
	Email           string `json:"email" validate:"required,email"`
	FirstName       string `json:"firstName" validate:"min=2,max=10" msg:"firstname must be between 2 and 10 characters"`
	LastName        string `json:"lastName" validate:"min=2,max=10" msg:"lastname must be between 2 and 10 characters"`
	Password        string `json:"password" validate:"min=5,bcryptmax" msg:"Password name must be more than 5 characters" msg_bcryptmax:"Password must be at most 72 bytes"`
	ConfirmPassword string `json:"confirmPassword" validate:"min=5,bcryptmax" msg:"Password name must be more than 5 characters" msg_bcryptmax:"Password must be at most 72 bytes"`
}

// 競合
var ErrEmailAlreadyExists = errors.New("email already exists")

// RegisterUserUsecaseは会員登録の処理。
type RegisterUserUsecase struct {
	userRepo  repository.UserRepository
	hasher    PasswordHasher
	validator *validator.Validator
}

// DI
func NewRegisterUserUsecase(
	userRepo repository.UserRepository,
	hasher PasswordHasher,
	v *validator.Validator,
) *RegisterUserUsecase {
	return &RegisterUserUsecase{
		userRepo:  userRepo,
		hasher:    hasher,
		validator: v,
	}
}

// 会員登録実行
func (u *RegisterUserUsecase) Execute(ctx context.Context, in RegisterUserInput) (*model.UserCredential, error) {
	in.Email = strings.TrimSpace(in.Email)

	//入力検証（400: 全フィールド分まとめて返す）
	if err := u.validator.Struct(in); err != nil {
		return nil, err
	}

	//既に使われているならハッシュ化の前に弾く
	exists, err := u.userRepo.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", ErrEmailAlreadyExists, in.Email)
	}

	// パスワードをハッシュ化
	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &model.UserCredential{
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: hashed,
	}

	//同時登録はunique indexで弾かれる
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, fmt.Errorf("%w: %s", ErrEmailAlreadyExists, in.Email)
		}
		return nil, err
	}

	return user, nil
}
