package repository

import (
	"context"
	"errors"

	"github.com/AshishTripathi80/product-catlog-backend/internal/domain/model"
)

var (
	// ユーザーが見つかりませんを統一
	ErrUserNotFound = errors.New("user not found")
	// email一意制約違反
	ErrDuplicateEmail = errors.New("duplicate email")
)

// 保存・取得を約束
type UserRepository interface {
	//新規作成。email重複はErrDuplicateEmail
	Create(ctx context.Context, user *model.UserCredential) error
	//IDで一件取得（ストア共通のget）。無ければErrUserNotFound
	FindByID(ctx context.Context, id int64) (*model.UserCredential, error)
	//メールから一件取得。無ければErrUserNotFound
	FindByEmail(ctx context.Context, email string) (*model.UserCredential, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]model.UserCredential, error)
}
