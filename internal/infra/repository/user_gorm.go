package repository

import (
	"context"

	"github.com/AshishTripathi80/product-catlog-backend/internal/domain/model"
	domainrepo "github.com/AshishTripathi80/product-catlog-backend/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// postgresの一意制約違反
const uniqueViolation = "23505"

type userGormRepository struct {
	db *gorm.DB
}

// DI
// main.goでこれをnewしてusecaseに注入します。
func NewUserGormRepository(db *gorm.DB) domainrepo.UserRepository {
	return &userGormRepository{db: db}
}

// Create はユーザーを新規作成
// 存在チェックはせず、emailのunique indexに任せる
func (r *userGormRepository) Create(ctx context.Context, user *model.UserCredential) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return domainrepo.ErrDuplicateEmail
		}
		return errors.Wrap(err, "create user")
	}
	return nil
}

// IDでユーザーを1件取得
func (r *userGormRepository) FindByID(ctx context.Context, id int64) (*model.UserCredential, error) {
	var u model.UserCredential

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainrepo.ErrUserNotFound
		}
		return nil, errors.Wrapf(err, "find user %d", id)
	}

	return &u, nil
}

// emailでユーザーを1件取得
func (r *userGormRepository) FindByEmail(ctx context.Context, email string) (*model.UserCredential, error) {
	var u model.UserCredential

	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainrepo.ErrUserNotFound
		}
		return nil, errors.Wrap(err, "find user by email")
	}

	return &u, nil
}

func (r *userGormRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.UserCredential{}).
		Where("email = ?", email).
		Count(&n).Error
	if err != nil {
		return false, errors.Wrap(err, "count users by email")
	}
	return n > 0, nil
}

// 全件（id順）
func (r *userGormRepository) List(ctx context.Context) ([]model.UserCredential, error) {
	users := []model.UserCredential{}
	if err := r.db.WithContext(ctx).Order("id asc").Find(&users).Error; err != nil {
		return nil, errors.Wrap(err, "list users")
	}
	return users, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
