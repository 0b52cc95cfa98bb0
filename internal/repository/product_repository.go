package repository

import (
	"context"
	"errors"

	"github.com/AshishTripathi80/product-catlog-backend/internal/domain/model"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("not found")

// 商品の永続化（保存・取得）だけを約束。
// FindAllBy系は0件でも空スライスを返す（エラーにしない）。
type ProductRepository interface {
	FindByID(ctx context.Context, id int64) (model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	FindAllByName(ctx context.Context, name string) ([]model.Product, error)
	FindAllByCode(ctx context.Context, code uuid.UUID) ([]model.Product, error)
	FindAllByBrand(ctx context.Context, brand string) ([]model.Product, error)
	FindAllByPrice(ctx context.Context, price int64) ([]model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	CreateAll(ctx context.Context, ps []model.Product) ([]model.Product, error)
	Update(ctx context.Context, p model.Product) (model.Product, error)
	Delete(ctx context.Context, id int64) error
}
