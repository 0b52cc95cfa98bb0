package repository

import (
	"context"

	"github.com/AshishTripathi80/product-catlog-backend/internal/domain/model"
	repo "github.com/AshishTripathi80/product-catlog-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// 一括登録のバッチサイズ
const createBatchSize = 100

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, errors.Wrapf(err, "find product %d", id)
	}
	return p, nil
}

// 全商品（id順）
func (r *ProductGormRepository) List(ctx context.Context) ([]model.Product, error) {
	return r.findAll(ctx, "", nil)
}

func (r *ProductGormRepository) FindAllByName(ctx context.Context, name string) ([]model.Product, error) {
	return r.findAll(ctx, "name = ?", name)
}

func (r *ProductGormRepository) FindAllByCode(ctx context.Context, code uuid.UUID) ([]model.Product, error) {
	return r.findAll(ctx, "code = ?", code)
}

func (r *ProductGormRepository) FindAllByBrand(ctx context.Context, brand string) ([]model.Product, error) {
	return r.findAll(ctx, "brand = ?", brand)
}

func (r *ProductGormRepository) FindAllByPrice(ctx context.Context, price int64) ([]model.Product, error) {
	return r.findAll(ctx, "price = ?", price)
}

// 完全一致の検索。queryが空なら全件
func (r *ProductGormRepository) findAll(ctx context.Context, query string, arg interface{}) ([]model.Product, error) {
	products := []model.Product{}

	tx := r.db.WithContext(ctx).Model(&model.Product{})
	if query != "" {
		tx = tx.Where(query, arg)
	}
	if err := tx.Order("id asc").Find(&products).Error; err != nil {
		return nil, errors.Wrap(err, "find products")
	}
	return products, nil
}

// 商品の作成
func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, errors.Wrap(err, "create product")
	}
	return p, nil
}

// 複数商品の作成（バッチ全体のトランザクションは張らない）
func (r *ProductGormRepository) CreateAll(ctx context.Context, ps []model.Product) ([]model.Product, error) {
	if len(ps) == 0 {
		return []model.Product{}, nil
	}
	if err := r.db.WithContext(ctx).CreateInBatches(&ps, createBatchSize).Error; err != nil {
		return nil, errors.Wrap(err, "create products")
	}
	return ps, nil
}

// 商品の更新（全項目置き換え）
func (r *ProductGormRepository) Update(ctx context.Context, p model.Product) (model.Product, error) {
	res := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"code":               p.Code,
		"image":              p.Image,
		"name":               p.Name,
		"description":        p.Description,
		"price":              p.Price,
		"category":           p.Category,
		"brand":              p.Brand,
		"available_quantity": p.AvailableQuantity,
	})
	if res.Error != nil {
		return model.Product{}, errors.Wrapf(res.Error, "update product %d", p.ID)
	}
	if res.RowsAffected == 0 {
		return model.Product{}, repo.ErrNotFound
	}
	return r.FindByID(ctx, p.ID)
}

// 商品削除
func (r *ProductGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, id)
	if res.Error != nil {
		return errors.Wrapf(res.Error, "delete product %d", id)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
