package repository

import (
	"context"

	"github.com/AshishTripathi80/product-catlog-backend/internal/domain/model"
	repo "github.com/AshishTripathi80/product-catlog-backend/internal/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type serviceableAreaGormRepository struct {
	db *gorm.DB
}

func NewServiceableAreaGormRepository(db *gorm.DB) repo.ServiceableAreaRepository {
	return &serviceableAreaGormRepository{db: db}
}

// pincodeで1件取得
func (r *serviceableAreaGormRepository) FindByPincode(ctx context.Context, pincode string) (model.ServiceableArea, error) {
	var a model.ServiceableArea
	err := r.db.WithContext(ctx).Where("pincode = ?", pincode).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ServiceableArea{}, repo.ErrNotFound
	}
	if err != nil {
		return model.ServiceableArea{}, errors.Wrapf(err, "find serviceable area %s", pincode)
	}
	return a, nil
}
