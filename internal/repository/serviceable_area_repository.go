package repository

import (
	"context"

	"github.com/AshishTripathi80/product-catlog-backend/internal/domain/model"
)

// 配送可能エリアの参照。無ければErrNotFound
type ServiceableAreaRepository interface {
	FindByPincode(ctx context.Context, pincode string) (model.ServiceableArea, error)
}
