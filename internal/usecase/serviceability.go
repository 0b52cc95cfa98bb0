package usecase

import (
	"context"
	"errors"

	repo "github.com/AshishTripathi80/product-catlog-backend/internal/repository"
)

// 保存値に付ける単位
const deliveryTimeUnit = " Days"

type ServiceabilityOutput struct {
	IsServiceable bool    `json:"isServiceable"`
	DeliveryTime  *string `json:"deliveryTime,omitempty"`
}

// 商品の存在確認のあと、pincodeで配送エリアを1回だけ引く
func (u *ProductUsecase) CheckServiceability(ctx context.Context, productID int64, pincode string) (ServiceabilityOutput, error) {
	if _, err := u.GetProduct(ctx, productID); err != nil {
		return ServiceabilityOutput{}, err
	}

	area, err := u.areaRepo.FindByPincode(ctx, pincode)
	if errors.Is(err, repo.ErrNotFound) {
		return ServiceabilityOutput{IsServiceable: false}, nil
	}
	if err != nil {
		return ServiceabilityOutput{}, dbError(err)
	}

	dt := area.DeliveryTime + deliveryTimeUnit
	return ServiceabilityOutput{
		IsServiceable: true,
		DeliveryTime:  &dt,
	}, nil
}
