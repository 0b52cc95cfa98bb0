package usecase

import (
	"context"

	"github.com/AshishTripathi80/product-catlog-backend/internal/domain/model"

	"github.com/google/uuid"
)

// GET /search の条件。nilは未指定
type SearchProductsInput struct {
	Name  *string
	Code  *uuid.UUID
	Brand *string
	Price *int64
}

func (in SearchProductsInput) empty() bool {
	return in.Name == nil && in.Code == nil && in.Brand == nil && in.Price == nil
}

// 条件ごとの結果を name -> code -> brand -> price の順に連結する（ANDではなく和、重複除去なし）
// 指定された条件が1件もヒットしなければ検索全体がnot found
// 条件なし、またはnameかbrandが空文字なら全商品を末尾に足す
func (u *ProductUsecase) SearchProducts(ctx context.Context, in SearchProductsInput) ([]model.Product, error) {
	results := []model.Product{}

	if in.Name != nil && *in.Name != "" {
		ps, err := u.GetProductsByName(ctx, *in.Name)
		if err != nil {
			return nil, err
		}
		results = append(results, ps...)
	}

	if in.Code != nil {
		ps, err := u.GetProductsByCode(ctx, *in.Code)
		if err != nil {
			return nil, err
		}
		results = append(results, ps...)
	}

	if in.Brand != nil && *in.Brand != "" {
		ps, err := u.GetProductsByBrand(ctx, *in.Brand)
		if err != nil {
			return nil, err
		}
		results = append(results, ps...)
	}

	if in.Price != nil {
		ps, err := u.GetProductsByPrice(ctx, *in.Price)
		if err != nil {
			return nil, err
		}
		results = append(results, ps...)
	}

	blankName := in.Name != nil && *in.Name == ""
	blankBrand := in.Brand != nil && *in.Brand == ""
	if in.empty() || blankName || blankBrand {
		all, err := u.ListProducts(ctx)
		if err != nil {
			return nil, err
		}
		results = append(results, all...)
	}

	return results, nil
}
