package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/AshishTripathi80/product-catlog-backend/internal/domain/model"
	repo "github.com/AshishTripathi80/product-catlog-backend/internal/repository"
	"github.com/AshishTripathi80/product-catlog-backend/internal/repository/mocks"
	"github.com/AshishTripathi80/product-catlog-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckServiceability_Registered(t *testing.T) {
	pRepo := new(mocks.ProductRepository)
	aRepo := new(mocks.ServiceableAreaRepository)
	pRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1}, nil)
	aRepo.On("FindByPincode", mock.Anything, "560001").Return(model.ServiceableArea{Pincode: "560001", DeliveryTime: "3"}, nil).Once()

	out, err := newProductUC(pRepo, aRepo).CheckServiceability(context.Background(), 1, "560001")
	require.NoError(t, err)
	assert.True(t, out.IsServiceable)
	require.NotNil(t, out.DeliveryTime)
	assert.Equal(t, "3 Days", *out.DeliveryTime)

	//pincodeは1回だけ引く
	aRepo.AssertNumberOfCalls(t, "FindByPincode", 1)
}

func TestCheckServiceability_UnknownPincode(t *testing.T) {
	pRepo := new(mocks.ProductRepository)
	aRepo := new(mocks.ServiceableAreaRepository)
	pRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1}, nil)
	aRepo.On("FindByPincode", mock.Anything, "000000").Return(model.ServiceableArea{}, repo.ErrNotFound)

	out, err := newProductUC(pRepo, aRepo).CheckServiceability(context.Background(), 1, "000000")
	require.NoError(t, err)
	assert.False(t, out.IsServiceable)
	assert.Nil(t, out.DeliveryTime)

	b, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{"isServiceable":false}`, string(b))
}

func TestCheckServiceability_ProductNotFound(t *testing.T) {
	pRepo := new(mocks.ProductRepository)
	aRepo := new(mocks.ServiceableAreaRepository)
	pRepo.On("FindByID", mock.Anything, int64(2)).Return(model.Product{}, repo.ErrNotFound)

	_, err := newProductUC(pRepo, aRepo).CheckServiceability(context.Background(), 2, "560001")
	assert.ErrorIs(t, err, usecase.ErrProductNotFound)
	aRepo.AssertNotCalled(t, "FindByPincode", mock.Anything, mock.Anything)
}

func TestCheckServiceability_AreaStoreError(t *testing.T) {
	pRepo := new(mocks.ProductRepository)
	aRepo := new(mocks.ServiceableAreaRepository)
	pRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1}, nil)
	aRepo.On("FindByPincode", mock.Anything, "1").Return(model.ServiceableArea{}, errors.New("timeout"))

	_, err := newProductUC(pRepo, aRepo).CheckServiceability(context.Background(), 1, "1")
	assertHTTPError(t, err, 500, "db error")
}
