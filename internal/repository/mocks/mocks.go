// Package mocks はrepositoryインターフェースのtestifyモック
package mocks

import (
	"context"

	"github.com/AshishTripathi80/product-catlog-backend/internal/domain/model"
	"github.com/AshishTripathi80/product-catlog-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// =====================
// UserRepository
// =====================

type UserRepository struct {
	mock.Mock
}

var _ repository.UserRepository = (*UserRepository)(nil)

func (m *UserRepository) Create(ctx context.Context, user *model.UserCredential) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepository) FindByID(ctx context.Context, id int64) (*model.UserCredential, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*model.UserCredential)
	return u, args.Error(1)
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*model.UserCredential, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.UserCredential)
	return u, args.Error(1)
}

func (m *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepository) List(ctx context.Context) ([]model.UserCredential, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]model.UserCredential)
	return users, args.Error(1)
}

// =====================
// ProductRepository
// =====================

type ProductRepository struct {
	mock.Mock
}

var _ repository.ProductRepository = (*ProductRepository)(nil)

func (m *ProductRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepository) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	return products(args.Get(0)), args.Error(1)
}

func (m *ProductRepository) FindAllByName(ctx context.Context, name string) ([]model.Product, error) {
	args := m.Called(ctx, name)
	return products(args.Get(0)), args.Error(1)
}

func (m *ProductRepository) FindAllByCode(ctx context.Context, code uuid.UUID) ([]model.Product, error) {
	args := m.Called(ctx, code)
	return products(args.Get(0)), args.Error(1)
}

func (m *ProductRepository) FindAllByBrand(ctx context.Context, brand string) ([]model.Product, error) {
	args := m.Called(ctx, brand)
	return products(args.Get(0)), args.Error(1)
}

func (m *ProductRepository) FindAllByPrice(ctx context.Context, price int64) ([]model.Product, error) {
	args := m.Called(ctx, price)
	return products(args.Get(0)), args.Error(1)
}

func (m *ProductRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepository) CreateAll(ctx context.Context, ps []model.Product) ([]model.Product, error) {
	args := m.Called(ctx, ps)
	return products(args.Get(0)), args.Error(1)
}

func (m *ProductRepository) Update(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	updated, _ := args.Get(0).(model.Product)
	return updated, args.Error(1)
}

func (m *ProductRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// =====================
// ServiceableAreaRepository
// =====================

type ServiceableAreaRepository struct {
	mock.Mock
}

var _ repository.ServiceableAreaRepository = (*ServiceableAreaRepository)(nil)

func (m *ServiceableAreaRepository) FindByPincode(ctx context.Context, pincode string) (model.ServiceableArea, error) {
	args := m.Called(ctx, pincode)
	a, _ := args.Get(0).(model.ServiceableArea)
	return a, args.Error(1)
}

func products(v interface{}) []model.Product {
	ps, _ := v.([]model.Product)
	return ps
}
