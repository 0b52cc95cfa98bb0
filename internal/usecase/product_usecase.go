package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/AshishTripathi80/product-catlog-backend/internal/domain/model"
	repo "github.com/AshishTripathi80/product-catlog-backend/internal/repository"
	"github.com/AshishTripathi80/product-catlog-backend/internal/validator"

	"github.com/google/uuid"
)

// CodeGeneratorは商品コードを発番する
type CodeGenerator interface {
	NewCode() uuid.UUID
}

type uuidCodeGenerator struct{}

func (uuidCodeGenerator) NewCode() uuid.UUID { return uuid.New() }

// UUIDCodeGeneratorはランダムUUID(v4)で発番する
var UUIDCodeGenerator CodeGenerator = uuidCodeGenerator{}

type ProductUsecase struct {
	productRepo repo.ProductRepository
	areaRepo    repo.ServiceableAreaRepository
	codes       CodeGenerator
	validator   *validator.Validator
}

// DI
func NewProductUsecase(
	productRepo repo.ProductRepository,
	areaRepo repo.ServiceableAreaRepository,
	codes CodeGenerator,
	v *validator.Validator,
) *ProductUsecase {
	if codes == nil {
		codes = UUIDCodeGenerator
	}
	return &ProductUsecase{
		productRepo: productRepo,
		areaRepo:    areaRepo,
		codes:       codes,
		validator:   v,
	}
}

// 商品の入力（POST / PUT のボディ）
type ProductInput struct {
	Code              *uuid.UUID `json:"code"`
	Image             string     `json:"image"`
	Name              string     `json:"name" validate:"required" msg:"Product name is required"`
	Description       string     `json:"description"`
	Price             *int64     `json:"price" validate:"required" msg:"Product price is required"`
	Category          string     `json:"category" validate:"required" msg:"Product category is required"`
	Brand             string     `json:"brand"`
	AvailableQuantity int64      `json:"availableQuantity"`
}

// POST /addAll のボディ
type CreateProductsInput struct {
	Products []ProductInput `json:"products" validate:"dive"`
}

// 空白だけの必須項目は未入力扱い
func (in ProductInput) normalized() ProductInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	return in
}

func (in ProductInput) toModel() model.Product {
	p := model.Product{
		Image:             in.Image,
		Name:              in.Name,
		Description:       in.Description,
		Category:          in.Category,
		Brand:             in.Brand,
		AvailableQuantity: in.AvailableQuantity,
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	return p
}

func notFound(key interface{}) error {
	return WrapHTTPError(http.StatusBadRequest, ErrProductNotFound, fmt.Sprintf("%s with id: %v", ErrProductNotFound.Error(), key))
}

func dbError(err error) error {
	return WrapHTTPError(http.StatusInternalServerError, err, "db error")
}

func (u *ProductUsecase) ListProducts(ctx context.Context) ([]model.Product, error) {
	ps, err := u.productRepo.List(ctx)
	if err != nil {
		return nil, dbError(err)
	}
	return ps, nil
}

// 商品の作成（codeは入力に関係なく発番）
func (u *ProductUsecase) CreateProduct(ctx context.Context, in ProductInput) (model.Product, error) {
	in = in.normalized()
	if err := u.validator.Struct(in); err != nil {
		return model.Product{}, err
	}

	p := in.toModel()
	p.Code = u.codes.NewCode()

	created, err := u.productRepo.Create(ctx, p)
	if err != nil {
		return model.Product{}, dbError(err)
	}
	return created, nil
}

// 複数商品の作成。入力のcodeは信用せず全件発番し直す
func (u *ProductUsecase) CreateProducts(ctx context.Context, in CreateProductsInput) ([]model.Product, error) {
	for i := range in.Products {
		in.Products[i] = in.Products[i].normalized()
	}
	if err := u.validator.Struct(in); err != nil {
		return nil, err
	}

	ps := make([]model.Product, 0, len(in.Products))
	for _, pi := range in.Products {
		p := pi.toModel()
		p.Code = u.codes.NewCode()
		ps = append(ps, p)
	}

	created, err := u.productRepo.CreateAll(ctx, ps)
	if err != nil {
		return nil, dbError(err)
	}
	return created, nil
}

func (u *ProductUsecase) GetProduct(ctx context.Context, id int64) (model.Product, error) {
	p, err := u.productRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, notFound(id)
	}
	if err != nil {
		return model.Product{}, dbError(err)
	}
	return p, nil
}

// 名前の完全一致。0件はnot found
func (u *ProductUsecase) GetProductsByName(ctx context.Context, name string) ([]model.Product, error) {
	ps, err := u.productRepo.FindAllByName(ctx, name)
	return requireAny(ps, err, name)
}

func (u *ProductUsecase) GetProductsByCode(ctx context.Context, code uuid.UUID) ([]model.Product, error) {
	ps, err := u.productRepo.FindAllByCode(ctx, code)
	return requireAny(ps, err, code)
}

func (u *ProductUsecase) GetProductsByBrand(ctx context.Context, brand string) ([]model.Product, error) {
	ps, err := u.productRepo.FindAllByBrand(ctx, brand)
	return requireAny(ps, err, brand)
}

func (u *ProductUsecase) GetProductsByPrice(ctx context.Context, price int64) ([]model.Product, error) {
	ps, err := u.productRepo.FindAllByPrice(ctx, price)
	return requireAny(ps, err, price)
}

func requireAny(ps []model.Product, err error, key interface{}) ([]model.Product, error) {
	if err != nil {
		return nil, dbError(err)
	}
	if len(ps) == 0 {
		return nil, notFound(key)
	}
	return ps, nil
}

// 商品の更新（全項目置き換え）
// codeは入力にあれば置き換え、無ければ今のcodeを残す
func (u *ProductUsecase) UpdateProduct(ctx context.Context, id int64, in ProductInput) (model.Product, error) {
	in = in.normalized()
	if err := u.validator.Struct(in); err != nil {
		return model.Product{}, err
	}

	current, err := u.GetProduct(ctx, id)
	if err != nil {
		return model.Product{}, err
	}

	p := in.toModel()
	p.ID = current.ID
	p.Code = current.Code
	if in.Code != nil {
		p.Code = *in.Code
	}

	updated, err := u.productRepo.Update(ctx, p)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, notFound(id)
	}
	if err != nil {
		return model.Product{}, dbError(err)
	}
	return updated, nil
}

// 存在確認してから削除（無ければdeleteは発行しない）
func (u *ProductUsecase) DeleteProduct(ctx context.Context, id int64) error {
	if _, err := u.GetProduct(ctx, id); err != nil {
		return err
	}

	err := u.productRepo.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return notFound(id)
	}
	if err != nil {
		return dbError(err)
	}
	return nil
}
