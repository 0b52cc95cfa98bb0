package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/AshishTripathi80/product-catlog-backend/internal/domain/model"
	"github.com/AshishTripathi80/product-catlog-backend/internal/handler"
	"github.com/AshishTripathi80/product-catlog-backend/internal/repository"
	"github.com/AshishTripathi80/product-catlog-backend/internal/repository/mocks"
	"github.com/AshishTripathi80/product-catlog-backend/internal/server"
	"github.com/AshishTripathi80/product-catlog-backend/internal/usecase"
	"github.com/AshishTripathi80/product-catlog-backend/internal/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type productFixture struct {
	e        *echo.Echo
	products *mocks.ProductRepository
	areas    *mocks.ServiceableAreaRepository
}

func newProductFixture(t *testing.T) *productFixture {
	t.Helper()

	products := new(mocks.ProductRepository)
	areas := new(mocks.ServiceableAreaRepository)
	uc := usecase.NewProductUsecase(products, areas, nil, validator.New())
	h := handler.NewProductHandler(uc, zap.NewNop())

	return &productFixture{
		e:        server.New(zap.NewNop(), h),
		products: products,
		areas:    areas,
	}
}

func TestCreateProduct_OK(t *testing.T) {
	f := newProductFixture(t)
	code := uuid.New()
	f.products.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.Code != uuid.Nil && p.Name == "TV" && p.AvailableQuantity == 3
	})).Return(model.Product{ID: 7, Code: code, Name: "TV", AvailableQuantity: 3}, nil)

	rec := doRequest(f.e, http.MethodPost, "/api/products",
		`{"name":"TV","price":100,"category":"electronics","availableQuantity":3}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var p model.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, int64(7), p.ID)
	assert.Equal(t, code, p.Code)
	f.products.AssertExpectations(t)
}

func TestCreateProduct_ValidationFailed(t *testing.T) {
	f := newProductFixture(t)

	rec := doRequest(f.e, http.MethodPost, "/api/products", `{"name":"TV"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	out := decodeValidation(t, rec)
	assert.Equal(t, "Validation Failed!", out.ErrorMsg)
	assert.ElementsMatch(t, []string{
		"price: Product price is required",
		"category: Product category is required",
	}, out.Errors)
}

func TestCreateAll_OK(t *testing.T) {
	f := newProductFixture(t)
	f.products.On("CreateAll", mock.Anything, mock.MatchedBy(func(ps []model.Product) bool {
		return len(ps) == 2 && ps[0].Code != ps[1].Code
	})).Return([]model.Product{{ID: 1}, {ID: 2}}, nil)

	code := uuid.New().String()
	rec := doRequest(f.e, http.MethodPost, "/api/products/addAll",
		`{"products":[{"code":"`+code+`","name":"A","price":1,"category":"c"},{"code":"`+code+`","name":"B","price":2,"category":"c"}]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	f.products.AssertExpectations(t)
}

func TestGetProduct_NotFoundIs400PlainText(t *testing.T) {
	f := newProductFixture(t)
	f.products.On("FindByID", mock.Anything, int64(42)).Return(model.Product{}, repository.ErrNotFound)

	rec := doRequest(f.e, http.MethodGet, "/api/products/42", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "product not found with id: 42", rec.Body.String())
}

func TestGetProduct_BadID(t *testing.T) {
	f := newProductFixture(t)

	rec := doRequest(f.e, http.MethodGet, "/api/products/abc", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"id: must be a number"}, decodeValidation(t, rec).Errors)
}

func TestGetProduct_DBErrorIs500(t *testing.T) {
	f := newProductFixture(t)
	f.products.On("FindByID", mock.Anything, int64(1)).Return(model.Product{}, errors.New("down"))

	rec := doRequest(f.e, http.MethodGet, "/api/products/1", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "db error", rec.Body.String())
}

func TestListProducts(t *testing.T) {
	f := newProductFixture(t)
	f.products.On("List", mock.Anything).Return([]model.Product{{ID: 1}, {ID: 2}}, nil)

	rec := doRequest(f.e, http.MethodGet, "/api/products", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var ps []model.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ps))
	assert.Len(t, ps, 2)
}

func TestByName(t *testing.T) {
	f := newProductFixture(t)
	f.products.On("FindAllByName", mock.Anything, "tv").Return([]model.Product{{ID: 3, Name: "tv"}}, nil)

	rec := doRequest(f.e, http.MethodGet, "/api/products/name/tv", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

// =====================
// GET /search
// =====================

func TestSearch_NoParamsReturnsCatalog(t *testing.T) {
	f := newProductFixture(t)
	f.products.On("List", mock.Anything).Return([]model.Product{{ID: 1}, {ID: 2}}, nil).Once()

	rec := doRequest(f.e, http.MethodGet, "/api/products/search", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var ps []model.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ps))
	assert.Len(t, ps, 2)
}

func TestSearch_EmptyNameIsPresent(t *testing.T) {
	f := newProductFixture(t)
	f.products.On("FindAllByBrand", mock.Anything, "acme").Return([]model.Product{{ID: 9}}, nil)
	f.products.On("List", mock.Anything).Return([]model.Product{{ID: 1}}, nil)

	rec := doRequest(f.e, http.MethodGet, "/api/products/search?name=&brand=acme", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var ps []model.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ps))
	require.Len(t, ps, 2)
	assert.Equal(t, int64(9), ps[0].ID)
	assert.Equal(t, int64(1), ps[1].ID)
}

func TestSearch_NoMatchIs400(t *testing.T) {
	f := newProductFixture(t)
	f.products.On("FindAllByBrand", mock.Anything, "nobody").Return([]model.Product{}, nil)

	rec := doRequest(f.e, http.MethodGet, "/api/products/search?brand=nobody", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "product not found with id: nobody", rec.Body.String())
}

// テンプレート通りに全パラメータを空で送ると全商品
func TestSearch_AllParamsEmptyReturnsCatalog(t *testing.T) {
	f := newProductFixture(t)
	f.products.On("List", mock.Anything).Return([]model.Product{{ID: 1}, {ID: 2}}, nil)

	rec := doRequest(f.e, http.MethodGet, "/api/products/search?name=&code=&brand=&price=", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var ps []model.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ps))
	assert.NotEmpty(t, ps)
	f.products.AssertNotCalled(t, "FindAllByCode", mock.Anything, mock.Anything)
	f.products.AssertNotCalled(t, "FindAllByPrice", mock.Anything, mock.Anything)
}

func TestSearch_EmptyCodeAndPriceAreAbsent(t *testing.T) {
	f := newProductFixture(t)
	f.products.On("FindAllByName", mock.Anything, "tv").Return([]model.Product{{ID: 3}}, nil)

	rec := doRequest(f.e, http.MethodGet, "/api/products/search?name=tv&code=&price=", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var ps []model.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ps))
	require.Len(t, ps, 1)
	assert.Equal(t, int64(3), ps[0].ID)
	f.products.AssertNotCalled(t, "List", mock.Anything)
}

func TestSearch_BadTypedParams(t *testing.T) {
	f := newProductFixture(t)

	for _, target := range []string{
		"/api/products/search?code=not-a-uuid",
		"/api/products/search?price=cheap",
	} {
		rec := doRequest(f.e, http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Len(t, decodeValidation(t, rec).Errors, 1, target)
	}
}

// =====================
// PUT / DELETE
// =====================

func TestUpdateProduct_OK(t *testing.T) {
	f := newProductFixture(t)
	code := uuid.New()
	f.products.On("FindByID", mock.Anything, int64(5)).Return(model.Product{ID: 5, Code: code}, nil)
	f.products.On("Update", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.ID == 5 && p.Code == code && p.Name == "new"
	})).Return(model.Product{ID: 5, Code: code, Name: "new"}, nil)

	rec := doRequest(f.e, http.MethodPut, "/api/products/5", `{"name":"new","price":10,"category":"c"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	f.products.AssertExpectations(t)
}

func TestDeleteProduct_NoContent(t *testing.T) {
	f := newProductFixture(t)
	f.products.On("FindByID", mock.Anything, int64(5)).Return(model.Product{ID: 5}, nil)
	f.products.On("Delete", mock.Anything, int64(5)).Return(nil)

	rec := doRequest(f.e, http.MethodDelete, "/api/products/5", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDeleteProduct_Missing(t *testing.T) {
	f := newProductFixture(t)
	f.products.On("FindByID", mock.Anything, int64(5)).Return(model.Product{}, repository.ErrNotFound)

	rec := doRequest(f.e, http.MethodDelete, "/api/products/5", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	f.products.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

// =====================
// GET /serviceability
// =====================

func TestServiceability_Serviceable(t *testing.T) {
	f := newProductFixture(t)
	f.products.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1}, nil)
	f.areas.On("FindByPincode", mock.Anything, "560001").Return(model.ServiceableArea{Pincode: "560001", DeliveryTime: "2"}, nil)

	rec := doRequest(f.e, http.MethodGet, "/api/products/serviceability?productId=1&pincode=560001", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"isServiceable":true,"deliveryTime":"2 Days"}`, rec.Body.String())
}

func TestServiceability_NotServiceable(t *testing.T) {
	f := newProductFixture(t)
	f.products.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1}, nil)
	f.areas.On("FindByPincode", mock.Anything, "999").Return(model.ServiceableArea{}, repository.ErrNotFound)

	rec := doRequest(f.e, http.MethodGet, "/api/products/serviceability?productId=1&pincode=999", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"isServiceable":false}`, rec.Body.String())
}

func TestServiceability_BadProductID(t *testing.T) {
	f := newProductFixture(t)

	rec := doRequest(f.e, http.MethodGet, "/api/products/serviceability?pincode=1", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"productId: must be a number"}, decodeValidation(t, rec).Errors)
}

func TestServiceability_PincodeRequired(t *testing.T) {
	f := newProductFixture(t)

	for _, target := range []string{
		"/api/products/serviceability?productId=1",
		"/api/products/serviceability?productId=1&pincode=",
	} {
		rec := doRequest(f.e, http.MethodGet, target, "")
		require.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Equal(t, []string{"pincode: pincode is required"}, decodeValidation(t, rec).Errors, target)
	}
	f.products.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	f.areas.AssertNotCalled(t, "FindByPincode", mock.Anything, mock.Anything)
}
