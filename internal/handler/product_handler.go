package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/AshishTripathi80/product-catlog-backend/internal/usecase"
	"github.com/AshishTripathi80/product-catlog-backend/internal/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// /api/products のAPI
type ProductHandler struct {
	uc  *usecase.ProductUsecase
	log *zap.Logger
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase, log *zap.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, log: log}
}

// 商品のルートを登録
// 固定パス（/search, /serviceability）は /:id より優先される
func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/products")
	g.POST("", h.create)
	g.POST("/addAll", h.createAll)
	g.GET("", h.list)
	g.GET("/search", h.search)
	g.GET("/serviceability", h.serviceability)
	g.GET("/name/:name", h.byName)
	g.GET("/:id", h.detail)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *ProductHandler) writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if ve, ok := validator.AsValidationError(err); ok {
		return writeValidationError(c, ve)
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		if he.Status >= http.StatusInternalServerError {
			h.log.Error("product request failed", zap.String("path", c.Path()), zap.Error(he.Err))
		}
		return c.String(he.Status, he.Message)
	}

	//想定外は409
	h.log.Error("product request failed", zap.String("path", c.Path()), zap.Error(err))
	return c.String(http.StatusConflict, err.Error())
}

func parseID(raw string, field string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, validator.NewValidationError(field, "must be a number")
	}
	return id, nil
}

// POST /api/products
func (h *ProductHandler) create(c echo.Context) error {
	var in usecase.ProductInput
	if err := bindBody(c, &in); err != nil {
		return h.writeError(c, err)
	}
	h.log.Info("received create product request", zap.String("name", in.Name))

	p, err := h.uc.CreateProduct(c.Request().Context(), in)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// POST /api/products/addAll
func (h *ProductHandler) createAll(c echo.Context) error {
	var in usecase.CreateProductsInput
	if err := bindBody(c, &in); err != nil {
		return h.writeError(c, err)
	}
	h.log.Info("received bulk create product request", zap.Int("count", len(in.Products)))

	ps, err := h.uc.CreateProducts(c.Request().Context(), in)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, ps)
}

// GET /api/products
func (h *ProductHandler) list(c echo.Context) error {
	h.log.Info("received list products request")

	ps, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, ps)
}

// GET /api/products/:id
func (h *ProductHandler) detail(c echo.Context) error {
	id, err := parseID(c.Param("id"), "id")
	if err != nil {
		return h.writeError(c, err)
	}
	h.log.Info("received get product request", zap.Int64("id", id))

	p, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// GET /api/products/name/:name
func (h *ProductHandler) byName(c echo.Context) error {
	name := c.Param("name")
	h.log.Info("received get product by name request", zap.String("name", name))

	ps, err := h.uc.GetProductsByName(c.Request().Context(), name)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, ps)
}

// GET /api/products/search?name=&code=&brand=&price=
// nameとbrandは「無い」と「空」を区別する
func (h *ProductHandler) search(c echo.Context) error {
	qs := c.QueryParams()
	var in usecase.SearchProductsInput

	if _, ok := qs["name"]; ok {
		v := qs.Get("name")
		in.Name = &v
	}
	//codeとpriceは空なら未指定扱い
	if v := qs.Get("code"); v != "" {
		code, err := uuid.Parse(v)
		if err != nil {
			return h.writeError(c, validator.NewValidationError("code", "must be a valid UUID"))
		}
		in.Code = &code
	}
	if _, ok := qs["brand"]; ok {
		v := qs.Get("brand")
		in.Brand = &v
	}
	if v := qs.Get("price"); v != "" {
		price, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return h.writeError(c, validator.NewValidationError("price", "must be a number"))
		}
		in.Price = &price
	}
	h.log.Info("received search product request", zap.String("query", c.QueryString()))

	ps, err := h.uc.SearchProducts(c.Request().Context(), in)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, ps)
}

// PUT /api/products/:id
func (h *ProductHandler) update(c echo.Context) error {
	id, err := parseID(c.Param("id"), "id")
	if err != nil {
		return h.writeError(c, err)
	}
	var in usecase.ProductInput
	if err := bindBody(c, &in); err != nil {
		return h.writeError(c, err)
	}
	h.log.Info("received update product request", zap.Int64("id", id))

	p, err := h.uc.UpdateProduct(c.Request().Context(), id, in)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// DELETE /api/products/:id
func (h *ProductHandler) delete(c echo.Context) error {
	id, err := parseID(c.Param("id"), "id")
	if err != nil {
		return h.writeError(c, err)
	}
	h.log.Info("received delete product request", zap.Int64("id", id))

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return h.writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GET /api/products/serviceability?productId=&pincode=
func (h *ProductHandler) serviceability(c echo.Context) error {
	id, err := parseID(c.QueryParam("productId"), "productId")
	if err != nil {
		return h.writeError(c, err)
	}
	pincode := strings.TrimSpace(c.QueryParam("pincode"))
	if pincode == "" {
		return h.writeError(c, validator.NewValidationError("pincode", "pincode is required"))
	}
	h.log.Info("received serviceability request", zap.Int64("productId", id), zap.String("pincode", pincode))

	out, err := h.uc.CheckServiceability(c.Request().Context(), id, pincode)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
