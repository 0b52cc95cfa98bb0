package handler

import (
	"errors"
	"net/http"

	auth "github.com/AshishTripathi80/product-catlog-backend/internal/usecase/auth_usecase"
	"github.com/AshishTripathi80/product-catlog-backend/internal/validator"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AuthHandler struct {
	registerUC  *auth.RegisterUserUsecase // 会員登録usecase
	loginUC     *auth.LoginUsecase        // ログインusecase
	validateUC  *auth.ValidateTokenUsecase
	listUsersUC *auth.ListUsersUsecase
	log         *zap.Logger
}

// DIコンストラクタ
func NewAuthHandler(
	registerUC *auth.RegisterUserUsecase,
	loginUC *auth.LoginUsecase,
	validateUC *auth.ValidateTokenUsecase,
	listUsersUC *auth.ListUsersUsecase,
	log *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		registerUC:  registerUC,
		loginUC:     loginUC,
		validateUC:  validateUC,
		listUsersUC: listUsersUC,
		log:         log,
	}
}

// /auth のルートを登録
func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/auth")
	g.POST("", h.register)
	g.GET("", h.list)
	g.POST("/login", h.login)
	g.GET("/validate", h.validate)
}

// 400: 入力エラーとユーザー無し
// 409: それ以外すべて（email重複、token不正、パスワード違いも含む）
func (h *AuthHandler) writeError(c echo.Context, err error) error {
	if ve, ok := validator.AsValidationError(err); ok {
		return writeValidationError(c, ve)
	}

	switch {
	case errors.Is(err, auth.ErrUserNotFound):
		return c.String(http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrEmailAlreadyExists),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrInvalidAccess):
		return c.String(http.StatusConflict, err.Error())
	}

	//想定外
	h.log.Error("auth request failed", zap.String("path", c.Path()), zap.Error(err))
	return c.String(http.StatusConflict, err.Error())
}

// POST /auth
func (h *AuthHandler) register(c echo.Context) error {
	var in auth.RegisterUserInput
	if err := bindBody(c, &in); err != nil {
		return h.writeError(c, err)
	}
	h.log.Info("received register request", zap.String("email", in.Email))

	user, err := h.registerUC.Execute(c.Request().Context(), in)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, user)
}

// GET /auth
func (h *AuthHandler) list(c echo.Context) error {
	h.log.Info("received list users request")

	users, err := h.listUsersUC.Execute(c.Request().Context())
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

// POST /auth/login
func (h *AuthHandler) login(c echo.Context) error {
	var in auth.LoginInput
	if err := bindBody(c, &in); err != nil {
		return h.writeError(c, err)
	}
	h.log.Info("received login request", zap.String("email", in.Email))

	user, err := h.loginUC.Execute(c.Request().Context(), in)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// GET /auth/validate?token=
func (h *AuthHandler) validate(c echo.Context) error {
	token := c.QueryParam("token")
	h.log.Info("received validate token request")

	if err := h.validateUC.Execute(c.Request().Context(), token); err != nil {
		return h.writeError(c, err)
	}
	return c.String(http.StatusOK, "Token is valid")
}
