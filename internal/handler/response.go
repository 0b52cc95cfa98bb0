package handler

import (
	"net/http"
	"time"

	"github.com/AshishTripathi80/product-catlog-backend/internal/validator"

	"github.com/labstack/echo/v4"
)

// 400のボディ
type ValidationErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	ErrorMsg  string    `json:"errorMsg"`
	Errors    []string  `json:"errors"`
}

func writeValidationError(c echo.Context, ve *validator.ValidationError) error {
	return c.JSON(http.StatusBadRequest, ValidationErrorResponse{
		Timestamp: ve.Timestamp,
		ErrorMsg:  validator.ValidationFailedMessage,
		Errors:    ve.Errors,
	})
}

// JSONとして読めないボディは1件だけのバリデーションエラーにする
func bindBody(c echo.Context, dst interface{}) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, dst); err != nil {
		return validator.NewValidationError("body", "malformed JSON request")
	}
	return nil
}
