package usecase

import (
	"errors"
	"fmt"
)

// 商品が見つからない（400で返す）
var ErrProductNotFound = errors.New("product not found")

type HTTPError struct {
	Status  int
	Message string
	Err     error
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// 原因のsentinelを保持したHTTPError（errors.Isで判定できる）
func WrapHTTPError(status int, err error, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
		Err:     err,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}
