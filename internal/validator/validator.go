package validator

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"time"

	playground "github.com/go-playground/validator/v10"
)

// エラーレスポンスのerrorMsg
const ValidationFailedMessage = "Validation Failed!"

// bcryptが受け付ける入力の上限（バイト数）
const BcryptMaxBytes = 72

// フィールド単位の検証エラーをまとめたもの（400）
type ValidationError struct {
	Timestamp time.Time
	Errors    []string
}

func (e *ValidationError) Error() string {
	return ValidationFailedMessage + " " + strings.Join(e.Errors, ", ")
}

// 1件だけのValidationError（型変換エラーなど）
func NewValidationError(field string, message string) *ValidationError {
	return &ValidationError{
		Timestamp: time.Now(),
		Errors:    []string{field + ": " + message},
	}
}

func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

// go-playground/validatorのラッパー
// フィールド名はjsonタグ、メッセージは msg_<タグ名> > msg > タグ別の既定文言 の順
type Validator struct {
	v   *playground.Validate
	now func() time.Time
}

func New() *Validator {
	v := playground.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	if err := v.RegisterValidation("bcryptmax", func(fl playground.FieldLevel) bool {
		return len(fl.Field().String()) <= BcryptMaxBytes
	}); err != nil {
		panic(err)
	}
	return &Validator{v: v, now: time.Now}
}

// Structは検証して、違反があれば*ValidationErrorを返す
func (val *Validator) Struct(obj interface{}) error {
	err := val.v.Struct(obj)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	root := reflect.TypeOf(obj)
	out := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, fieldPath(fe)+": "+message(root, fe))
	}

	return &ValidationError{
		Timestamp: val.now(),
		Errors:    out,
	}
}

// "RegisterUserInput.firstName" -> "firstName"
// "CreateProductsInput.products[0].name" -> "products[0].name"
func fieldPath(fe playground.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(root reflect.Type, fe playground.FieldError) string {
	if f, ok := lookupField(root, fe.StructNamespace()); ok {
		if m := f.Tag.Get("msg_" + fe.Tag()); m != "" {
			return m
		}
		if m := f.Tag.Get("msg"); m != "" {
			return m
		}
	}

	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "must be a well-formed email address"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	case "gte":
		return fe.Field() + " must be greater than or equal to " + fe.Param()
	case "bcryptmax":
		return fe.Field() + " must be at most " + strconv.Itoa(BcryptMaxBytes) + " bytes"
	default:
		return "invalid value"
	}
}

// StructNamespaceを辿って末尾のフィールドを探す
func lookupField(root reflect.Type, structNS string) (reflect.StructField, bool) {
	parts := strings.Split(structNS, ".")
	if len(parts) < 2 {
		return reflect.StructField{}, false
	}

	t := root
	for i, p := range parts[1:] {
		if j := strings.IndexByte(p, '['); j >= 0 {
			p = p[:j]
		}
		for t.Kind() == reflect.Ptr || t.Kind() == reflect.Slice || t.Kind() == reflect.Array {
			t = t.Elem()
		}
		if t.Kind() != reflect.Struct {
			return reflect.StructField{}, false
		}

		f, ok := t.FieldByName(p)
		if !ok {
			return reflect.StructField{}, false
		}
		if i == len(parts)-2 {
			return f, true
		}
		t = f.Type
	}
	return reflect.StructField{}, false
}
