package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// 署名不正・期限切れ・形式不正
var ErrInvalidToken = errors.New("invalid token")

var errEmptySubject = errors.New("subject must not be empty")

// 現在の時間
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClockは実時間
var SystemClock Clock = systemClock{}

// subject（email）に紐づくトークンの発行と検証
type TokenService interface {
	GenerateToken(subject string) (string, error)
	ValidateToken(token string) error
}

// HS256で署名し、expを必須にするTokenService
type JWTTokenService struct {
	secret []byte
	ttl    time.Duration
	clock  Clock
}

var _ TokenService = (*JWTTokenService)(nil)

// DI
func NewJWTTokenService(secret string, ttl time.Duration, clock Clock) *JWTTokenService {
	if clock == nil {
		clock = SystemClock
	}
	return &JWTTokenService{
		secret: []byte(secret),
		ttl:    ttl,
		clock:  clock,
	}
}

func (s *JWTTokenService) GenerateToken(subject string) (string, error) {
	if strings.TrimSpace(subject) == "" {
		return "", errEmptySubject
	}

	now := s.clock.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateTokenは署名と期限を確認する（副作用なし）
func (s *JWTTokenService) ValidateToken(token string) error {
	_, err := s.parse(token)
	return err
}

// Subjectは検証済みトークンのsubを返す
func (s *JWTTokenService) Subject(token string) (string, error) {
	claims, err := s.parse(token)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

func (s *JWTTokenService) parse(token string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}

	//時刻の検証はclockで行うので、ここでは署名だけ
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	_, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	now := s.clock.Now()
	if !claims.VerifyExpiresAt(now, true) {
		return nil, fmt.Errorf("%w: token is expired", ErrInvalidToken)
	}
	if !claims.VerifyIssuedAt(now, false) {
		return nil, fmt.Errorf("%w: token used before issued", ErrInvalidToken)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return claims, nil
}
