package auth

import (
	"context"

	"github.com/AshishTripathi80/product-catlog-backend/internal/domain/model"
	"github.com/AshishTripathi80/product-catlog-backend/internal/repository"
)

// GET /auth
type ListUsersUsecase struct {
	userRepo repository.UserRepository
}

func NewListUsersUsecase(userRepo repository.UserRepository) *ListUsersUsecase {
	return &ListUsersUsecase{userRepo: userRepo}
}

func (u *ListUsersUsecase) Execute(ctx context.Context) ([]model.UserCredential, error) {
	return u.userRepo.List(ctx)
}
