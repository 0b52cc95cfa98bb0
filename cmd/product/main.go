package main

import (
	"errors"
	"io/fs"

	"github.com/AshishTripathi80/product-catlog-backend/internal/config"
	"github.com/AshishTripathi80/product-catlog-backend/internal/domain/model"
	"github.com/AshishTripathi80/product-catlog-backend/internal/handler"
	"github.com/AshishTripathi80/product-catlog-backend/internal/infra/db"
	"github.com/AshishTripathi80/product-catlog-backend/internal/infra/logger"
	infraRepo "github.com/AshishTripathi80/product-catlog-backend/internal/infra/repository"
	"github.com/AshishTripathi80/product-catlog-backend/internal/server"
	"github.com/AshishTripathi80/product-catlog-backend/internal/usecase"
	"github.com/AshishTripathi80/product-catlog-backend/internal/validator"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal("db connect failed", zap.Error(err))
	}
	if err := db.Migrate(gormDB, &model.Product{}, &model.ServiceableArea{}); err != nil {
		log.Fatal("migrate failed", zap.Error(err))
	}

	productRepo := infraRepo.NewProductGormRepository(gormDB)
	areaRepo := infraRepo.NewServiceableAreaGormRepository(gormDB)

	productUC := usecase.NewProductUsecase(productRepo, areaRepo, usecase.UUIDCodeGenerator, validator.New())
	productH := handler.NewProductHandler(productUC, log)

	e := server.New(log, productH)
	if err := server.Start(e, cfg.Addr(), log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
