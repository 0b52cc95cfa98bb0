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
	auth "github.com/AshishTripathi80/product-catlog-backend/internal/usecase/auth_usecase"
	"github.com/AshishTripathi80/product-catlog-backend/internal/validator"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	//.envは無くてもよい
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if err := cfg.ValidateAuth(); err != nil {
		panic(err)
	}

	log, err := logger.New(cfg)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal("db connect failed", zap.Error(err))
	}
	if err := db.Migrate(gormDB, &model.UserCredential{}); err != nil {
		log.Fatal("migrate failed", zap.Error(err))
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)

	//bcrypt（会員登録：Hash / ログイン：Verify）
	hasher := auth.NewBcryptPasswordHasher(cfg.BcryptCost)
	verifier := auth.NewBcryptPasswordVerifier()
	tokens := auth.NewJWTTokenService(cfg.JWTSecret, cfg.JWTTTL, auth.SystemClock)
	v := validator.New()

	//Usecase生成
	registerUC := auth.NewRegisterUserUsecase(userRepo, hasher, v)
	loginUC := auth.NewLoginUsecase(userRepo, verifier, tokens)
	validateUC := auth.NewValidateTokenUsecase(tokens)
	listUC := auth.NewListUsersUsecase(userRepo)

	//Handler生成
	authH := handler.NewAuthHandler(registerUC, loginUC, validateUC, listUC, log)

	//Server起動
	e := server.New(log, authH)
	if err := server.Start(e, cfg.Addr(), log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
