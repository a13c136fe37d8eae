package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"arcana/cmd/fx/accountfx"
	"arcana/cmd/fx/aifx"
	"arcana/cmd/fx/dbfx"
	"arcana/cmd/fx/readingfx"
	"arcana/cmd/fx/walletfx"
	"arcana/internal/api/controllers"
	"arcana/internal/infra"
	mem "arcana/pkg/memcache"
	"arcana/pkg/middleware"
	"arcana/pkg/utils"
)

func main() {
	app := fx.New(
		dbfx.Module,
		accountfx.Module,
		aifx.Module,
		readingfx.Module,
		walletfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *infra.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	readingController *controllers.ReadingController,
	walletController *controllers.WalletController,
	jwtMaker *utils.JWTMaker,
	revoked mem.RevokedTokenStore,
) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, accountController, readingController, walletController, jwtMaker, revoked)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	readingController *controllers.ReadingController,
	walletController *controllers.WalletController,
	jwtMaker *utils.JWTMaker,
	revoked mem.RevokedTokenStore) {

	r.POST("/register", accountController.Register)
	r.POST("/login", accountController.Login)

	authed := r.Group("/")
	authed.Use(middleware.JWTAuthMiddleware(jwtMaker, revoked))

	authed.POST("/logout", accountController.Logout)
	authed.GET("/user", accountController.GetUser)

	authed.POST("/horoscope", readingController.Horoscope)
	authed.POST("/palm", readingController.Palm)
	authed.POST("/coffee", readingController.Coffee)
	authed.GET("/readings", readingController.History)

	authed.GET("/wallet/balance", walletController.GetBalance)
	authed.POST("/wallet/deposit", walletController.Deposit)
}
