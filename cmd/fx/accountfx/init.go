package accountfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"arcana/internal/api/controllers"
	"arcana/internal/infra"
	"arcana/internal/repositories"
	"arcana/internal/services"
	mem "arcana/pkg/memcache"
	"arcana/pkg/utils"
)

var Module = fx.Provide(
	provideAccountRepo, provideJWTMaker, provideRevokedTokens,
	provideAccountService, provideAccountController)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideJWTMaker(cfg *infra.Config) *utils.JWTMaker {
	return utils.NewJWTMaker(cfg.JWTSecret)
}

func provideRevokedTokens() mem.RevokedTokenStore {
	return mem.NewRevokedTokens()
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	jwtMaker *utils.JWTMaker,
	revoked mem.RevokedTokenStore,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, jwtMaker, revoked)
}

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}
