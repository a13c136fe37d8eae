package walletfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"arcana/internal/api/controllers"
	"arcana/internal/infra"
	"arcana/internal/repositories"
	"arcana/internal/services"
)

var Module = fx.Provide(
	provideCharger, provideWalletService, provideWalletController)

func provideCharger(cfg *infra.Config) services.PaymentChargerInterface {
	return services.NewStripeCharger(cfg.StripeSecret)
}

func provideWalletService(
	db *gorm.DB,
	accountRepo repositories.AccountRepository,
	charger services.PaymentChargerInterface,
) services.WalletServiceInterface {
	return services.NewWalletService(db, accountRepo, charger)
}

func provideWalletController(walletService services.WalletServiceInterface) *controllers.WalletController {
	return controllers.NewWalletController(walletService)
}
