package readingfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"arcana/internal/api/controllers"
	"arcana/internal/infra"
	"arcana/internal/repositories"
	"arcana/internal/services"
	"arcana/pkg/utils"
)

var Module = fx.Provide(
	provideReadingRepo, provideReadingService, provideReadingController)

func provideReadingRepo(db *gorm.DB) repositories.ReadingRepository {
	return repositories.NewReadingRepository(db)
}

func provideReadingService(
	db *gorm.DB,
	accountRepo repositories.AccountRepository,
	readingRepo repositories.ReadingRepository,
	generator utils.ContentGeneratorInterface,
	cfg *infra.Config,
) services.ReadingServiceInterface {
	return services.NewReadingService(db, accountRepo, readingRepo, generator, cfg.ReadingCost)
}

func provideReadingController(readingService services.ReadingServiceInterface, cfg *infra.Config) *controllers.ReadingController {
	return controllers.NewReadingController(readingService, cfg.UploadDir)
}
