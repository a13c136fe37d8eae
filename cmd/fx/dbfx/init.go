package dbfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"arcana/internal/infra"
)

var Module = fx.Provide(
	provideConfig, provideDB)

func provideConfig() *infra.Config {
	return infra.LoadConfig()
}

func provideDB(cfg *infra.Config) *gorm.DB {
	return infra.InitPostgresql(cfg)
}
