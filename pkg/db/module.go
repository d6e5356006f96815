package db

import (
	"github.com/glebarez/sqlite"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	gormprom "gorm.io/plugin/prometheus"

	"github.com/vasavigrand/vgbilling/internal/config"
)

var Module = fx.Module("db",
	fx.Provide(Open),
)

type Params struct {
	fx.In

	Config *config.Config
	Log    *zap.Logger
}

// Open connects the sqlite database that backs the bill-number sequence.
func Open(p Params) (*gorm.DB, error) {
	gdb, err := gorm.Open(sqlite.Open(p.Config.Database.Path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := gdb.Use(otelgorm.NewPlugin()); err != nil {
		return nil, err
	}
	if err := gdb.Use(gormprom.New(gormprom.Config{
		DBName:          "vgbilling",
		RefreshInterval: 15,
	})); err != nil {
		return nil, err
	}

	p.Log.Info("database opened", zap.String("path", p.Config.Database.Path))
	return gdb, nil
}
