package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/vasavigrand/vgbilling/internal/observability"
)

type EngineParams struct {
	fx.In

	Log     *zap.Logger
	Metrics *observability.Metrics
}

func NewEngine(p EngineParams) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(
		RequestID(),
		RequestLogger(p.Log.Named("http")),
		RequestMetrics(p.Metrics),
		gin.Recovery(),
	)
	return engine
}
