package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	billdomain "github.com/vasavigrand/vgbilling/internal/bill/domain"
	"github.com/vasavigrand/vgbilling/internal/config"
	"github.com/vasavigrand/vgbilling/internal/observability"
)

type Params struct {
	fx.In

	Config   *config.Config
	Log      *zap.Logger
	Engine   *gin.Engine
	Metrics  *observability.Metrics
	DB       *gorm.DB
	BillSvc  billdomain.Service
	Renderer billdomain.Renderer
}

type Server struct {
	cfg      *config.Config
	log      *zap.Logger
	engine   *gin.Engine
	metrics  *observability.Metrics
	db       *gorm.DB
	billSvc  billdomain.Service
	renderer billdomain.Renderer
}

func NewServer(p Params) *Server {
	return &Server{
		cfg:      p.Config,
		log:      p.Log.Named("server"),
		engine:   p.Engine,
		metrics:  p.Metrics,
		db:       p.DB,
		billSvc:  p.BillSvc,
		renderer: p.Renderer,
	}
}

func (s *Server) RegisterRoutes() {
	s.engine.GET("/healthz", s.Healthz)
	s.engine.GET("/readyz", s.Readyz)
	s.engine.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	api := s.engine.Group("/api/v1")
	{
		api.POST("/billing/preview", s.PreviewBilling)

		api.POST("/bills", s.CreateBill)
		api.GET("/bills", s.ListBills)
		api.GET("/bills/:number", s.GetBill)
		api.GET("/bills/:number/pdf", s.GetBillPDF)

		api.POST("/admin/sequence/reset", s.ResetSequence)

		api.GET("/reference/bill-types", s.ListBillTypes)
		api.GET("/reference/hotel", s.GetHotelProfile)
	}
}
