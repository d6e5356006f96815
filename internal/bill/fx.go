package bill

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/vasavigrand/vgbilling/internal/bill/domain"
	"github.com/vasavigrand/vgbilling/internal/bill/render"
	"github.com/vasavigrand/vgbilling/internal/bill/repository"
	"github.com/vasavigrand/vgbilling/internal/bill/service"
	"github.com/vasavigrand/vgbilling/internal/config"
	"github.com/vasavigrand/vgbilling/internal/redis"
)

var Module = fx.Module("bill.service",
	fx.Provide(NewSequenceGenerator),
	fx.Provide(repository.NewMemoryStore),
	fx.Provide(render.NewPDFRenderer),
	fx.Provide(service.New),
)

type SequenceParams struct {
	fx.In

	Config *config.Config
	DB     *gorm.DB
}

// NewSequenceGenerator picks the counter backend from config. The redis
// client is only dialed when that backend is selected.
func NewSequenceGenerator(p SequenceParams) (domain.SequenceGenerator, error) {
	if p.Config.Sequence.Backend == config.BackendRedis {
		client, err := redis.NewClient(p.Config)
		if err != nil {
			return nil, err
		}
		return repository.NewRedisSequence(client, p.Config.Sequence.Key), nil
	}
	return repository.NewGormSequence(p.DB, p.Config.Sequence.Key), nil
}
