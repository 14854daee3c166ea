package service

import (
	"math/rand"
	"time"

	"github.com/dkwon/shoplab-backend/config"
	"github.com/dkwon/shoplab-backend/internal/seed"
	"github.com/dkwon/shoplab-backend/pkg/logger"
	"gorm.io/gorm"
)

type SeedService interface {
	Run(customerCount, productScale int) (*seed.Summary, error)
}

type seedService struct {
	db  *gorm.DB
	cfg config.SeedConfig
}

func NewSeedService(db *gorm.DB, cfg config.SeedConfig) SeedService {
	return &seedService{db: db, cfg: cfg}
}

// Run seeds the dataset with a fresh orchestrator per invocation. A fixed
// SeedConfig.RandomSeed makes runs reproducible; zero falls back to the clock.
func (s *seedService) Run(customerCount, productScale int) (*seed.Summary, error) {
	randomSeed := s.cfg.RandomSeed
	if randomSeed == 0 {
		randomSeed = time.Now().UnixNano()
	}
	logger.Info("Starting seed run", map[string]interface{}{
		"customer_count": customerCount,
		"product_scale":  productScale,
		"random_seed":    randomSeed,
	})

	seeder := seed.NewSeeder(
		seed.NewRepositories(s.db),
		seed.Options{
			BatchSize:  s.cfg.BatchSize,
			CachePools: s.cfg.CachePools,
		},
		rand.New(rand.NewSource(randomSeed)),
	)
	return seeder.Run(customerCount, productScale)
}
