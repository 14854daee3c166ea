package seed

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/dkwon/shoplab-backend/internal/app/repository"
	"github.com/dkwon/shoplab-backend/pkg/logger"
	"gorm.io/gorm"
)

// ErrInvalidCount rejects negative scale parameters before any stage starts.
var ErrInvalidCount = errors.New("seed counts must not be negative")

// State is the orchestrator's lifecycle position.
type State string

const (
	StateNotStarted       State = "not_started"
	StateCheckingExisting State = "checking_existing"
	StateSeeding          State = "seeding"
	StateCompleted        State = "completed"
	StateFailed           State = "failed"
)

// Stage names one entity kind's generate-and-flush cycle. The order below is
// the fixed dependency order of the pipeline.
type Stage string

const (
	StageCategories Stage = "categories"
	StageProducts   Stage = "products"
	StageCustomers  Stage = "customers"
	StageAddresses  Stage = "addresses"
	StageOrders     Stage = "orders"
	StageOrderItems Stage = "order_items"
	StageReviews    Stage = "reviews"
)

// Dataset shape tuning. Counts not passed to Run derive from these.
const (
	mainCategoryCount         = 8
	subCategoryCount          = 12
	addressOwnerShare         = 0.7 // share of customers that get addresses at all
	maxAddressesPerCustomer   = 3
	ordersPerCustomer         = 3 // aggregate average, not a per-customer guarantee
	maxItemsPerOrder          = 7
	maxItemQuantity           = 5
	maxDiscount               = 0.2
	taxRate                   = 0.08
	shippedProbability        = 0.7
	activeProductShare        = 0.85
	reviewedProductShare      = 0.2 // share of active products that receive reviews at all
	minReviewsPerProduct      = 3
	maxReviewsPerProduct      = 7
	verifiedReviewProbability = 0.7
	orderHistoryDays          = 730
)

// Repositories bundles the storage surfaces the pipeline writes to and reads
// foreign-key pools back from.
type Repositories struct {
	Categories repository.CategoryRepository
	Products   repository.ProductRepository
	Customers  repository.CustomerRepository
	Addresses  repository.AddressRepository
	Orders     repository.OrderRepository
	OrderItems repository.OrderItemRepository
	Reviews    repository.ReviewRepository
}

// NewRepositories wires the full repository set over one database handle.
func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Categories: repository.NewCategoryRepository(db),
		Products:   repository.NewProductRepository(db),
		Customers:  repository.NewCustomerRepository(db),
		Addresses:  repository.NewAddressRepository(db),
		Orders:     repository.NewOrderRepository(db),
		OrderItems: repository.NewOrderItemRepository(db),
		Reviews:    repository.NewReviewRepository(db),
	}
}

// Options tune the pipeline's resource behavior.
type Options struct {
	// BatchSize is the flush threshold of the batch writers. Defaults to 10000.
	BatchSize int
	// CachePools carries foreign-key id pools in memory from stage to stage
	// instead of re-reading them from storage. Re-reading (the default) keeps
	// each stage's working set independent of prior stages' output size at the
	// cost of one projection query per dependency.
	CachePools bool
}

const defaultBatchSize = 10000

// Summary reports what a run did, per stage.
type Summary struct {
	Skipped           bool  `json:"skipped"`
	ExistingCustomers int64 `json:"existing_customers,omitempty"`
	Categories        int   `json:"categories"`
	Products          int   `json:"products"`
	Customers         int   `json:"customers"`
	Addresses         int   `json:"addresses"`
	Orders            int   `json:"orders"`
	OrderItems        int   `json:"order_items"`
	Reviews           int   `json:"reviews"`
}

// Seeder populates the relational schema with an internally consistent
// synthetic dataset. Stages run strictly in dependency order; a failed stage
// aborts the run and earlier batches stay committed (there is no rollback, so
// recovering from a partial run requires resetting the store first).
type Seeder struct {
	repos      Repositories
	faker      *Faker
	batchSize  int
	cachePools bool

	state        State
	currentStage Stage
}

// NewSeeder builds a seeder around an injected random source; runs with the
// same seed and counts produce identical datasets.
func NewSeeder(repos Repositories, opts Options, rng *rand.Rand) *Seeder {
	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &Seeder{
		repos:      repos,
		faker:      NewFaker(rng),
		batchSize:  batchSize,
		cachePools: opts.CachePools,
		state:      StateNotStarted,
	}
}

// State reports the orchestrator's current lifecycle position.
func (s *Seeder) State() State {
	return s.state
}

// Run seeds the whole schema: categories, products, customers, addresses,
// orders, order items, reviews. It is idempotent at the run level: when any
// customer already exists the run is skipped entirely. customerCount is
// exact; every other row count derives from cardinality rules.
func (s *Seeder) Run(customerCount, productScale int) (*Summary, error) {
	if customerCount < 0 || productScale < 0 {
		return nil, fmt.Errorf("%w: customers=%d, product scale=%d", ErrInvalidCount, customerCount, productScale)
	}

	s.state = StateCheckingExisting
	existing, err := s.repos.Customers.Count()
	if err != nil {
		s.state = StateFailed
		return nil, fmt.Errorf("idempotency check failed: %w", err)
	}
	if existing > 0 {
		logger.Info("Data already seeded, skipping", map[string]interface{}{
			"existing_customers": existing,
		})
		s.state = StateCompleted
		return &Summary{Skipped: true, ExistingCustomers: existing}, nil
	}

	logger.Info("Seeding dataset", map[string]interface{}{
		"customer_count": customerCount,
		"product_scale":  productScale,
		"batch_size":     s.batchSize,
		"cache_pools":    s.cachePools,
	})

	s.state = StateSeeding
	summary := &Summary{}

	written, categoryIDs, err := s.seedCategories()
	summary.Categories = written
	if err != nil {
		return summary, s.fail(StageCategories, written, err)
	}
	s.logStage(StageCategories, written)

	if !s.cachePools || categoryIDs == nil {
		if categoryIDs, err = s.repos.Categories.IDs(); err != nil {
			return summary, s.fail(StageProducts, 0, err)
		}
	}

	written, productPool, err := s.seedProducts(productScale, categoryIDs)
	summary.Products = written
	if err != nil {
		return summary, s.fail(StageProducts, written, err)
	}
	s.logStage(StageProducts, written)

	written, customerIDs, err := s.seedCustomers(customerCount)
	summary.Customers = written
	if err != nil {
		return summary, s.fail(StageCustomers, written, err)
	}
	s.logStage(StageCustomers, written)

	if !s.cachePools || customerIDs == nil {
		if customerIDs, err = s.repos.Customers.IDs(); err != nil {
			return summary, s.fail(StageAddresses, 0, err)
		}
	}

	written, err = s.seedAddresses(customerIDs)
	summary.Addresses = written
	if err != nil {
		return summary, s.fail(StageAddresses, written, err)
	}
	s.logStage(StageAddresses, written)

	written, orderIDs, err := s.seedOrders(customerIDs)
	summary.Orders = written
	if err != nil {
		return summary, s.fail(StageOrders, written, err)
	}
	s.logStage(StageOrders, written)

	if !s.cachePools || orderIDs == nil {
		if orderIDs, err = s.repos.Orders.IDs(); err != nil {
			return summary, s.fail(StageOrderItems, 0, err)
		}
	}
	prices := productPool.prices
	if !s.cachePools || prices == nil {
		// One projection read for the whole stage; items never fetch their
		// product row individually.
		if prices, err = s.repos.Products.PriceList(); err != nil {
			return summary, s.fail(StageOrderItems, 0, err)
		}
	}

	written, err = s.seedOrderItems(orderIDs, prices)
	summary.OrderItems = written
	if err != nil {
		return summary, s.fail(StageOrderItems, written, err)
	}
	s.logStage(StageOrderItems, written)

	activeProductIDs := productPool.activeIDs
	if !s.cachePools || activeProductIDs == nil {
		if activeProductIDs, err = s.repos.Products.ActiveIDs(); err != nil {
			return summary, s.fail(StageReviews, 0, err)
		}
	}

	written, err = s.seedReviews(activeProductIDs, customerIDs)
	summary.Reviews = written
	if err != nil {
		return summary, s.fail(StageReviews, written, err)
	}
	s.logStage(StageReviews, written)

	s.state = StateCompleted
	logger.Info("Seeding completed", map[string]interface{}{
		"categories":  summary.Categories,
		"products":    summary.Products,
		"customers":   summary.Customers,
		"addresses":   summary.Addresses,
		"orders":      summary.Orders,
		"order_items": summary.OrderItems,
		"reviews":     summary.Reviews,
	})
	return summary, nil
}

func (s *Seeder) fail(stage Stage, rowsCompleted int, err error) error {
	s.state = StateFailed
	s.currentStage = stage
	logger.Error("Seed stage failed", err, map[string]interface{}{
		"stage":          stage,
		"rows_completed": rowsCompleted,
	})
	return fmt.Errorf("%s stage failed after %d rows: %w", stage, rowsCompleted, err)
}

func (s *Seeder) logStage(stage Stage, rows int) {
	s.currentStage = stage
	logger.Info("Seed stage completed", map[string]interface{}{
		"stage": stage,
		"rows":  rows,
	})
}
