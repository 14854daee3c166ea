package service

import (
	"time"

	"github.com/dkwon/shoplab-backend/internal/app/repository"
	"github.com/dkwon/shoplab-backend/pkg/logger"
)

// QueryResult describes one query shape's outcome: how it fetched, how many
// rows came back, and how long it took. The paired endpoints exist to make
// the slow and fast shapes comparable on the same seeded data.
type QueryResult struct {
	Approach  string `json:"approach"`
	Rows      int    `json:"rows"`
	Queries   int    `json:"queries,omitempty"`
	ElapsedMs int64  `json:"elapsed_ms"`
}

// CustomerDashboard is the multi-collection load target: one customer plus
// every dependent collection.
type CustomerDashboard struct {
	CustomerID uint  `json:"customer_id"`
	Addresses  int   `json:"addresses"`
	Orders     int   `json:"orders"`
	Reviews    int   `json:"reviews"`
	ElapsedMs  int64 `json:"elapsed_ms"`
	Queries    int   `json:"queries"`
}

type QuerylabService interface {
	OrdersWithItemsLazy(limit int) (*QueryResult, error)
	OrdersWithItemsEager(limit int) (*QueryResult, error)
	CustomersFull() (*QueryResult, error)
	CustomerSummaries(limit int) (*QueryResult, error)
	ProductsByNameScan(fragment string) (*QueryResult, error)
	ProductsByNameIndexed(prefix string, minPrice, maxPrice float64) (*QueryResult, error)
	DashboardMonolithic(customerID uint) (*CustomerDashboard, error)
	DashboardSplit(customerID uint) (*CustomerDashboard, error)
	ProductsFull(limit int) (*QueryResult, error)
	ProductsProjected(limit int) (*QueryResult, error)
}

type querylabService struct {
	customers repository.CustomerRepository
	products  repository.ProductRepository
	orders    repository.OrderRepository
}

func NewQuerylabService(
	customers repository.CustomerRepository,
	products repository.ProductRepository,
	orders repository.OrderRepository,
) QuerylabService {
	return &querylabService{
		customers: customers,
		products:  products,
		orders:    orders,
	}
}

// OrdersWithItemsLazy issues one query for the orders and then one more per
// order for its items: the classic N+1 read.
func (s *querylabService) OrdersWithItemsLazy(limit int) (*QueryResult, error) {
	start := time.Now()

	orders, err := s.orders.FindRecent(limit)
	if err != nil {
		return nil, err
	}
	rows := len(orders)
	queries := 1
	for _, order := range orders {
		items, err := s.orders.ItemsByOrderID(order.ID)
		if err != nil {
			return nil, err
		}
		rows += len(items)
		queries++
	}

	return &QueryResult{
		Approach:  "lazy: one item query per order",
		Rows:      rows,
		Queries:   queries,
		ElapsedMs: time.Since(start).Milliseconds(),
	}, nil
}

// OrdersWithItemsEager loads the same data with a single eager load.
func (s *querylabService) OrdersWithItemsEager(limit int) (*QueryResult, error) {
	start := time.Now()

	orders, err := s.orders.FindRecentWithItems(limit)
	if err != nil {
		return nil, err
	}
	rows := len(orders)
	for _, order := range orders {
		rows += len(order.Items)
	}

	return &QueryResult{
		Approach:  "eager: preloaded items",
		Rows:      rows,
		Queries:   2,
		ElapsedMs: time.Since(start).Milliseconds(),
	}, nil
}

// CustomersFull materializes every customer column for a display that only
// needs names; the projected counterpart below reads just what it shows.
func (s *querylabService) CustomersFull() (*QueryResult, error) {
	start := time.Now()

	customers, err := s.customers.FindAll()
	if err != nil {
		return nil, err
	}

	return &QueryResult{
		Approach:  "full entities",
		Rows:      len(customers),
		ElapsedMs: time.Since(start).Milliseconds(),
	}, nil
}

func (s *querylabService) CustomerSummaries(limit int) (*QueryResult, error) {
	start := time.Now()

	summaries, err := s.customers.Summaries(limit)
	if err != nil {
		return nil, err
	}

	return &QueryResult{
		Approach:  "projected summaries with aggregated order counts",
		Rows:      len(summaries),
		ElapsedMs: time.Since(start).Milliseconds(),
	}, nil
}

func (s *querylabService) ProductsByNameScan(fragment string) (*QueryResult, error) {
	start := time.Now()

	products, err := s.products.FindByNameContains(fragment)
	if err != nil {
		return nil, err
	}

	return &QueryResult{
		Approach:  "non-sargable: LOWER() with leading wildcard",
		Rows:      len(products),
		ElapsedMs: time.Since(start).Milliseconds(),
	}, nil
}

func (s *querylabService) ProductsByNameIndexed(prefix string, minPrice, maxPrice float64) (*QueryResult, error) {
	start := time.Now()

	products, err := s.products.FindByNamePrefixInPriceRange(prefix, minPrice, maxPrice)
	if err != nil {
		return nil, err
	}

	return &QueryResult{
		Approach:  "sargable: prefix match and bounded price range",
		Rows:      len(products),
		ElapsedMs: time.Since(start).Milliseconds(),
	}, nil
}

// DashboardMonolithic loads the customer and all collections in one query
// tree; DashboardSplit issues one small query per collection instead.
func (s *querylabService) DashboardMonolithic(customerID uint) (*CustomerDashboard, error) {
	start := time.Now()

	customer, err := s.customers.FindWithAllCollections(customerID)
	if err != nil {
		return nil, err
	}

	return &CustomerDashboard{
		CustomerID: customer.ID,
		Addresses:  len(customer.Addresses),
		Orders:     len(customer.Orders),
		Reviews:    len(customer.Reviews),
		ElapsedMs:  time.Since(start).Milliseconds(),
		Queries:    1,
	}, nil
}

func (s *querylabService) DashboardSplit(customerID uint) (*CustomerDashboard, error) {
	start := time.Now()

	customer, err := s.customers.FindByID(customerID)
	if err != nil {
		return nil, err
	}
	addresses, err := s.customers.AddressesByCustomerID(customer.ID)
	if err != nil {
		return nil, err
	}
	orders, err := s.customers.OrdersByCustomerID(customer.ID)
	if err != nil {
		return nil, err
	}
	reviews, err := s.customers.ReviewsByCustomerID(customer.ID)
	if err != nil {
		return nil, err
	}

	logger.Debug("Dashboard collections loaded separately", map[string]interface{}{
		"customer_id": customer.ID,
		"addresses":   len(addresses),
		"orders":      len(orders),
		"reviews":     len(reviews),
	})

	return &CustomerDashboard{
		CustomerID: customer.ID,
		Addresses:  len(addresses),
		Orders:     len(orders),
		Reviews:    len(reviews),
		ElapsedMs:  time.Since(start).Milliseconds(),
		Queries:    4,
	}, nil
}

func (s *querylabService) ProductsFull(limit int) (*QueryResult, error) {
	start := time.Now()

	products, err := s.products.FindAll()
	if err != nil {
		return nil, err
	}
	rows := len(products)
	if limit > 0 && rows > limit {
		rows = limit
	}

	return &QueryResult{
		Approach:  "full entities including description text",
		Rows:      rows,
		ElapsedMs: time.Since(start).Milliseconds(),
	}, nil
}

func (s *querylabService) ProductsProjected(limit int) (*QueryResult, error) {
	start := time.Now()

	listings, err := s.products.ListProjected(limit)
	if err != nil {
		return nil, err
	}

	return &QueryResult{
		Approach:  "projected listing columns",
		Rows:      len(listings),
		ElapsedMs: time.Since(start).Milliseconds(),
	}, nil
}
