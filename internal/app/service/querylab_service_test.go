package service

import (
	"math/rand"
	"testing"

	"github.com/dkwon/shoplab-backend/internal/app/model"
	"github.com/dkwon/shoplab-backend/internal/db"
	"github.com/dkwon/shoplab-backend/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupQuerylabTest seeds a small but fully linked dataset and wires the
// service over it, so both halves of every comparison read the same rows.
func setupQuerylabTest(t *testing.T) (*gorm.DB, QuerylabService) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	repos := seed.NewRepositories(testDB)
	seeder := seed.NewSeeder(repos, seed.Options{}, rand.New(rand.NewSource(7)))
	_, err = seeder.Run(20, 3)
	require.NoError(t, err)

	svc := NewQuerylabService(repos.Customers, repos.Products, repos.Orders)
	return testDB, svc
}

func TestQuerylabService_OrdersLazyAndEagerAgree(t *testing.T) {
	_, svc := setupQuerylabTest(t)

	lazy, err := svc.OrdersWithItemsLazy(10)
	require.NoError(t, err)
	eager, err := svc.OrdersWithItemsEager(10)
	require.NoError(t, err)

	// Same data, same row count; only the query count differs
	assert.Equal(t, lazy.Rows, eager.Rows)
	assert.Greater(t, lazy.Queries, eager.Queries)
	assert.Equal(t, 2, eager.Queries)
}

func TestQuerylabService_CustomerProjectionsAgree(t *testing.T) {
	testDB, svc := setupQuerylabTest(t)

	full, err := svc.CustomersFull()
	require.NoError(t, err)
	summaries, err := svc.CustomerSummaries(0)
	require.NoError(t, err)

	assert.Equal(t, full.Rows, summaries.Rows)

	var count int64
	testDB.Model(&model.Customer{}).Count(&count)
	assert.EqualValues(t, count, full.Rows)
}

func TestQuerylabService_CustomerSummariesLimit(t *testing.T) {
	_, svc := setupQuerylabTest(t)

	summaries, err := svc.CustomerSummaries(5)
	require.NoError(t, err)
	assert.Equal(t, 5, summaries.Rows)
}

func TestQuerylabService_ProductFiltersFindSeededRows(t *testing.T) {
	testDB, svc := setupQuerylabTest(t)

	var sample model.Product
	require.NoError(t, testDB.First(&sample).Error)

	scan, err := svc.ProductsByNameScan(sample.Name)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, scan.Rows, 1)

	indexed, err := svc.ProductsByNameIndexed(sample.Name, sample.Price-1, sample.Price+1)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, indexed.Rows, 1)
}

func TestQuerylabService_DashboardsAgree(t *testing.T) {
	testDB, svc := setupQuerylabTest(t)

	var customer model.Customer
	require.NoError(t, testDB.First(&customer).Error)

	mono, err := svc.DashboardMonolithic(customer.ID)
	require.NoError(t, err)
	split, err := svc.DashboardSplit(customer.ID)
	require.NoError(t, err)

	assert.Equal(t, mono.CustomerID, split.CustomerID)
	assert.Equal(t, mono.Addresses, split.Addresses)
	assert.Equal(t, mono.Orders, split.Orders)
	assert.Equal(t, mono.Reviews, split.Reviews)
	assert.Equal(t, 1, mono.Queries)
	assert.Equal(t, 4, split.Queries)
}

func TestQuerylabService_DashboardUnknownCustomer(t *testing.T) {
	_, svc := setupQuerylabTest(t)

	dashboard, err := svc.DashboardMonolithic(99999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, dashboard)

	dashboard, err = svc.DashboardSplit(99999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, dashboard)
}

func TestQuerylabService_ProductListingsAgree(t *testing.T) {
	_, svc := setupQuerylabTest(t)

	full, err := svc.ProductsFull(0)
	require.NoError(t, err)
	projected, err := svc.ProductsProjected(0)
	require.NoError(t, err)

	assert.Equal(t, full.Rows, projected.Rows)

	projected, err = svc.ProductsProjected(4)
	require.NoError(t, err)
	assert.Equal(t, 4, projected.Rows)
}
