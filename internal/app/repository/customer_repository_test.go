package repository

import (
	"testing"
	"time"

	"github.com/dkwon/shoplab-backend/internal/app/model"
	"github.com/dkwon/shoplab-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCustomerRepoTest(t *testing.T) (*gorm.DB, CustomerRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})
	return testDB, NewCustomerRepository(testDB)
}

// seedCustomerFixture creates two customers: one with two orders, addresses
// and a review, one with nothing attached.
func seedCustomerFixture(t *testing.T, testDB *gorm.DB) (model.Customer, model.Customer) {
	t.Helper()

	busy := model.Customer{FirstName: "Ada", LastName: "Lovelace", Email: "ada.lovelace@example.com", CreditLimit: 5000}
	idle := model.Customer{FirstName: "Alan", LastName: "Turing", Email: "alan.turing@example.com", CreditLimit: 3000}
	require.NoError(t, testDB.Create(&busy).Error)
	require.NoError(t, testDB.Create(&idle).Error)

	category := model.Category{Name: "Gadgets", Slug: "gadgets"}
	require.NoError(t, testDB.Create(&category).Error)
	product := model.Product{Name: "Widget", SKU: "SKU-FIX00001", Price: 25, Cost: 10, CategoryID: category.ID, IsActive: true}
	require.NoError(t, testDB.Create(&product).Error)

	orders := []model.Order{
		{OrderNumber: "ORD-20240101-000001", CustomerID: busy.ID, OrderDate: time.Now().AddDate(0, -1, 0), Status: model.OrderStatusDelivered, TotalAmount: 50, Tax: 4, ShippingCost: 4.99},
		{OrderNumber: "ORD-20240201-000002", CustomerID: busy.ID, OrderDate: time.Now().AddDate(0, 0, -7), Status: model.OrderStatusPending, TotalAmount: 25, Tax: 2, ShippingCost: 0},
	}
	require.NoError(t, testDB.Create(&orders).Error)

	item := model.OrderItem{OrderID: orders[0].ID, ProductID: product.ID, Quantity: 2, UnitPrice: 25, Discount: 0, TotalPrice: 50}
	require.NoError(t, testDB.Create(&item).Error)

	addresses := []model.Address{
		{CustomerID: busy.ID, Street: "12 Analytical Way", City: "London", Country: "United Kingdom", Type: model.AddressTypeBoth, IsDefault: true},
		{CustomerID: busy.ID, Street: "7 Engine Court", City: "London", Country: "United Kingdom", Type: model.AddressTypeShipping},
	}
	require.NoError(t, testDB.Create(&addresses).Error)

	review := model.Review{ProductID: product.ID, CustomerID: busy.ID, Rating: 5, Title: "Great", Comment: "Works as advertised", IsVerifiedPurchase: true}
	require.NoError(t, testDB.Create(&review).Error)

	return busy, idle
}

func TestCustomerRepository_Summaries(t *testing.T) {
	testDB, repo := setupCustomerRepoTest(t)
	busy, idle := seedCustomerFixture(t, testDB)

	summaries, err := repo.Summaries(0)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	byID := make(map[uint]CustomerSummary, len(summaries))
	for _, s := range summaries {
		byID[s.ID] = s
	}

	assert.EqualValues(t, 2, byID[busy.ID].OrderCount)
	assert.Equal(t, "ada.lovelace@example.com", byID[busy.ID].Email)

	// LEFT JOIN keeps customers without orders in the result
	assert.EqualValues(t, 0, byID[idle.ID].OrderCount)
	assert.Equal(t, "Alan", byID[idle.ID].FirstName)
}

func TestCustomerRepository_SummariesLimit(t *testing.T) {
	testDB, repo := setupCustomerRepoTest(t)
	seedCustomerFixture(t, testDB)

	summaries, err := repo.Summaries(1)
	require.NoError(t, err)
	assert.Len(t, summaries, 1)
}

func TestCustomerRepository_FindWithAllCollections(t *testing.T) {
	testDB, repo := setupCustomerRepoTest(t)
	busy, _ := seedCustomerFixture(t, testDB)

	customer, err := repo.FindWithAllCollections(busy.ID)
	require.NoError(t, err)

	assert.Len(t, customer.Addresses, 2)
	assert.Len(t, customer.Reviews, 1)
	require.Len(t, customer.Orders, 2)

	var itemTotal int
	for _, o := range customer.Orders {
		itemTotal += len(o.Items)
	}
	assert.Equal(t, 1, itemTotal)
}

func TestCustomerRepository_FindWithAllCollections_NotFound(t *testing.T) {
	_, repo := setupCustomerRepoTest(t)

	customer, err := repo.FindWithAllCollections(9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, customer)
}

func TestCustomerRepository_SplitCollectionFinders(t *testing.T) {
	testDB, repo := setupCustomerRepoTest(t)
	busy, idle := seedCustomerFixture(t, testDB)

	customer, err := repo.FindByID(busy.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", customer.FirstName)

	addresses, err := repo.AddressesByCustomerID(busy.ID)
	require.NoError(t, err)
	assert.Len(t, addresses, 2)

	orders, err := repo.OrdersByCustomerID(busy.ID)
	require.NoError(t, err)
	assert.Len(t, orders, 2)

	reviews, err := repo.ReviewsByCustomerID(busy.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)

	orders, err = repo.OrdersByCustomerID(idle.ID)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCustomerRepository_BulkCreateAndIDs(t *testing.T) {
	_, repo := setupCustomerRepoTest(t)

	customers := []model.Customer{
		{FirstName: "Grace", LastName: "Hopper", Email: "grace.hopper@example.com", CreditLimit: 1000},
		{FirstName: "Edsger", LastName: "Dijkstra", Email: "edsger.dijkstra@example.com", CreditLimit: 1000},
		{FirstName: "Barbara", LastName: "Liskov", Email: "barbara.liskov@example.com", CreditLimit: 1000},
	}
	require.NoError(t, repo.BulkCreate(customers, 2))

	count, err := repo.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	ids, err := repo.IDs()
	require.NoError(t, err)
	assert.Len(t, ids, 3)
}
