package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dkwon/shoplab-backend/config"
	"github.com/dkwon/shoplab-backend/internal/app/controller"
	"github.com/dkwon/shoplab-backend/internal/app/model"
	"github.com/dkwon/shoplab-backend/internal/app/service"
	"github.com/dkwon/shoplab-backend/internal/db"
	"github.com/dkwon/shoplab-backend/internal/seed"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type TestServer struct {
	Router *gin.Engine
	DB     *gorm.DB
}

func setupIntegrationTest(t *testing.T) *TestServer {
	gin.SetMode(gin.TestMode)

	// Setup database
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	// Setup repositories
	repos := seed.NewRepositories(testDB)

	// Setup services
	seedService := service.NewSeedService(testDB, config.SeedConfig{
		BatchSize:  500,
		RandomSeed: 1,
	})
	querylabService := service.NewQuerylabService(repos.Customers, repos.Products, repos.Orders)

	// Setup controllers
	seedController := controller.NewSeedController(seedService)
	querylabController := controller.NewQuerylabController(querylabService)

	// Setup router
	router := gin.New()

	v1 := router.Group("/api/v1")
	{
		v1.POST("/seed", seedController.Run)

		querylab := v1.Group("/querylab")
		{
			querylab.GET("/orders/lazy", querylabController.OrdersLazy)
			querylab.GET("/orders/eager", querylabController.OrdersEager)
			querylab.GET("/customers/full", querylabController.CustomersFull)
			querylab.GET("/customers/summaries", querylabController.CustomersSummaries)
			querylab.GET("/customers/:id/dashboard/monolithic", querylabController.DashboardMonolithic)
			querylab.GET("/customers/:id/dashboard/split", querylabController.DashboardSplit)
			querylab.GET("/products/scan", querylabController.ProductsScan)
			querylab.GET("/products/indexed", querylabController.ProductsIndexed)
			querylab.GET("/products/full", querylabController.ProductsFull)
			querylab.GET("/products/projected", querylabController.ProductsProjected)
		}
	}

	return &TestServer{
		Router: router,
		DB:     testDB,
	}
}

func (ts *TestServer) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)
	return w
}

func TestSeedAndQueryJourney(t *testing.T) {
	ts := setupIntegrationTest(t)
	defer db.CleanupTestDB(ts.DB)

	// 1. Seed the dataset
	t.Log("Step 1: Seed the dataset")
	body, _ := json.Marshal(map[string]int{
		"customer_count": 25,
		"product_scale":  3,
	})
	req, err := http.NewRequest(http.MethodPost, "/api/v1/seed", bytes.NewBuffer(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var seedResponse struct {
		Summary seed.Summary `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &seedResponse))
	assert.Equal(t, 25, seedResponse.Summary.Customers)
	assert.Greater(t, seedResponse.Summary.Orders, 0)

	// 2. Both order shapes read the same rows
	t.Log("Step 2: Compare lazy and eager order loads")
	lazyRec := ts.get(t, "/api/v1/querylab/orders/lazy?limit=10")
	require.Equal(t, http.StatusOK, lazyRec.Code)
	eagerRec := ts.get(t, "/api/v1/querylab/orders/eager?limit=10")
	require.Equal(t, http.StatusOK, eagerRec.Code)

	var lazy, eager service.QueryResult
	require.NoError(t, json.Unmarshal(lazyRec.Body.Bytes(), &lazy))
	require.NoError(t, json.Unmarshal(eagerRec.Body.Bytes(), &eager))
	assert.Equal(t, lazy.Rows, eager.Rows)
	assert.Greater(t, lazy.Queries, eager.Queries)

	// 3. Customer projections agree on the row count
	t.Log("Step 3: Compare customer projections")
	fullRec := ts.get(t, "/api/v1/querylab/customers/full")
	require.Equal(t, http.StatusOK, fullRec.Code)
	summariesRec := ts.get(t, "/api/v1/querylab/customers/summaries?limit=0")
	require.Equal(t, http.StatusOK, summariesRec.Code)

	var full, summaries service.QueryResult
	require.NoError(t, json.Unmarshal(fullRec.Body.Bytes(), &full))
	require.NoError(t, json.Unmarshal(summariesRec.Body.Bytes(), &summaries))
	assert.Equal(t, 25, full.Rows)
	assert.Equal(t, full.Rows, summaries.Rows)

	// 4. Both dashboard shapes agree for a seeded customer
	t.Log("Step 4: Compare dashboard loads")
	var customer model.Customer
	require.NoError(t, ts.DB.First(&customer).Error)

	monoRec := ts.get(t, fmt.Sprintf("/api/v1/querylab/customers/%d/dashboard/monolithic", customer.ID))
	require.Equal(t, http.StatusOK, monoRec.Code)
	splitRec := ts.get(t, fmt.Sprintf("/api/v1/querylab/customers/%d/dashboard/split", customer.ID))
	require.Equal(t, http.StatusOK, splitRec.Code)

	var mono, split service.CustomerDashboard
	require.NoError(t, json.Unmarshal(monoRec.Body.Bytes(), &mono))
	require.NoError(t, json.Unmarshal(splitRec.Body.Bytes(), &split))
	assert.Equal(t, mono.Orders, split.Orders)
	assert.Equal(t, mono.Addresses, split.Addresses)
	assert.Equal(t, mono.Reviews, split.Reviews)

	// 5. Product listings agree between full and projected reads
	t.Log("Step 5: Compare product listings")
	productsFullRec := ts.get(t, "/api/v1/querylab/products/full?limit=0")
	require.Equal(t, http.StatusOK, productsFullRec.Code)
	projectedRec := ts.get(t, "/api/v1/querylab/products/projected?limit=0")
	require.Equal(t, http.StatusOK, projectedRec.Code)

	var productsFull, projected service.QueryResult
	require.NoError(t, json.Unmarshal(productsFullRec.Body.Bytes(), &productsFull))
	require.NoError(t, json.Unmarshal(projectedRec.Body.Bytes(), &projected))
	assert.Equal(t, productsFull.Rows, projected.Rows)

	// 6. Re-seeding is a no-op
	t.Log("Step 6: Verify re-seeding skips")
	req, err = http.NewRequest(http.MethodPost, "/api/v1/seed", bytes.NewBuffer(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &seedResponse))
	assert.True(t, seedResponse.Summary.Skipped)
}

func TestDashboardUnknownCustomerReturns404(t *testing.T) {
	ts := setupIntegrationTest(t)
	defer db.CleanupTestDB(ts.DB)

	w := ts.get(t, "/api/v1/querylab/customers/99999/dashboard/monolithic")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.get(t, "/api/v1/querylab/customers/abc/dashboard/split")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
