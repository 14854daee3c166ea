package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dkwon/shoplab-backend/config"
	"github.com/dkwon/shoplab-backend/internal/app/model"
	"github.com/dkwon/shoplab-backend/internal/app/service"
	"github.com/dkwon/shoplab-backend/internal/db"
	"github.com/dkwon/shoplab-backend/internal/seed"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupSeedControllerTest(t *testing.T) (*gorm.DB, *gin.Engine) {
	gin.SetMode(gin.TestMode)

	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	cfg := config.SeedConfig{BatchSize: 100, RandomSeed: 1}
	ctrl := NewSeedController(service.NewSeedService(testDB, cfg))

	router := gin.New()
	router.POST("/api/v1/seed", ctrl.Run)
	return testDB, router
}

func postSeed(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, "/api/v1/seed", bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSeedController_Run(t *testing.T) {
	testDB, router := setupSeedControllerTest(t)

	w := postSeed(t, router, `{"customer_count": 10, "product_scale": 2}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		Summary seed.Summary `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.False(t, response.Summary.Skipped)
	assert.Equal(t, 10, response.Summary.Customers)

	var count int64
	testDB.Model(&model.Customer{}).Count(&count)
	assert.EqualValues(t, 10, count)
}

func TestSeedController_RunSkipsWhenSeeded(t *testing.T) {
	_, router := setupSeedControllerTest(t)

	w := postSeed(t, router, `{"customer_count": 5, "product_scale": 2}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postSeed(t, router, `{"customer_count": 50, "product_scale": 2}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Summary seed.Summary `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Summary.Skipped)
	assert.EqualValues(t, 5, response.Summary.ExistingCustomers)
}

func TestSeedController_RunInvalidBody(t *testing.T) {
	_, router := setupSeedControllerTest(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "Malformed JSON", body: `{"customer_count": `},
		{name: "Negative customer count", body: `{"customer_count": -5, "product_scale": 2}`},
		{name: "Negative product scale", body: `{"customer_count": 5, "product_scale": -2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postSeed(t, router, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
