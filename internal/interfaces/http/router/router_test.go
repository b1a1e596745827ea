package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithAPIVersion("v1"))

	catalog := NewDomainGroup("catalog", "/catalog")
	catalog.GET("/products", func(c *gin.Context) {
		c.String(http.StatusOK, "products")
	})

	r.Register(catalog)
	r.Setup()

	req := httptest.NewRequest("GET", "/api/v1/catalog/products", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "products", rec.Body.String())
}

func TestRouterMiddlewareAppliesToAPIGroup(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	r.Use(func(c *gin.Context) {
		c.Header("X-Tagged", "yes")
		c.Next()
	})

	trade := NewDomainGroup("trade", "/trade")
	trade.GET("/orders", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	r.Register(trade)
	r.Setup()

	req := httptest.NewRequest("GET", "/api/v1/trade/orders", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "yes", rec.Header().Get("X-Tagged"))
}

func TestDomainGroupSubgroups(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	reports := NewDomainGroup("reports", "/reports")
	sales := reports.Group("sales", "/sales")
	sales.GET("/daily", func(c *gin.Context) {
		c.String(http.StatusOK, "daily")
	})

	r.Register(reports)
	r.Setup()

	req := httptest.NewRequest("GET", "/api/v1/reports/sales/daily", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "daily", rec.Body.String())
}
