//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"fuel-station/internal/handler/httperr"
	"fuel-station/internal/handler/middleware"
	"fuel-station/internal/pkg/errs"
	"fuel-station/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("AbortWithError records the error and renders the public body", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.ErrorHandler())

		var recorded int
		router.POST("/fuel-types", func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusConflict, errs.New("duplicate name"),
				"Fuel type with this name already exists", nil)
			recorded = len(c.Errors)
		})

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/fuel-types", nil)

		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "already exists")
		assert.Equal(t, 1, recorded, "original error must stay on the context for the request log")
	})

	t.Run("renders the newest public Meta when the handler did not write", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.ErrorHandler())

		router.GET("/deferred", func(c *gin.Context) {
			resp := httperr.Response{Status: http.StatusNotFound}
			resp.Error.Message = "Fuel type not found"
			_ = c.Error(gin.Error{
				Err:  errs.New("no such row"),
				Type: gin.ErrorTypePublic,
				Meta: resp,
			})
		})

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/deferred", nil)
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "not found")
	})

	t.Run("falls back to a generic 500 body for private errors", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.ErrorHandler())

		router.GET("/bare", func(c *gin.Context) {
			_ = c.Error(errs.New("unclassified failure"))
		})

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/bare", nil)
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})
}
