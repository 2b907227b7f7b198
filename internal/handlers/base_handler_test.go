package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"finvest_backend/internal/validator"
	"finvest_backend/pkg/contextkeys"
)

func TestGetAndAuthorizeUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	base := NewBaseHandler(validator.New())

	t.Run("missing user in context", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/user/details", nil)

		_, ok := base.GetAndAuthorizeUserID(c)
		assert.False(t, ok)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "User not authenticated")
	})

	t.Run("authenticated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/user/details", nil)
		c.Set(contextkeys.UserIDKey, "user-123")

		id, ok := base.GetAndAuthorizeUserID(c)
		assert.True(t, ok)
		assert.Equal(t, "user-123", id)
	})
}
