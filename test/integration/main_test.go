package integration_test

import (
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"finvest_backend/internal/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	os.Exit(m.Run())
}
