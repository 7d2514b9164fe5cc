package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STRANDS_API_URL", "")
	t.Setenv("API_BASE_URL", "")

	cfg := Load()

	assert.Equal(t, ":8081", cfg.HTTPAddr)
	assert.Equal(t, "http://127.0.0.1:8000", cfg.AgentURL)
	assert.Equal(t, "order-events", cfg.OrderEventsTopic)
	assert.Equal(t, 24*time.Hour, cfg.IdempotencyTTL)
	assert.Equal(t, "5432", cfg.DB.Port)
	assert.False(t, cfg.DB.SSL)
}

func TestLoad_AgentURLPrecedence(t *testing.T) {
	tests := []struct {
		name    string
		strands string
		apiBase string
		want    string
	}{
		{name: "strands wins", strands: "http://agents:9000/", apiBase: "http://other:8000", want: "http://agents:9000"},
		{name: "api base fallback", apiBase: "http://other:8000", want: "http://other:8000"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Setenv("STRANDS_API_URL", testCase.strands)
			t.Setenv("API_BASE_URL", testCase.apiBase)

			assert.Equal(t, testCase.want, Load().AgentURL)
		})
	}
}

func TestLoad_Gateway(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("GATEWAY_ADDR", "")
		t.Setenv("KITCHEN_SVC_URL", "")
		t.Setenv("FRONTEND_DIR", "")

		gw := Load().Gateway

		assert.Equal(t, GatewayConfig{
			Addr:          ":8080",
			KitchenSvcURL: "http://localhost:8081",
			FrontendDir:   "./frontend",
		}, gw)
	})

	t.Run("from environment", func(t *testing.T) {
		t.Setenv("GATEWAY_ADDR", ":9090")
		t.Setenv("KITCHEN_SVC_URL", "http://kitchen-svc:8081/")
		t.Setenv("FRONTEND_DIR", "/srv/kds")

		gw := Load().Gateway

		assert.Equal(t, ":9090", gw.Addr)
		assert.Equal(t, "http://kitchen-svc:8081", gw.KitchenSvcURL)
		assert.Equal(t, "/srv/kds", gw.FrontendDir)
	})
}

func TestDBConfig_ConnString(t *testing.T) {
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_NAME", "kitchen")
	t.Setenv("DB_USER", "chef")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_SSL", "true")

	cfg := Load()

	assert.Equal(t, "host=db port=6543 user=chef password=secret dbname=kitchen sslmode=require", cfg.DB.ConnString())

	cfg.DB.SSL = false
	assert.Contains(t, cfg.DB.ConnString(), "sslmode=disable")
}

func TestNewLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	logger := NewLogger("chatty")
	assert.NotNil(t, logger)
	assert.False(t, logger.Core().Enabled(-1))
}
