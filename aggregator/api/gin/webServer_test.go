package gin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/feusd-io/hip3-oracles-go/aggregator"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cycleProviderStub struct {
	LastCycleCalled func() *aggregator.CycleResult
}

// LastCycle -
func (stub *cycleProviderStub) LastCycle() *aggregator.CycleResult {
	if stub.LastCycleCalled != nil {
		return stub.LastCycleCalled()
	}

	return nil
}

// IsInterfaceNil -
func (stub *cycleProviderStub) IsInterfaceNil() bool {
	return stub == nil
}

func createTestEngine(provider CycleProvider) (*gin.Engine, *webServer) {
	ws, _ := NewWebServerHandler("localhost:0", provider)

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/status", ws.statusHandler)
	engine.GET("/prices", ws.pricesHandler)

	return engine, ws
}

func TestNewWebServerHandler(t *testing.T) {
	t.Parallel()

	t.Run("nil cycle provider should error", func(t *testing.T) {
		t.Parallel()

		ws, err := NewWebServerHandler("localhost:8080", nil)
		assert.Nil(t, ws)
		assert.Equal(t, errNilCycleProvider, err)
	})
	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		ws, err := NewWebServerHandler("localhost:8080", &cycleProviderStub{})
		assert.NotNil(t, ws)
		assert.Nil(t, err)
		assert.Nil(t, ws.Close())
	})
}

func TestWebServer_statusHandler(t *testing.T) {
	t.Parallel()

	t.Run("no completed cycle reports starting", func(t *testing.T) {
		t.Parallel()

		engine, _ := createTestEngine(&cycleProviderStub{})

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/status", nil)
		engine.ServeHTTP(recorder, request)

		require.Equal(t, http.StatusOK, recorder.Code)

		body := map[string]interface{}{}
		require.Nil(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "starting", body["status"])
	})
	t.Run("completed cycle reports running with the cycle id", func(t *testing.T) {
		t.Parallel()

		provider := &cycleProviderStub{
			LastCycleCalled: func() *aggregator.CycleResult {
				return &aggregator.CycleResult{ID: "cycle-42", Timestamp: 1700000000}
			},
		}
		engine, _ := createTestEngine(provider)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/status", nil)
		engine.ServeHTTP(recorder, request)

		require.Equal(t, http.StatusOK, recorder.Code)

		body := map[string]interface{}{}
		require.Nil(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "running", body["status"])
		assert.Equal(t, "cycle-42", body["lastCycle"])
	})
}

func TestWebServer_pricesHandler(t *testing.T) {
	t.Parallel()

	t.Run("no completed cycle yields service unavailable", func(t *testing.T) {
		t.Parallel()

		engine, _ := createTestEngine(&cycleProviderStub{})

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/prices", nil)
		engine.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	})
	t.Run("completed cycle is returned as-is", func(t *testing.T) {
		t.Parallel()

		provider := &cycleProviderStub{
			LastCycleCalled: func() *aggregator.CycleResult {
				return &aggregator.CycleResult{
					ID:           "cycle-42",
					BaseSymbol:   "BTC",
					BaseUsdPrice: 65000,
					Pairs: []*aggregator.PairResult{
						{OracleKey: "BTC-FEUSD", Price: 65000, Source: aggregator.SourcePeg},
					},
				}
			},
		}
		engine, _ := createTestEngine(provider)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/prices", nil)
		engine.ServeHTTP(recorder, request)

		require.Equal(t, http.StatusOK, recorder.Code)

		cycle := aggregator.CycleResult{}
		require.Nil(t, json.Unmarshal(recorder.Body.Bytes(), &cycle))
		assert.Equal(t, "cycle-42", cycle.ID)
		require.Equal(t, 1, len(cycle.Pairs))
		assert.Equal(t, float64(65000), cycle.Pairs[0].Price)
	})
}
