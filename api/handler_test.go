package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Augusto-Mathias/analise-sinais-trading/internal/config"
	"github.com/Augusto-Mathias/analise-sinais-trading/internal/model"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		InitialCapital: 500,
		DefaultPayout:  0.85,
		StakeLadder:    []float64{2.0, 4.3, 9.24},
		SafetyMultiple: 5,
	}
	h := NewHandler(cfg, nil, zap.NewNop())

	r := gin.New()
	r.POST("/api/v1/analyze", h.Analyze)
	return r
}

func decimalFromString(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(s)
}

func postAnalyze(t *testing.T, router *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAnalyze(t *testing.T) {
	router := testRouter()

	w := postAnalyze(t, router, gin.H{
		"messages": []gin.H{
			{"text": "bom dia"},
			{"text": "Ativo: EURUSD-OTC\nHorário: 14:05:00\nPayout: 87%"},
			{"text": "✅¹ EURUSD-OTC - 14:05:00 - M1 - call - WIN", "date": "2023-12-25"},
			{"text": "❌² GBPUSD - 15:00:00 - M1 - put - LOSS", "date": "2023-12-25"},
		},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.Records, 2)
	assert.Equal(t, "EURUSD-OTC", resp.Records[0].Pair)
	assert.Equal(t, 1, resp.Records[0].GaleLevel)
	assert.Equal(t, model.ResultLoss, resp.Records[1].Result)

	assert.Equal(t, 2, resp.Summary.TotalOps)
	assert.InDelta(t, 50.0, resp.Summary.WinRate, 1e-9)

	assert.True(t, resp.Risk.InitialCapital.Equal(decimalFromString(t, "500")))
	// WIN with payout 0.87 then a full-ladder LOSS: 500 + 1.74 - 15.54.
	assert.True(t, resp.Risk.FinalBalance.Equal(decimalFromString(t, "486.2")),
		"final balance = %s", resp.Risk.FinalBalance)

	assert.Equal(t, resp.Summary.WinRate, resp.Executive.WinRate)
}

func TestAnalyze_DateFilter(t *testing.T) {
	router := testRouter()

	w := postAnalyze(t, router, gin.H{
		"from": "2023-12-25",
		"to":   "2023-12-25",
		"messages": []gin.H{
			{"text": "✅ EURUSD - 10:00:00 - M1 - call - WIN", "date": "2023-12-24"},
			{"text": "✅ EURUSD - 11:00:00 - M1 - call - WIN", "date": "2023-12-25"},
			{"text": "✅ EURUSD - 12:00:00 - M1 - call - WIN"},
		},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Records, 1)
	assert.Equal(t, "11:00:00", resp.Records[0].Time)
}

func TestAnalyze_Overrides(t *testing.T) {
	router := testRouter()

	w := postAnalyze(t, router, gin.H{
		"initial_capital": 1000,
		"default_payout":  0.9,
		"stake_ladder":    []float64{10},
		"messages": []gin.H{
			{"text": "✅ EURUSD - 10:00:00 - M1 - call - WIN"},
		},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Risk.FinalBalance.Equal(decimalFromString(t, "1009")),
		"final balance = %s", resp.Risk.FinalBalance)
}

func TestAnalyze_BadRequests(t *testing.T) {
	router := testRouter()

	w := postAnalyze(t, router, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postAnalyze(t, router, gin.H{
		"from":     "not-a-date",
		"messages": []gin.H{{"text": "x"}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyze_EmptyExtraction(t *testing.T) {
	router := testRouter()

	w := postAnalyze(t, router, gin.H{
		"messages": []gin.H{{"text": "nenhum sinal aqui"}},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Records)
	assert.Equal(t, model.TierNoData, resp.Summary.Trend)
	assert.True(t, resp.Risk.FinalBalance.Equal(decimalFromString(t, "500")))
}
