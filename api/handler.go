package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Augusto-Mathias/analise-sinais-trading/internal/analytics"
	"github.com/Augusto-Mathias/analise-sinais-trading/internal/config"
	"github.com/Augusto-Mathias/analise-sinais-trading/internal/infrastructure"
	"github.com/Augusto-Mathias/analise-sinais-trading/internal/model"
	"github.com/Augusto-Mathias/analise-sinais-trading/internal/parser"
	"github.com/Augusto-Mathias/analise-sinais-trading/internal/risk"
	"github.com/Augusto-Mathias/analise-sinais-trading/internal/storage"
)

type Handler struct {
	cfg    config.Config
	store  *storage.Store // nil when persistence is disabled
	logger *zap.Logger
}

func NewHandler(cfg config.Config, store *storage.Store, logger *zap.Logger) *Handler {
	return &Handler{
		cfg:    cfg,
		store:  store,
		logger: logger,
	}
}

// AnalyzeRequest is a chat export plus optional overrides. From/To filter
// messages by date (dd-mm bounds are inclusive); records outside the
// range, or without a parseable date in a filtered run, are dropped.
type AnalyzeRequest struct {
	Messages []map[string]any `json:"messages" binding:"required"`

	From string `json:"from,omitempty"` // "2006-01-02"
	To   string `json:"to,omitempty"`

	InitialCapital *float64  `json:"initial_capital,omitempty"`
	DefaultPayout  *float64  `json:"default_payout,omitempty"`
	StakeLadder    []float64 `json:"stake_ladder,omitempty"`
}

type AnalyzeResponse struct {
	Records   []model.TradeRecord    `json:"records"`
	Summary   model.Summary          `json:"summary"`
	Risk      model.RiskReport       `json:"risk"`
	Executive model.ExecutiveSummary `json:"executive"`
}

func (h *Handler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := time.Now()
	defer func() {
		infrastructure.AnalysisLatency.Observe(time.Since(start).Seconds())
	}()

	messages := req.Messages
	if req.From != "" || req.To != "" {
		from, to, err := dateRange(req.From, req.To)
		if err != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": err})
			return
		}
		messages = parser.FilterByDate(messages, from, to)
	}

	records := parser.ExtractRecords(messages)

	capital := h.cfg.InitialCapital
	if req.InitialCapital != nil {
		capital = *req.InitialCapital
	}
	payout := h.cfg.DefaultPayout
	if req.DefaultPayout != nil {
		payout = *req.DefaultPayout
	}
	stakes := h.cfg.Stakes()
	if len(req.StakeLadder) > 0 {
		stakes = stakes[:0]
		for _, s := range req.StakeLadder {
			stakes = append(stakes, decimal.NewFromFloat(s))
		}
	}

	summary := analytics.Summarize(records, h.cfg.AnalyticsOptions())
	report := risk.Simulate(records, risk.Params{
		InitialCapital: decimal.NewFromFloat(capital),
		Stakes:         stakes,
		DefaultPayout:  payout,
		SafetyMultiple: h.cfg.SafetyMultiple,
	})
	executive := analytics.BuildExecutive(summary, report.TotalProfit, capital)

	if h.store != nil && len(records) > 0 {
		h.persist(c, summary, report, records)
	}

	infrastructure.AnalysisRuns.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, AnalyzeResponse{
		Records:   records,
		Summary:   summary,
		Risk:      report,
		Executive: executive,
	})
}

// persist is best-effort: a storage failure is logged, never surfaced to
// the caller.
func (h *Handler) persist(c *gin.Context, summary model.Summary, report model.RiskReport, records []model.TradeRecord) {
	ctx := c.Request.Context()
	runID, err := h.store.SaveRun(ctx, summary, report)
	if err != nil {
		h.logger.Error("failed to persist analysis run", zap.Error(err))
		return
	}
	if err := h.store.SaveRecords(ctx, runID, records); err != nil {
		h.logger.Error("failed to persist trade records", zap.Error(err), zap.Int64("run_id", runID))
	}
}

func dateRange(fromStr, toStr string) (from, to time.Time, errMsg string) {
	from = time.Time{}
	to = time.Date(9999, 12, 31, 0, 0, 0, 0, time.Local)

	if fromStr != "" {
		d, ok := parser.ParseDate(fromStr)
		if !ok {
			return from, to, "invalid 'from' date"
		}
		from = d
	}
	if toStr != "" {
		d, ok := parser.ParseDate(toStr)
		if !ok {
			return from, to, "invalid 'to' date"
		}
		to = d
	}
	return from, to, ""
}
