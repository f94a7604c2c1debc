package storage

import (
	"context"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"go.uber.org/zap"

	"github.com/Augusto-Mathias/analise-sinais-trading/internal/infrastructure"
	"github.com/Augusto-Mathias/analise-sinais-trading/internal/model"
)

// Store persists analysis runs and their extracted records. It is
// optional: the app only constructs one when a DSN is configured.
type Store struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func New(pool *pgxpool.Pool, logger *zap.Logger) *Store {
	return &Store{pool: pool, logger: logger}
}

// SaveRun inserts the run header and returns its id.
func (s *Store) SaveRun(ctx context.Context, sum model.Summary, report model.RiskReport) (int64, error) {
	var id int64
	err := s.pool.QueryRow(ctx, `
		INSERT INTO analysis_runs
			(run_at, total_ops, wins, losses, dojis, win_rate,
			 final_balance, total_profit, max_drawdown, max_drawdown_pct, min_balance)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`,
		time.Now(), sum.TotalOps, sum.Wins, sum.Losses, sum.Dojis, sum.WinRate,
		report.FinalBalance.InexactFloat64(), report.TotalProfit.InexactFloat64(),
		report.MaxDrawdown.InexactFloat64(), report.MaxDrawdownPct,
		report.MinBalance.InexactFloat64()).Scan(&id)
	if err != nil {
		return 0, err
	}
	infrastructure.RunsPersisted.WithLabelValues("analysis_runs").Inc()
	return id, nil
}

// SaveRecords bulk-copies the extracted records for one run.
func (s *Store) SaveRecords(ctx context.Context, runID int64, records []model.TradeRecord) error {
	rows := make([][]interface{}, 0, len(records))
	for _, rec := range records {
		var payout interface{}
		if rec.Payout != nil {
			payout = *rec.Payout
		}
		var date interface{}
		if rec.Date != nil {
			date = *rec.Date
		}
		rows = append(rows, []interface{}{
			runID, rec.Pair, rec.Time, rec.Hour, rec.Timeframe,
			rec.Direction, string(rec.Result), rec.GaleLevel, payout, date,
		})
	}

	n, err := s.pool.CopyFrom(ctx,
		pgx.Identifier{"trade_records"},
		[]string{"run_id", "pair", "entry_time", "entry_hour", "timeframe", "direction", "result", "gale_level", "payout", "msg_date"},
		pgx.CopyFromRows(rows))
	if err != nil {
		return err
	}
	infrastructure.RunsPersisted.WithLabelValues("trade_records").Add(float64(n))
	s.logger.Info("persisted analysis run records", zap.Int64("run_id", runID), zap.Int64("rows", n))
	return nil
}
