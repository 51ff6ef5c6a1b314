package feed

import (
	"context"

	"go.uber.org/zap"

	"chainlens/internal/display"
	"chainlens/internal/model"
)

type (
	// Update is one recomputed merged view, published after a poller
	// applies a fresh snapshot.
	Update struct {
		Blocks  []model.Block
		Txs     []model.Transaction
		Mempool []model.Transaction
	}

	// Sink receives merged view updates. The UI render loop is the real
	// consumer; LogSink stands in for it in headless runs and tests.
	Sink interface {
		Publish(ctx context.Context, u *Update) error
	}
)

type LogSink struct {
	Log *zap.Logger
}

func (s *LogSink) Publish(_ context.Context, u *Update) error {
	fields := []zap.Field{
		zap.Int("blocks", len(u.Blocks)),
		zap.Int("txs", len(u.Txs)),
		zap.Int("mempool", len(u.Mempool)),
	}
	if len(u.Txs) > 0 {
		newest := u.Txs[0]
		fields = append(fields,
			zap.String("newest_tx", newest.TxHash),
			zap.String("newest_tx_value", display.Amount(newest.Value, newest.Chain)))
	}
	s.Log.Info("merged view updated", fields...)
	return nil
}
