package feed

import (
	"context"

	"go.uber.org/zap"

	"chainlens/internal/config"
	"chainlens/internal/model"
)

// Backend is the slice of the REST client the pipeline polls.
type Backend interface {
	BlockSource
	LatestBlock(ctx context.Context, chain model.Chain) (model.Block, error)
	LatestTxs(ctx context.Context, chain model.Chain, limit int) ([]model.Transaction, error)
	PendingTxs(ctx context.Context, chain model.Chain, limit int) ([]model.Transaction, error)
}

// Run starts three pollers per configured chain (block history, confirmed
// txs, mempool), each on its own interval, all writing into one aggregator.
// Every applied snapshot republishes the merged view to the sink. Returns
// after starting; pollers stop when ctx is cancelled.
func Run(ctx context.Context, cfg *config.AppConfig, client Backend, sink Sink, log *zap.Logger) *Aggregator {
	agg := NewAggregator(cfg.Feed.Limit)

	publish := func() {
		u := &Update{
			Blocks:  agg.Blocks(),
			Txs:     agg.Txs(),
			Mempool: agg.Mempool(),
		}
		if err := sink.Publish(ctx, u); err != nil {
			log.Warn("sink publish failed", zap.Error(err))
		}
	}

	for _, cc := range cfg.Chains {
		chain, err := model.ParseChain(cc.Chain)
		if err != nil {
			log.Warn("skipping chain", zap.String("chain", cc.Chain), zap.Error(err))
			continue
		}

		blockPoller := NewPoller(
			string(chain)+"/blocks",
			cc.BlockInterval.Std(),
			func(ctx context.Context) ([]model.Block, error) {
				latest, err := client.LatestBlock(ctx, chain)
				if err != nil {
					return nil, err
				}
				return RecentBlocks(ctx, client, chain, latest.Height, cfg.Feed.HistoryDepth, log), nil
			},
			func(blocks []model.Block) {
				agg.SetBlocks(chain, blocks)
				publish()
			},
			log,
		)
		go blockPoller.Run(ctx)

		txPoller := NewPoller(
			string(chain)+"/txs",
			cc.TxInterval.Std(),
			func(ctx context.Context) ([]model.Transaction, error) {
				return client.LatestTxs(ctx, chain, cfg.Feed.Limit)
			},
			func(txs []model.Transaction) {
				agg.SetTxs(chain, txs)
				publish()
			},
			log,
		)
		go txPoller.Run(ctx)

		mempoolPoller := NewPoller(
			string(chain)+"/mempool",
			cc.MempoolInterval.Std(),
			func(ctx context.Context) ([]model.Transaction, error) {
				return client.PendingTxs(ctx, chain, cfg.Feed.Limit)
			},
			func(txs []model.Transaction) {
				agg.SetMempool(chain, txs)
				publish()
			},
			log,
		)
		go mempoolPoller.Run(ctx)
	}

	return agg
}
