package feed

import (
	"sync"

	"chainlens/internal/model"
)

// Aggregator holds the latest per-chain snapshots written by the pollers
// and recomputes the merged views on demand. Snapshots are replaced whole:
// there is no incremental state to corrupt when a chain lags or skips a
// tick.
type Aggregator struct {
	mu    sync.RWMutex
	limit int

	blocks  map[model.Chain][]model.Block
	txs     map[model.Chain][]model.Transaction
	mempool map[model.Chain][]model.Transaction
}

func NewAggregator(limit int) *Aggregator {
	return &Aggregator{
		limit:   limit,
		blocks:  make(map[model.Chain][]model.Block),
		txs:     make(map[model.Chain][]model.Transaction),
		mempool: make(map[model.Chain][]model.Transaction),
	}
}

func (a *Aggregator) SetBlocks(chain model.Chain, blocks []model.Block) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.blocks[chain] = blocks
}

func (a *Aggregator) SetTxs(chain model.Chain, txs []model.Transaction) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.txs[chain] = txs
}

func (a *Aggregator) SetMempool(chain model.Chain, txs []model.Transaction) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.mempool[chain] = txs
}

// Blocks returns the merged cross-chain block view, newest first.
func (a *Aggregator) Blocks() []model.Block {
	a.mu.RLock()
	streams := snapshots(a.blocks)
	a.mu.RUnlock()
	return Merge(streams, a.limit)
}

// Txs returns the merged cross-chain confirmed-transaction view.
func (a *Aggregator) Txs() []model.Transaction {
	a.mu.RLock()
	streams := snapshots(a.txs)
	a.mu.RUnlock()
	return Merge(streams, a.limit)
}

// Mempool returns the merged pending-transaction view.
func (a *Aggregator) Mempool() []model.Transaction {
	a.mu.RLock()
	streams := snapshots(a.mempool)
	a.mu.RUnlock()
	return Merge(streams, a.limit)
}

// snapshots flattens the per-chain map in a fixed chain order so that ties
// between chains break deterministically.
func snapshots[T any](m map[model.Chain][]T) [][]T {
	out := make([][]T, 0, len(m))
	for _, chain := range []model.Chain{model.ChainBitcoin, model.ChainEthereum} {
		if s, ok := m[chain]; ok {
			out = append(out, s)
		}
	}
	return out
}
