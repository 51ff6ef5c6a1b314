package feed

import (
	"context"

	"go.uber.org/zap"

	"chainlens/internal/model"
)

// BlockSource fetches single blocks by height, one request per height.
type BlockSource interface {
	BlockByHeight(ctx context.Context, chain model.Chain, height int64) (model.Block, error)
}

// RecentBlocks builds a short per-chain history by walking back from the
// latest known height: latest, latest-1, ... One dependent fetch per
// offset; heights the backend has not indexed yet are skipped, so the
// window can be transiently shorter than depth instead of blocking on
// stragglers.
func RecentBlocks(ctx context.Context, src BlockSource, chain model.Chain, latest int64, depth int, log *zap.Logger) []model.Block {
	out := make([]model.Block, 0, depth)
	for i := 0; i < depth; i++ {
		height := latest - int64(i)
		if height < 0 {
			break
		}
		b, err := src.BlockByHeight(ctx, chain, height)
		if err != nil {
			log.Debug("history block missing",
				zap.String("chain", chain.String()),
				zap.Int64("height", height),
				zap.Error(err))
			continue
		}
		out = append(out, b)
	}
	return out
}
