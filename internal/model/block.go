package model

import "time"

const (
	BlockPending   BlockStatus = "pending"
	BlockFinalized BlockStatus = "finalized"
	BlockOrphaned  BlockStatus = "orphaned"
)

type (
	// BlockStatus tracks where the indexer places a block relative to
	// finality. Orphaned blocks have been superseded by a reorg.
	BlockStatus string

	Block struct {
		Chain      Chain       `json:"chain"`
		Height     int64       `json:"height"`
		Hash       string      `json:"hash"`
		ParentHash string      `json:"parent_hash"`
		Timestamp  int64       `json:"timestamp"`
		Status     BlockStatus `json:"status"`
		TxCount    int         `json:"tx_count"`
		RawData    []byte      `json:"raw_data,omitempty"`
	}

	// BlockSummary is the trimmed shape returned by the range endpoint.
	BlockSummary struct {
		Chain     Chain  `json:"chain"`
		Height    int64  `json:"height"`
		Hash      string `json:"hash"`
		Timestamp int64  `json:"timestamp"`
		TxCount   int    `json:"tx_count"`
	}
)

func (b Block) FeedTime() time.Time { return time.Unix(b.Timestamp, 0) }
