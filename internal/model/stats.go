package model

type (
	Health struct {
		Status string `json:"status"`
		Uptime int64  `json:"uptime"`
	}

	NetworkStats struct {
		Chain          Chain  `json:"chain"`
		LatestHeight   int64  `json:"latest_height"`
		FinalizedAt    int64  `json:"finalized_height"`
		MempoolSize    int    `json:"mempool_size"`
		TxCount24h     int64  `json:"tx_count_24h"`
		AvgBlockTime   string `json:"avg_block_time"`
		HashRate       string `json:"hash_rate,omitempty"` // BTC only
		GasPriceGwei   string `json:"gas_price,omitempty"` // ETH only
		TotalSupplyRaw string `json:"total_supply,omitempty"`
	}

	Balance struct {
		Chain   Chain  `json:"chain"`
		Address string `json:"address"`
		Balance string `json:"balance"` // smallest denomination, integer string
	}

	// Event is a decoded contract log. ETH only.
	Event struct {
		Chain       Chain    `json:"chain"`
		BlockHeight int64    `json:"block_height"`
		TxHash      string   `json:"tx_hash"`
		LogIndex    int      `json:"log_index"`
		Address     string   `json:"address"`
		Topics      []string `json:"topics"`
		Data        string   `json:"data"`
	}
)
