package model

import "time"

type (
	// Transaction is the chain-agnostic transaction record exposed by the
	// backend. Value and Fee are base-10 integer strings in the chain's
	// smallest denomination (satoshi/wei); they can exceed what a float64
	// or even an int64 can hold, so they stay strings end to end.
	Transaction struct {
		Chain       Chain  `json:"chain"`
		BlockHeight int64  `json:"block_height"`
		BlockHash   string `json:"block_hash"`
		TxHash      string `json:"tx_hash"`
		TxIndex     int    `json:"tx_index"`
		FromAddr    string `json:"from_addr"` // empty ⇒ coinbase / miner-issued
		ToAddr      string `json:"to_addr"`   // empty ⇒ contract creation
		Value       string `json:"value"`
		Fee         string `json:"fee"`
		GasUsed     uint64 `json:"gas_used,omitempty"` // ETH only
		Status      string `json:"status"`
		Timestamp   int64  `json:"timestamp"`
	}
)

func (t Transaction) FeedTime() time.Time { return time.Unix(t.Timestamp, 0) }

// Coinbase reports whether the transaction is a block reward (no sender).
func (t Transaction) Coinbase() bool { return t.FromAddr == "" }

// ContractCreation reports whether the transaction deploys a contract.
func (t Transaction) ContractCreation() bool {
	return t.Chain == ChainEthereum && t.ToAddr == ""
}
