package model

import (
	"encoding/json"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestSearchResultDecode(t *testing.T) {
	t.Run("tx", func(t *testing.T) {
		var r SearchResult
		err := json.Unmarshal([]byte(`{"type":"tx","data":{"chain":"eth","tx_hash":"0xfeed","value":"99"}}`), &r)
		qt.Assert(t, err, qt.IsNil)
		qt.Assert(t, r.Type, qt.Equals, SearchTx)
		qt.Assert(t, r.Tx.TxHash, qt.Equals, "0xfeed")
		qt.Assert(t, r.Block, qt.IsNil)
	})

	t.Run("address", func(t *testing.T) {
		var r SearchResult
		err := json.Unmarshal([]byte(`{"type":"address","data":{"chain":"btc","address":"bc1qxyz"}}`), &r)
		qt.Assert(t, err, qt.IsNil)
		qt.Assert(t, r.Address.Address, qt.Equals, "bc1qxyz")
	})

	t.Run("token list", func(t *testing.T) {
		var r SearchResult
		err := json.Unmarshal([]byte(`{"type":"token_list","data":[{"chain":"eth","address":"0xt","symbol":"TKN"}]}`), &r)
		qt.Assert(t, err, qt.IsNil)
		qt.Assert(t, len(r.Tokens), qt.Equals, 1)
		qt.Assert(t, r.Tokens[0].Symbol, qt.Equals, "TKN")
	})

	t.Run("unknown tag is an error, not a fallthrough", func(t *testing.T) {
		var r SearchResult
		err := json.Unmarshal([]byte(`{"type":"nft","data":{}}`), &r)
		qt.Assert(t, err, qt.IsNotNil)
	})
}

func TestTransactionSemantics(t *testing.T) {
	coinbase := Transaction{Chain: ChainBitcoin, FromAddr: "", ToAddr: "bc1q"}
	qt.Assert(t, coinbase.Coinbase(), qt.IsTrue)

	deploy := Transaction{Chain: ChainEthereum, FromAddr: "0xa", ToAddr: ""}
	qt.Assert(t, deploy.ContractCreation(), qt.IsTrue)

	// An empty BTC recipient is not a contract creation.
	odd := Transaction{Chain: ChainBitcoin, FromAddr: "x", ToAddr: ""}
	qt.Assert(t, odd.ContractCreation(), qt.IsFalse)
}

func TestParseChain(t *testing.T) {
	c, err := ParseChain("btc")
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, c, qt.Equals, ChainBitcoin)

	_, err = ParseChain("doge")
	qt.Assert(t, err, qt.IsNotNil)

	qt.Assert(t, ChainBitcoin.Other(), qt.Equals, ChainEthereum)
	qt.Assert(t, ChainEthereum.Other(), qt.Equals, ChainBitcoin)
}
