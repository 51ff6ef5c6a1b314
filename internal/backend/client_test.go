package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/pkg/errors"

	"chainlens/internal/model"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func TestAPIKeyHeaderPlaceholderDefault(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-Key")
		writeJSON(w, model.Health{Status: "ok"})
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	_, err := c.Health(context.Background())
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, gotKey, qt.Equals, "anonymous")

	c = New(srv.URL, "secret")
	_, err = c.Health(context.Background())
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, gotKey, qt.Equals, "secret")
}

func TestLatestBlockRouteAndDecode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		qt.Assert(t, r.URL.Path, qt.Equals, "/blocks/latest")
		qt.Assert(t, r.URL.Query().Get("chain"), qt.Equals, "eth")
		writeJSON(w, model.Block{
			Chain:  model.ChainEthereum,
			Height: 19000000,
			Hash:   "0xabc",
			Status: model.BlockFinalized,
		})
	}))
	defer srv.Close()

	b, err := New(srv.URL, "k").LatestBlock(context.Background(), model.ChainEthereum)
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, b.Height, qt.Equals, int64(19000000))
	qt.Assert(t, b.Status, qt.Equals, model.BlockFinalized)
}

func TestNotFoundMapsToErrNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := New(srv.URL, "k").Tx(context.Background(), model.ChainBitcoin, "deadbeef")
	qt.Assert(t, errors.Is(err, ErrNotFound), qt.IsTrue)
}

func TestAddressTxsCursorRoundTrip(t *testing.T) {
	// Two-page dataset: the cursor the first page returns must come back
	// verbatim, and the pages must not overlap.
	page1 := []model.Transaction{{TxHash: "t1"}, {TxHash: "t2"}}
	page2 := []model.Transaction{{TxHash: "t3"}}

	var gotCursors []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		qt.Assert(t, r.URL.Path, qt.Equals, "/address/btc/bc1qxyz/txs")
		cursor := r.URL.Query().Get("cursor")
		gotCursors = append(gotCursors, cursor)
		if cursor == "" {
			writeJSON(w, map[string]any{"data": page1, "cursor": "op@que:2"})
			return
		}
		qt.Assert(t, cursor, qt.Equals, "op@que:2")
		writeJSON(w, map[string]any{"data": page2})
	}))
	defer srv.Close()

	c := New(srv.URL, "k")
	ctx := context.Background()

	first, err := c.AddressTxs(ctx, model.ChainBitcoin, "bc1qxyz", "", 2)
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, len(first.Items), qt.Equals, 2)
	qt.Assert(t, first.Last(), qt.IsFalse)

	second, err := c.AddressTxs(ctx, model.ChainBitcoin, "bc1qxyz", first.NextCursor, 2)
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, second.Last(), qt.IsTrue)

	seen := map[string]bool{}
	for _, tx := range first.Items {
		seen[tx.TxHash] = true
	}
	for _, tx := range second.Items {
		qt.Assert(t, seen[tx.TxHash], qt.IsFalse, qt.Commentf("tx %s duplicated across pages", tx.TxHash))
	}
	qt.Assert(t, gotCursors, qt.DeepEquals, []string{"", "op@que:2"})
}

func TestBlockTxsPageEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		qt.Assert(t, r.URL.Path, qt.Equals, "/blocks/eth/0xabc/txs")
		qt.Assert(t, r.URL.Query().Get("limit"), qt.Equals, "10")
		writeJSON(w, map[string]any{
			"block": model.Block{Chain: model.ChainEthereum, Height: 12},
			"page":  map[string]any{"next_cursor": "c2", "limit": 10},
			"transactions": []model.Transaction{
				{TxHash: "0x1", Value: "123456789012345678901"},
			},
		})
	}))
	defer srv.Close()

	page, err := New(srv.URL, "k").BlockTxs(context.Background(), model.ChainEthereum, "0xabc", "", 10)
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, page.NextCursor, qt.Equals, "c2")
	// Full-precision value survives as a string.
	qt.Assert(t, page.Items[0].Value, qt.Equals, "123456789012345678901")
}

func TestSearchDecodesTaggedUnion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		qt.Assert(t, r.URL.Path, qt.Equals, "/search")
		qt.Assert(t, r.URL.Query().Get("q"), qt.Equals, "800000")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"type":"block","data":{"chain":"btc","height":800000}}`))
	}))
	defer srv.Close()

	res, err := New(srv.URL, "k").Search(context.Background(), "800000")
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, res.Type, qt.Equals, model.SearchBlock)
	qt.Assert(t, res.Block.Height, qt.Equals, int64(800000))
}

func TestBlockRangeAndBalanceRoutes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/blocks/btc/range":
			qt.Assert(t, r.URL.Query().Get("from"), qt.Equals, "100")
			qt.Assert(t, r.URL.Query().Get("to"), qt.Equals, "102")
			writeJSON(w, []model.BlockSummary{{Height: 100}, {Height: 101}, {Height: 102}})
		case "/balance/btc/bc1qxyz":
			writeJSON(w, model.Balance{Chain: model.ChainBitcoin, Address: "bc1qxyz", Balance: "2100000000000000"})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, "k")
	ctx := context.Background()

	blocks, err := c.BlockRange(ctx, model.ChainBitcoin, 100, 102)
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, len(blocks), qt.Equals, 3)

	bal, err := c.Balance(ctx, model.ChainBitcoin, "bc1qxyz")
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, bal.Balance, qt.Equals, "2100000000000000")
}

func TestEventsRejectsBitcoin(t *testing.T) {
	_, err := New("http://unused", "k").Events(context.Background(), EventQuery{Chain: model.ChainBitcoin})
	qt.Assert(t, err, qt.IsNotNil)
}

func TestQueryCacheStaleness(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		writeJSON(w, model.NetworkStats{Chain: model.ChainBitcoin, LatestHeight: int64(hits)})
	}))
	defer srv.Close()

	c := New(srv.URL, "k", WithCache(8, time.Minute))
	now := time.Unix(1000, 0)
	c.cache.now = func() time.Time { return now }

	ctx := context.Background()
	first, err := c.Stats(ctx, model.ChainBitcoin)
	qt.Assert(t, err, qt.IsNil)

	// Within the staleness window the cached copy is served.
	cached, err := c.Stats(ctx, model.ChainBitcoin)
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, cached, qt.DeepEquals, first)
	qt.Assert(t, hits, qt.Equals, 1)

	// Past the window the entry is refetched.
	now = now.Add(2 * time.Minute)
	refreshed, err := c.Stats(ctx, model.ChainBitcoin)
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, refreshed.LatestHeight, qt.Equals, int64(2))
	qt.Assert(t, hits, qt.Equals, 2)
}
