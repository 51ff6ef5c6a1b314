// Package backend is the typed client for the explorer REST API. It is
// the only component that talks to the network; everything above it works
// with decoded model types.
package backend

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"chainlens/internal/model"
)

// ErrNotFound is returned when the backend has no record for a
// valid-shaped identifier. Callers surface it as an empty state and never
// retry it automatically.
var ErrNotFound = errors.New("backend: not found")

// placeholderAPIKey is sent when no key is configured. Auth enforcement is
// the backend's job; the client never fails locally over a missing key.
const placeholderAPIKey = "anonymous"

type Client struct {
	http  *resty.Client
	cache *queryCache
}

type Option func(*Client)

// WithCache enables the transient query cache for latest-block, stats and
// search responses.
func WithCache(size int, ttl time.Duration) Option {
	return func(c *Client) {
		cache, err := newQueryCache(size, ttl)
		if err == nil {
			c.cache = cache
		}
	}
}

func New(baseURL, apiKey string, opts ...Option) *Client {
	if apiKey == "" {
		apiKey = placeholderAPIKey
	}
	// No transport-level retries: polling sources retry implicitly on the
	// next tick, and a failed search must stay terminal for that attempt.
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-API-Key", apiKey)

	c := &Client{http: client}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Health(ctx context.Context) (model.Health, error) {
	var out model.Health
	err := c.get(ctx, "/health", nil, &out)
	return out, err
}

func (c *Client) LatestBlock(ctx context.Context, chain model.Chain) (model.Block, error) {
	key := cacheKey("blocks/latest", chain.String())
	if cached, ok := cacheLookup[model.Block](c.cache, key); ok {
		return cached, nil
	}
	var out model.Block
	if err := c.get(ctx, "/blocks/latest", map[string]string{"chain": chain.String()}, &out); err != nil {
		return model.Block{}, err
	}
	cacheStore(c.cache, key, out)
	return out, nil
}

// Block fetches a block by height or hash; the backend disambiguates.
func (c *Client) Block(ctx context.Context, chain model.Chain, heightOrHash string) (model.Block, error) {
	var out model.Block
	err := c.get(ctx, fmt.Sprintf("/blocks/%s/%s", chain, heightOrHash), nil, &out)
	return out, err
}

func (c *Client) BlockByHeight(ctx context.Context, chain model.Chain, height int64) (model.Block, error) {
	return c.Block(ctx, chain, strconv.FormatInt(height, 10))
}

type BlockTxsResponse struct {
	Block model.Block `json:"block"`
	Page  struct {
		NextCursor string `json:"next_cursor"`
		Limit      int    `json:"limit"`
	} `json:"page"`
	Transactions []model.Transaction `json:"transactions"`
}

// BlockTxs pages through the transactions of one block. An empty cursor
// requests the first page; any returned cursor is passed back verbatim.
func (c *Client) BlockTxs(ctx context.Context, chain model.Chain, blockID, cursor string, limit int) (model.Page[model.Transaction], error) {
	var out BlockTxsResponse
	params := map[string]string{"limit": strconv.Itoa(limit)}
	if cursor != "" {
		params["cursor"] = cursor
	}
	if err := c.get(ctx, fmt.Sprintf("/blocks/%s/%s/txs", chain, blockID), params, &out); err != nil {
		return model.Page[model.Transaction]{}, err
	}
	return model.Page[model.Transaction]{Items: out.Transactions, NextCursor: out.Page.NextCursor}, nil
}

func (c *Client) BlockRange(ctx context.Context, chain model.Chain, from, to int64) ([]model.BlockSummary, error) {
	var out []model.BlockSummary
	params := map[string]string{
		"from": strconv.FormatInt(from, 10),
		"to":   strconv.FormatInt(to, 10),
	}
	err := c.get(ctx, fmt.Sprintf("/blocks/%s/range", chain), params, &out)
	return out, err
}

func (c *Client) Tx(ctx context.Context, chain model.Chain, hash string) (model.Transaction, error) {
	var out model.Transaction
	err := c.get(ctx, fmt.Sprintf("/tx/%s/%s", chain, hash), nil, &out)
	return out, err
}

func (c *Client) LatestTxs(ctx context.Context, chain model.Chain, limit int) ([]model.Transaction, error) {
	var out []model.Transaction
	params := map[string]string{
		"chain": chain.String(),
		"limit": strconv.Itoa(limit),
	}
	err := c.get(ctx, "/txs/latest", params, &out)
	return out, err
}

// PendingTxs lists the current mempool view for a chain.
func (c *Client) PendingTxs(ctx context.Context, chain model.Chain, limit int) ([]model.Transaction, error) {
	var out []model.Transaction
	params := map[string]string{
		"chain": chain.String(),
		"limit": strconv.Itoa(limit),
	}
	err := c.get(ctx, "/txs/pending", params, &out)
	return out, err
}

type addressTxsResponse struct {
	Data   []model.Transaction `json:"data"`
	Cursor string              `json:"cursor"`
}

func (c *Client) AddressTxs(ctx context.Context, chain model.Chain, address, cursor string, limit int) (model.Page[model.Transaction], error) {
	var out addressTxsResponse
	params := map[string]string{"limit": strconv.Itoa(limit)}
	if cursor != "" {
		params["cursor"] = cursor
	}
	if err := c.get(ctx, fmt.Sprintf("/address/%s/%s/txs", chain, address), params, &out); err != nil {
		return model.Page[model.Transaction]{}, err
	}
	return model.Page[model.Transaction]{Items: out.Data, NextCursor: out.Cursor}, nil
}

func (c *Client) Balance(ctx context.Context, chain model.Chain, address string) (model.Balance, error) {
	var out model.Balance
	err := c.get(ctx, fmt.Sprintf("/balance/%s/%s", chain, address), nil, &out)
	return out, err
}

func (c *Client) Stats(ctx context.Context, chain model.Chain) (model.NetworkStats, error) {
	key := cacheKey("stats", chain.String())
	if cached, ok := cacheLookup[model.NetworkStats](c.cache, key); ok {
		return cached, nil
	}
	var out model.NetworkStats
	if err := c.get(ctx, fmt.Sprintf("/stats/%s", chain), nil, &out); err != nil {
		return model.NetworkStats{}, err
	}
	cacheStore(c.cache, key, out)
	return out, nil
}

type EventQuery struct {
	Chain      model.Chain
	Topic0     string
	FromHeight int64
	ToHeight   int64
	Cursor     string
}

type eventsResponse struct {
	Data   []model.Event `json:"data"`
	Cursor string        `json:"cursor"`
}

// Events queries decoded contract logs. ETH only.
func (c *Client) Events(ctx context.Context, q EventQuery) (model.Page[model.Event], error) {
	if q.Chain != model.ChainEthereum {
		return model.Page[model.Event]{}, errors.Errorf("events are not available for chain %q", q.Chain)
	}
	params := map[string]string{
		"chain":       q.Chain.String(),
		"topic0":      q.Topic0,
		"from_height": strconv.FormatInt(q.FromHeight, 10),
		"to_height":   strconv.FormatInt(q.ToHeight, 10),
	}
	if q.Cursor != "" {
		params["cursor"] = q.Cursor
	}
	var out eventsResponse
	if err := c.get(ctx, "/events", params, &out); err != nil {
		return model.Page[model.Event]{}, err
	}
	return model.Page[model.Event]{Items: out.Data, NextCursor: out.Cursor}, nil
}

// Search runs the backend full-text search. ErrNotFound means the term
// matched nothing; other errors are transient.
func (c *Client) Search(ctx context.Context, term string) (*model.SearchResult, error) {
	key := cacheKey("search", term)
	if cached, ok := cacheLookup[model.SearchResult](c.cache, key); ok {
		return &cached, nil
	}
	var out model.SearchResult
	if err := c.get(ctx, "/search", map[string]string{"q": term}, &out); err != nil {
		return nil, err
	}
	cacheStore(c.cache, key, out)
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, params map[string]string, out any) error {
	req := c.http.R().SetContext(ctx).SetResult(out)
	if params != nil {
		req.SetQueryParams(params)
	}
	resp, err := req.Get(path)
	if err != nil {
		return errors.Wrapf(err, "GET %s", path)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.IsError() {
		return errors.Errorf("GET %s: backend error %d: %s", path, resp.StatusCode(), resp.String())
	}
	return nil
}
