// Package resolver turns a raw search term into a navigable route. Shape
// heuristics handle the cheap cases locally; everything else costs exactly
// one backend search call, with an optimistic transaction fallback when
// the search service is degraded.
package resolver

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"chainlens/internal/classify"
	"chainlens/internal/model"
)

var (
	ErrEmptyQuery = errors.New("resolver: empty query")

	// ErrNoResults means the term resolved to nothing anywhere: heuristics,
	// backend search and the hash fallback all passed on it. Surfaced as an
	// empty state, never retried automatically.
	ErrNoResults = errors.New("resolver: no results")
)

// ChainMismatchError reports that an identifier's shape points at a
// different network than the one it was looked up on. It carries the
// suggested chain so the caller can render a corrective link instead of a
// dead end.
type ChainMismatchError struct {
	Term      string
	Active    model.Chain
	Suggested model.Chain
}

func (e *ChainMismatchError) Error() string {
	return fmt.Sprintf("resolver: %q does not look like a %s identifier, try %s", e.Term, e.Active, e.Suggested)
}

const (
	TargetAddress TargetKind = "address"
	TargetBlock   TargetKind = "block"
	TargetTx      TargetKind = "tx"
)

type (
	TargetKind string

	// Target is a resolved navigation destination. Optimistic marks routes
	// built by the hash fallback rather than a confirmed backend record.
	Target struct {
		Path       string
		Chain      model.Chain
		Kind       TargetKind
		Optimistic bool
	}

	// Searcher is the single backend dependency: one full-text search call.
	Searcher interface {
		Search(ctx context.Context, term string) (*model.SearchResult, error)
	}

	Resolver struct {
		search Searcher
		log    *zap.Logger
	}
)

func New(search Searcher, log *zap.Logger) *Resolver {
	return &Resolver{search: search, log: log}
}

// Resolve maps a raw term to a navigation target. Address and height
// shapes route directly with no network round trip; address existence is
// established lazily by the address page itself. All other shapes issue
// one search call, and a search failure for a hash-shaped term degrades to
// an optimistic transaction route rather than an error.
func (r *Resolver) Resolve(ctx context.Context, term string, active model.Chain) (Target, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return Target{}, ErrEmptyQuery
	}

	switch classify.Classify(term) {
	case classify.KindEthAddress:
		return addressTarget(model.ChainEthereum, term), nil
	case classify.KindBtcAddress:
		return addressTarget(model.ChainBitcoin, term), nil
	case classify.KindHeight:
		return Target{
			Path:  fmt.Sprintf("/block/%s/%s", active, term),
			Chain: active,
			Kind:  TargetBlock,
		}, nil
	}

	result, err := r.search.Search(ctx, term)
	if err != nil {
		r.log.Warn("backend search failed",
			zap.String("term", term),
			zap.Error(err))
		return r.fallback(term, active)
	}
	target, ok := fromSearchResult(result)
	if !ok {
		return r.fallback(term, active)
	}
	return target, nil
}

// LookupFailure classifies a failed direct block/tx lookup on the active
// chain into the error taxonomy: a chain mismatch with a suggested
// alternate, or a plain not-found.
func LookupFailure(term string, active model.Chain) error {
	if alt, ok := classify.SuggestChain(term, active); ok {
		return &ChainMismatchError{Term: term, Active: active, Suggested: alt}
	}
	return ErrNoResults
}

func fromSearchResult(r *model.SearchResult) (Target, bool) {
	switch r.Type {
	case model.SearchBlock:
		return Target{
			Path:  fmt.Sprintf("/block/%s/%d", r.Block.Chain, r.Block.Height),
			Chain: r.Block.Chain,
			Kind:  TargetBlock,
		}, true
	case model.SearchTx:
		return Target{
			Path:  fmt.Sprintf("/tx/%s/%s", r.Tx.Chain, r.Tx.TxHash),
			Chain: r.Tx.Chain,
			Kind:  TargetTx,
		}, true
	case model.SearchAddress:
		return addressTarget(r.Address.Chain, r.Address.Address), true
	case model.SearchTokenList:
		// First match wins; there is no disambiguation UI for multiple
		// token hits. An empty list falls through to the hash fallback.
		if len(r.Tokens) == 0 {
			return Target{}, false
		}
		return addressTarget(r.Tokens[0].Chain, r.Tokens[0].Address), true
	}
	return Target{}, false
}

// fallback builds an unverified transaction route for hash-shaped terms so
// a degraded search service still leaves the user somewhere navigable. A
// 0x-form hash can only be an ETH transaction; a bare hash stays on the
// active chain.
func (r *Resolver) fallback(term string, active model.Chain) (Target, error) {
	if !classify.HashShaped(term) {
		return Target{}, ErrNoResults
	}
	chain := active
	if strings.HasPrefix(term, "0x") {
		chain = model.ChainEthereum
	}
	r.log.Info("falling back to optimistic tx route",
		zap.String("term", term),
		zap.String("chain", chain.String()))
	return Target{
		Path:       fmt.Sprintf("/tx/%s/%s", chain, term),
		Chain:      chain,
		Kind:       TargetTx,
		Optimistic: true,
	}, nil
}

func addressTarget(chain model.Chain, addr string) Target {
	return Target{
		Path:  fmt.Sprintf("/address/%s/%s", chain, addr),
		Chain: chain,
		Kind:  TargetAddress,
	}
}
