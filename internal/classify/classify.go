// Package classify guesses what chain entity a raw search term refers to
// using length and prefix shape rules only. Nothing here is checksum or
// cryptographically validated; wrong guesses are corrected downstream by
// the backend lookup.
package classify

import (
	"strings"

	"chainlens/internal/model"
)

const (
	KindUnknown Kind = iota
	KindEthAddress
	KindEthHash
	KindBtcAddress
	KindHeight
)

const (
	ethAddressLen = 42 // "0x" + 40 hex chars
	ethHashLen    = 66 // "0x" + 64 hex chars
	btcHashLen    = 64 // bare txid/block hash, no 0x prefix

	// Heights are plain integers; 20+ digit numbers exceed any plausible
	// block height and are treated as opaque identifiers instead.
	maxHeightDigits = 19
)

type Kind int

func (k Kind) String() string {
	switch k {
	case KindEthAddress:
		return "eth_address"
	case KindEthHash:
		return "eth_hash"
	case KindBtcAddress:
		return "btc_address"
	case KindHeight:
		return "height"
	}
	return "unknown"
}

// Classify applies the shape rules in priority order. A bare 64-hex-char
// string (a BTC-looking hash) deliberately stays KindUnknown so it is
// routed through backend search, which can tell a block hash from a txid.
func Classify(term string) Kind {
	switch {
	case strings.HasPrefix(term, "0x") && len(term) == ethAddressLen && isHex(term[2:]):
		return KindEthAddress
	case strings.HasPrefix(term, "0x") && len(term) == ethHashLen && isHex(term[2:]):
		return KindEthHash
	case strings.HasPrefix(term, "1"), strings.HasPrefix(term, "3"), strings.HasPrefix(term, "bc1"):
		if isDigits(term) {
			break
		}
		return KindBtcAddress
	}

	if len(term) > 0 && len(term) <= maxHeightDigits && isDigits(term) {
		return KindHeight
	}
	return KindUnknown
}

// HashShaped reports whether a term's length is consistent with a
// transaction or block hash, used for the optimistic fallback route when
// search is unavailable.
func HashShaped(term string) bool {
	if strings.HasPrefix(term, "0x") {
		return len(term) == ethHashLen
	}
	return len(term) >= btcHashLen
}

// SuggestChain implements the chain-mismatch check run after a direct
// lookup fails on the active chain. It returns the alternate chain to
// offer and true when the term's shape points at the other network.
func SuggestChain(term string, active model.Chain) (model.Chain, bool) {
	hexTerm := strings.HasPrefix(term, "0x")
	switch {
	case hexTerm && active == model.ChainBitcoin:
		return model.ChainEthereum, true
	case !hexTerm && len(term) < btcHashLen && active == model.ChainEthereum:
		return model.ChainBitcoin, true
	}
	return "", false
}

func isHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
