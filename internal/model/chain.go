package model

import "github.com/pkg/errors"

const (
	ChainBitcoin  Chain = "btc"
	ChainEthereum Chain = "eth"
)

type (
	// Chain identifies which network a record belongs to. It is fixed at
	// record creation and never changes afterwards.
	Chain string
)

// ParseChain accepts the wire identifiers used in backend paths.
func ParseChain(s string) (Chain, error) {
	switch Chain(s) {
	case ChainBitcoin, ChainEthereum:
		return Chain(s), nil
	}
	return "", errors.Errorf("unsupported chain %q", s)
}

func (c Chain) String() string { return string(c) }

// Other returns the alternate supported chain, used for
// chain-mismatch suggestions.
func (c Chain) Other() Chain {
	if c == ChainBitcoin {
		return ChainEthereum
	}
	return ChainBitcoin
}
