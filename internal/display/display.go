// Package display converts raw on-chain integer amounts (satoshi, wei)
// into fixed-decimal display strings. All arithmetic is big.Int based:
// full-precision amounts routinely exceed the 2^53 float boundary, so the
// integer string is never parsed through a float.
package display

import (
	"math/big"
	"strings"

	"chainlens/internal/model"
)

const (
	// quickDecimals is used in list/feed contexts, detail pages get more.
	quickDecimals = 4

	btcFracDigits = 8  // satoshi per BTC = 10^8
	ethFracDigits = 18 // wei per ETH = 10^18
)

// floor renders the smallest representable step at the given precision,
// used for nonzero amounts that would otherwise display as zero so the UI
// never implies a zero-value transfer happened. At quick precision this is
// "<0.0001".
func floor(decimals int) string {
	return "<0." + strings.Repeat("0", decimals-1) + "1"
}

// Amount renders a raw integer amount with 4 decimals for quick display
// contexts. Empty or "0" input is zero; malformed input fails closed to
// "0" since this sits on the render path.
func Amount(raw string, chain model.Chain) string {
	return format(raw, chain, quickDecimals)
}

// DetailedAmount renders with full BTC precision (8 decimals) or 6
// decimals for ETH, for detail pages.
func DetailedAmount(raw string, chain model.Chain) string {
	if chain == model.ChainBitcoin {
		return format(raw, chain, 8)
	}
	return format(raw, chain, 6)
}

func format(raw string, chain model.Chain, decimals int) string {
	fracDigits := ethFracDigits
	if chain == model.ChainBitcoin {
		fracDigits = btcFracDigits
	}

	if raw == "" {
		raw = "0"
	}
	amount, ok := new(big.Int).SetString(raw, 10)
	if !ok || amount.Sign() < 0 {
		return "0"
	}

	unit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(fracDigits)), nil)
	whole, frac := new(big.Int).QuoRem(amount, unit, new(big.Int))

	// Left-pad the fractional part to the chain's full width, then
	// truncate to the requested precision. Truncation keeps the mapping
	// monotonic.
	digits := frac.String()
	digits = strings.Repeat("0", fracDigits-len(digits)) + digits
	if decimals < fracDigits {
		digits = digits[:decimals]
	}

	if amount.Sign() > 0 && whole.Sign() == 0 && strings.Trim(digits, "0") == "" {
		return floor(decimals)
	}
	return whole.String() + "." + digits
}
