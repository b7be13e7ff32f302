package resource

import (
	"math"
	"math/big"
	"strings"
)

// ZeroHex is the indexer's encoding of an empty balance.
const ZeroHex = "0x00000000000000000000000000000000"

// Precision is the number of on-chain units per whole resource unit.
var Precision = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// DecodeBalance converts a hex-encoded on-chain balance to whole units.
// The zero sentinel, non-positive values and anything unparseable decode to 0.
// Results beyond uint64 saturate.
func DecodeBalance(raw string) uint64 {
	if raw == ZeroHex {
		return 0
	}

	n, ok := parseHex(raw)
	if !ok || n.Sign() <= 0 {
		return 0
	}

	n.Quo(n, Precision)
	if !n.IsUint64() {
		return math.MaxUint64
	}
	return n.Uint64()
}

// ParseCount decodes a hex or decimal integer the indexer uses for counters
// such as troop counts. Anything invalid or negative decodes to 0.
func ParseCount(raw string) uint64 {
	n, ok := parseHex(raw)
	if !ok {
		n, ok = new(big.Int).SetString(strings.TrimSpace(raw), 10)
	}
	if !ok || n.Sign() <= 0 {
		return 0
	}
	if !n.IsUint64() {
		return math.MaxUint64
	}
	return n.Uint64()
}

func parseHex(raw string) (*big.Int, bool) {
	s := strings.TrimSpace(raw)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return nil, false
	}
	n, ok := new(big.Int).SetString(s[2:], 16)
	if !ok {
		return nil, false
	}
	if neg {
		n.Neg(n)
	}
	return n, true
}
