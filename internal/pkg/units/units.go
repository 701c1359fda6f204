package units

import (
	"math/big"
	"strings"
)

// FormatUnits renders a base-unit amount as an exact decimal string.
// Trailing fractional zeros are dropped, so 1.5e18 with 18 decimals is "1.5".
func FormatUnits(amount *big.Int, decimals int) string {
	if amount == nil {
		return "0"
	}
	if decimals <= 0 {
		return amount.String()
	}

	neg := amount.Sign() < 0
	abs := new(big.Int).Abs(amount)
	quo, rem := new(big.Int).QuoRem(abs, pow10(decimals), new(big.Int))

	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	sb.WriteString(quo.String())

	if rem.Sign() != 0 {
		frac := rem.String()
		frac = strings.Repeat("0", decimals-len(frac)) + frac
		sb.WriteByte('.')
		sb.WriteString(strings.TrimRight(frac, "0"))
	}
	return sb.String()
}

// ToFloat converts a base-unit amount to the nearest float64.
func ToFloat(amount *big.Int, decimals int) float64 {
	if amount == nil {
		return 0
	}
	value := new(big.Rat).SetInt(amount)
	if decimals > 0 {
		value.Quo(value, new(big.Rat).SetInt(pow10(decimals)))
	}
	f, _ := value.Float64()
	return f
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}
