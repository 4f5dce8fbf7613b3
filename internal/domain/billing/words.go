package billing

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	crore    = 10_000_000
	lakh     = 100_000
	thousand = 1_000
	hundred  = 100
)

var units = [...]string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = [...]string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// MaxAmount bounds amounts taken from input (one lakh crore). Spelling works
// past it, but larger values are rejected before they reach a document.
var MaxAmount = decimal.New(1, 12)

// maxAmountScale is the most decimal places an input amount may carry.
const maxAmountScale = 28

// AmountInRange reports whether |d| <= MaxAmount with at most maxAmountScale
// decimal places. The exponent is checked first, so inputs such as 1e2000000
// are refused without expanding them.
func AmountInRange(d decimal.Decimal) bool {
	exp := int64(d.Exponent())
	if exp < -maxAmountScale {
		return false
	}
	if d.IsZero() {
		return true
	}
	if exp+int64(d.NumDigits()) > 13 {
		return false
	}
	return d.Abs().Cmp(MaxAmount) <= 0
}

var bigCrore = big.NewInt(crore)

// AmountInWords spells the rupee part of amount, dropping paise.
// 1234567 -> "Twelve Lakh Thirty Four Thousand Five Hundred and Sixty Seven Only".
func AmountInWords(amount decimal.Decimal) string {
	n := amount.Abs().Floor().BigInt()
	if n.Sign() == 0 {
		return "Zero"
	}
	words := strings.Join(strings.Fields(strings.Join(bigGroups(nil, n, true), " ")+" Only"), " ")
	if amount.IsNegative() {
		return "Minus " + words
	}
	return words
}

// WordsOf spells n using crore, lakh, thousand and hundred groups.
// Zero is "Zero" with no suffix; everything else ends in " Only".
func WordsOf(n int64) string {
	return AmountInWords(decimal.NewFromInt(n))
}

// bigGroups handles values past uint64 by peeling off crores, whose count is
// spelled with the same grouping.
func bigGroups(out []string, n *big.Int, withAnd bool) []string {
	if n.IsUint64() {
		return groups(out, n.Uint64(), withAnd)
	}
	q, r := new(big.Int).QuoRem(n, bigCrore, new(big.Int))
	out = bigGroups(out, q, false)
	out = append(out, "Crore")
	return groups(out, r.Uint64(), withAnd)
}

// groups appends the words for n in crore, lakh, thousand, hundred, remainder
// order. "and" goes before a non-zero remainder that follows a higher group,
// and only at the outermost level.
func groups(out []string, n uint64, withAnd bool) []string {
	emit := func(count uint64, scale string) {
		if count == 0 {
			return
		}
		out = append(out, countWords(count)...)
		out = append(out, scale)
	}

	emit(n/crore, "Crore")
	n %= crore
	emit(n/lakh, "Lakh")
	n %= lakh
	emit(n/thousand, "Thousand")
	n %= thousand
	emit(n/hundred, "Hundred")
	n %= hundred

	if n > 0 {
		if withAnd && len(out) > 0 {
			out = append(out, "and")
		}
		out = append(out, belowHundred(n))
	}
	return out
}

// countWords spells a group count. Crore counts can exceed 99 and are
// spelled with the same grouping.
func countWords(n uint64) []string {
	if n < hundred {
		return []string{belowHundred(n)}
	}
	return groups(nil, n, false)
}

func belowHundred(n uint64) string {
	if n < 20 {
		return units[n]
	}
	if n%10 == 0 {
		return tens[n/10]
	}
	return tens[n/10] + " " + units[n%10]
}
