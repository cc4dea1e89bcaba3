package domain

// ProcessorShareBPS is the processor's share of an escrowed submission fee,
// in basis points. The remainder stays in the pool as platform revenue.
const ProcessorShareBPS = int64(7000)

// bpsDenominator is the number of basis points in a whole
const bpsDenominator = int64(10_000)

// SplitFee divides amount between a payee share and the pooled remainder.
// The share is integer-truncated, so share + remainder == amount always holds
// and rounding dust stays in the pool.
func SplitFee(amount, shareBPS int64) (share, remainder int64) {
	share = amount * shareBPS / bpsDenominator
	remainder = amount - share
	return share, remainder
}
