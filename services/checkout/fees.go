package checkout

import "math"

// PlatformFeeRate is the platform's share of every transaction.
const PlatformFeeRate = 0.10

// SplitAmount computes the platform fee and owner payout for amount. All
// arithmetic happens in integer cents so the two parts always sum exactly
// to the amount.
func SplitAmount(amount float64) (platformFee, ownerAmount float64) {
	amountCents := int64(math.Round(amount * 100))
	feeCents := int64(math.Round(float64(amountCents) * PlatformFeeRate))
	ownerCents := amountCents - feeCents
	return float64(feeCents) / 100, float64(ownerCents) / 100
}

// amountCents converts a price to Stripe's minor-unit representation.
func amountCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
