package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitAmount(t *testing.T) {
	cases := []struct {
		name      string
		amount    float64
		wantFee   float64
		wantOwner float64
	}{
		{"round amount", 100.00, 10.00, 90.00},
		{"cents amount", 99.99, 10.00, 89.99},
		{"small amount", 0.05, 0.01, 0.04},
		{"one cent", 0.01, 0.00, 0.01},
		{"zero", 0, 0, 0},
		{"large amount", 12345.67, 1234.57, 11111.10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fee, owner := SplitAmount(tc.amount)
			assert.Equal(t, tc.wantFee, fee)
			assert.Equal(t, tc.wantOwner, owner)
			// The two parts must always sum exactly to the amount in cents.
			assert.Equal(t, amountCents(tc.amount), amountCents(fee)+amountCents(owner))
		})
	}
}

func TestAmountCents(t *testing.T) {
	assert.Equal(t, int64(10000), amountCents(100.00))
	assert.Equal(t, int64(9999), amountCents(99.99))
	// Guard against float representation drift like 19.99*100 = 1998.9999....
	assert.Equal(t, int64(1999), amountCents(19.99))
}
