package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeCharges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		price    int
		quantity int
		want     Charges
	}{
		{
			name:     "single premium ticket",
			price:    999,
			quantity: 1,
			// 999 * 0.18 = 179.82, rounds to 180
			want: Charges{Base: 999, GST: 180, ServiceFee: 75, Total: 1254},
		},
		{
			name:     "two premium tickets",
			price:    999,
			quantity: 2,
			want: Charges{Base: 1998, GST: 360, ServiceFee: 75, Total: 2433},
		},
		{
			name:     "gst tie rounds away from zero",
			price:    75,
			quantity: 1,
			// 75 * 0.18 = 13.5, rounds to 14
			want: Charges{Base: 75, GST: 14, ServiceFee: 75, Total: 164},
		},
		{
			name:     "default example booking",
			price:    1999,
			quantity: 1,
			want: Charges{Base: 1999, GST: 360, ServiceFee: 75, Total: 2434},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, ComputeCharges(tt.price, tt.quantity))
		})
	}
}
