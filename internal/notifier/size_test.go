package notifier

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		name string
		in   int64
		want string
	}{
		{"zero bytes", 0, "0 B"},
		{"one byte", 1, "1 B"},
		{"bytes stay integer", 512, "512 B"},
		{"just under a kilobyte", 1023, "1023 B"},
		{"exact kilobyte", 1024, "1.00 KB"},
		{"one and a half kilobytes", 1536, "1.50 KB"},
		{"half-up rounding", 1152, "1.13 KB"},
		{"exact megabyte", 1048576, "1.00 MB"},
		{"exact gigabyte", 1073741824, "1.00 GB"},
		{"exact terabyte", 1099511627776, "1.00 TB"},
		{"no unit above terabyte", 1125899906842624, "1024.00 TB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatSize(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatSizeNegative(t *testing.T) {
	_, err := FormatSize(-1)
	assert.Error(t, err)
}

func TestFormatSizeDeterministic(t *testing.T) {
	first, err := FormatSize(987654321)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := FormatSize(987654321)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestFormatSizeUnitMonotonic(t *testing.T) {
	unitIndex := func(s string) int {
		for i, u := range sizeUnits {
			if strings.HasSuffix(s, " "+u) {
				return i
			}
		}
		t.Fatalf("unrecognized unit in %q", s)
		return -1
	}

	sizes := []int64{0, 1, 512, 1023, 1024, 4096, 1048575, 1048576,
		536870912, 1073741824, 1099511627775, 1099511627776, 1125899906842624}

	prev := -1
	for _, n := range sizes {
		out, err := FormatSize(n)
		require.NoError(t, err)
		idx := unitIndex(out)
		assert.GreaterOrEqual(t, idx, prev, "unit regressed at %d bytes (%s)", n, out)
		prev = idx
	}
}
