package notifier

import (
	"fmt"
	"math"
)

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatSize renders a byte count for humans. Bytes stay integers; every
// larger unit gets exactly two decimals, rounded half-up. The largest unit
// absorbs everything above its threshold.
func FormatSize(sizeBytes int64) (string, error) {
	if sizeBytes < 0 {
		return "", fmt.Errorf("size must be non-negative, got %d", sizeBytes)
	}

	value := float64(sizeBytes)
	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}

	if unit == 0 {
		return fmt.Sprintf("%d B", sizeBytes), nil
	}

	// Sprintf %.2f rounds half-even; the half-up contract needs an
	// explicit floor(x*100+0.5).
	rounded := math.Floor(value*100+0.5) / 100
	return fmt.Sprintf("%.2f %s", rounded, sizeUnits[unit]), nil
}
