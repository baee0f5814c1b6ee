package dirstat

import (
	"math"
	"strconv"
)

//nolint:gochecknoglobals // Unit table
var byteUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatBytes renders n in base-1024 units, using the largest unit whose scaled
// value is at least 1, rounded to two decimals with trailing zeros dropped.
// Zero and negative values render as "0 B".
func FormatBytes(n int64) string {
	if n <= 0 {
		return "0 B"
	}

	value := float64(n)
	unit := 0

	for value >= 1024 && unit < len(byteUnits)-1 {
		value /= 1024
		unit++
	}

	value = math.Round(value*100) / 100

	return strconv.FormatFloat(value, 'f', -1, 64) + " " + byteUnits[unit]
}
