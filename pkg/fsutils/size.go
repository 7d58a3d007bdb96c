package fsutils

import (
	"math"
	"strconv"
)

var sizeUnits = []string{"B", "K", "M", "G", "T", "P", "E"}

// GetSizeShortText returns a compact human readable size like "12K".
func GetSizeShortText(size int64) string {
	if size <= 0 {
		return "0B"
	}
	exp := 0
	for v := size; v >= 1024 && exp < len(sizeUnits)-1; v /= 1024 {
		exp++
	}
	val := math.Round(float64(size) / math.Pow(1024, float64(exp)))
	return strconv.FormatFloat(val, 'f', 0, 64) + sizeUnits[exp]
}
