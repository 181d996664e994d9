package progress

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"
)

// DefaultWidth is the line width BarCustom renders to.
const DefaultWidth = 80

// Func receives the bytes transferred so far and the total size, which is
// zero when unknown.
type Func func(current, total int64)

type field int

const (
	fieldPercent field = iota
	fieldBar
	fieldSize
)

// BarCustom renders a progress line at DefaultWidth.
func BarCustom(current, total int64) string {
	return Bar(current, total, DefaultWidth)
}

// Bar renders a progress line for width columns.
//
// The size field may run past width when its text is longer than its
// reserved minimum.
func Bar(current, total int64, width int) string {
	if total <= 0 {
		msg := fmt.Sprintf("%d / unknown", current)
		if len(msg) < width {
			return msg
		}
		return strconv.FormatInt(current, 10)
	}

	minWidth := map[field]int{
		fieldPercent: 4,
		fieldBar:     3,
		fieldSize:    len(strconv.FormatInt(total, 10))*2 + 3,
	}

	// Each selected field reserves its minimum plus one column for the
	// separator, or for the final column left free to avoid a line wrap.
	avail := width
	var selected []field
	for _, f := range []field{fieldPercent, fieldBar, fieldSize} {
		if minWidth[f] < avail {
			selected = append(selected, f)
			avail -= minWidth[f] + 1
		}
	}

	parts := make([]string, 0, len(selected))
	for _, f := range selected {
		switch f {
		case fieldPercent:
			parts = append(parts, fmt.Sprintf("%*s", minWidth[f], fmt.Sprintf("%d%%", percent(current, total))))
		case fieldBar:
			parts = append(parts, Thermometer(current, total, minWidth[f]+avail))
		case fieldSize:
			size := fmt.Sprintf("%.2f / %.2f MB", float64(current)/1e6, float64(total)/1e6)
			parts = append(parts, fmt.Sprintf("%*s", minWidth[f], size))
		}
	}
	return strings.Join(parts, " ")
}

// percent returns floor(100*current/total) for total > 0. The product is
// taken in 128 bits so totals near math.MaxInt64 still reach 100.
// Negative current counts as 0.
func percent(current, total int64) int64 {
	if current <= 0 {
		return 0
	}
	hi, lo := bits.Mul64(uint64(current), 100)
	if hi >= uint64(total) {
		return math.MaxInt64
	}
	q, _ := bits.Div64(hi, lo, uint64(total))
	return int64(min(q, math.MaxInt64))
}

// Thermometer renders a bracketed bar width columns wide, filled with dots
// in proportion to current/total.
func Thermometer(current, total int64, width int) string {
	dots := max(width-2, 0)
	shaded := 0
	if total > 0 {
		shaded = int(math.Floor(float64(current) / float64(total) * float64(dots)))
		shaded = min(max(shaded, 0), dots)
	}
	return "[" + strings.Repeat(".", shaded) + strings.Repeat(" ", dots-shaded) + "]"
}
