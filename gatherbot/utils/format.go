package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FormatNumber groups digits with commas: 1234567 -> "1,234,567".
func FormatNumber(n int64) string {
	str := strconv.FormatInt(n, 10)
	neg := n < 0
	if neg {
		str = str[1:]
	}

	var b strings.Builder
	head := len(str) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(str[:head])
	for i := head; i < len(str); i += 3 {
		b.WriteByte(',')
		b.WriteString(str[i : i+3])
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// FormatCoins renders an amount with the coin emoji.
func FormatCoins(n int64) string {
	return "🪙 " + FormatNumber(n)
}

// FormatDuration renders the two most significant units, e.g. "1h 5m" or
// "42s". Sub-second remainders round up so a pending wait never shows as 0s.
func FormatDuration(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}
	total := int64((d + time.Second - 1) / time.Second)
	days := total / 86400
	hours := total % 86400 / 3600
	minutes := total % 3600 / 60
	seconds := total % 60

	parts := make([]string, 0, 2)
	for _, p := range []struct {
		n    int64
		unit string
	}{{days, "d"}, {hours, "h"}, {minutes, "m"}, {seconds, "s"}} {
		if p.n == 0 {
			if len(parts) > 0 {
				break
			}
			continue
		}
		parts = append(parts, fmt.Sprintf("%d%s", p.n, p.unit))
		if len(parts) == 2 {
			break
		}
	}
	return strings.Join(parts, " ")
}

// FormatMultiplier renders 1.25 as "x1.25" and 2 as "x2", to two decimals.
func FormatMultiplier(m float64) string {
	return "x" + strconv.FormatFloat(math.Round(m*100)/100, 'f', -1, 64)
}

// FormatPercent renders a fractional bonus, 0.1 -> "+10%".
func FormatPercent(f float64) string {
	return "+" + strconv.FormatFloat(math.Round(f*1000)/10, 'f', -1, 64) + "%"
}

// ProgressBar draws a fixed-width bar for current out of total.
func ProgressBar(current, total int64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if total > 0 && current > 0 {
		filled = int(current * int64(width) / total)
	}
	filled = min(filled, width)
	return strings.Repeat("▰", filled) + strings.Repeat("▱", width-filled)
}

// Title upper-cases the first letter of s.
func Title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
