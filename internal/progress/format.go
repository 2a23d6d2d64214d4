package progress

import "fmt"

var byteUnits = [...]string{"B", "KB", "MB", "GB", "TB"}

// FormatBytes renders a byte count with 1024-based unit scaling, e.g.
// 1000000 -> "976.6 KB".
func FormatBytes(n int64) string {
	size := float64(n)
	unit := 0
	for size >= 1024 && unit < len(byteUnits)-1 {
		size /= 1024
		unit++
	}
	if unit == 0 {
		return fmt.Sprintf("%d %s", n, byteUnits[0])
	}
	return fmt.Sprintf("%.1f %s", size, byteUnits[unit])
}

// FormatDuration renders a second count as "Ns", "Nm Ns" or "Nh Nm"
// depending on magnitude.
func FormatDuration(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	if seconds < 3600 {
		return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
	}
	return fmt.Sprintf("%dh %dm", seconds/3600, (seconds%3600)/60)
}

// Bar renders a proportional progress bar of the given inner width.
func Bar(percent float64, width int) (filled, empty int) {
	if width < 0 {
		width = 0
	}
	filled = int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return filled, width - filled
}
