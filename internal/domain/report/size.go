package report

import "fmt"

// FormatSize renders a byte count as a human-readable string with one decimal
// place, e.g. "1.5KB", "3.2MB".
func FormatSize(bytes int64) string {
	size := float64(bytes)
	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if size < 1024.0 {
			return fmt.Sprintf("%.1f%s", size, unit)
		}
		size /= 1024.0
	}
	return fmt.Sprintf("%.1fTB", size)
}
