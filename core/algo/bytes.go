package algo

import "fmt"

const (
	kib = 1024
	mib = 1024 * kib
	gib = 1024 * mib
)

// FormatBytes renders a byte count in the largest of b, Kb, Mb and Gb whose
// value is at least one, rounded to zero decimal places.
func FormatBytes(bytes int64) string {
	switch {
	case bytes < kib:
		return fmt.Sprintf("%db", bytes)
	case bytes < mib:
		return fmt.Sprintf("%.0fKb", float64(bytes)/kib)
	case bytes < gib:
		return fmt.Sprintf("%.0fMb", float64(bytes)/mib)
	default:
		return fmt.Sprintf("%.0fGb", float64(bytes)/gib)
	}
}
