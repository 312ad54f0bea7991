package outwriter

import (
	"os"

	"github.com/huangsam/benchplot/internal/contract"
	"golang.org/x/term"
)

// GetMaxTitleWidth calculates the maximum width for benchmark titles in table
// output based on terminal width and the fixed summary columns.
func GetMaxTitleWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 {
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Function + Parameter + Samples + Mean + StdDev + Median + Min + Max
	baseWidth := 90

	// Table borders, separators, and padding
	baseWidth += 20

	available := termWidth - baseWidth
	if available < 15 {
		return 15
	}
	if available > 70 {
		return 70
	}
	return available
}
