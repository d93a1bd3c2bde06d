package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// Progress renders the non-verbose run display: a single in-place bar
// whose description tracks the current test and the pass/fail counts, so
// passing tests never accumulate in scrollback.
type Progress struct {
	bar *progressbar.ProgressBar
}

// NewProgress creates a progress bar for count tests.
func NewProgress(count int) *Progress {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(
			color.CyanString("Running tests: ")+
				color.GreenString("[passed: 0")+
				" | "+
				color.RedString("failed: 0]"),
		),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &Progress{bar: bar}
}

// Update advances the bar after a test settles.
func (p *Progress) Update(done, passed, failed int, current string) {
	p.bar.Set(done)
	p.bar.Describe(
		color.CyanString("%s ", truncate(current, 32)) +
			color.GreenString("[passed: %d", passed) +
			" | " +
			color.RedString("failed: %d]", failed),
	)
}

// Finish completes the progress bar.
func (p *Progress) Finish() {
	p.bar.Finish()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return "…" + s[len(s)-max+1:]
}
