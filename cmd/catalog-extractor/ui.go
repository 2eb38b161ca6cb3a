// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// pageProgress draws a progress bar on stderr for per-page work. The bar is
// created on the first report, once the page count is known.
type pageProgress struct {
	description string
	bar         *progressbar.ProgressBar
}

func newPageProgress(description string) *pageProgress {
	return &pageProgress{description: description}
}

// Report matches pdf.ProgressFunc.
func (p *pageProgress) Report(done, total int) {
	if p.bar == nil {
		p.bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription(p.description),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetItsString("pages"),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprint(os.Stderr, "\n")
			}),
		)
	}
	_ = p.bar.Set(done)
}

// Finish completes the bar if one was drawn.
func (p *pageProgress) Finish() {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}

func success(format string, args ...any) {
	color.New(color.FgGreen).Printf("✓ %s\n", fmt.Sprintf(format, args...))
}

func warning(format string, args ...any) {
	color.New(color.FgYellow).Printf("⚠ %s\n", fmt.Sprintf(format, args...))
}
