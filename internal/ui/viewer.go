package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"scriptest/internal/domain"
	"scriptest/internal/storage"
)

// FailureViewer displays the persisted failures of the last run in an
// interactive TUI.
type FailureViewer struct {
	storage storage.Storage
}

// NewFailureViewer creates a new FailureViewer.
func NewFailureViewer(st storage.Storage) *FailureViewer {
	return &FailureViewer{storage: st}
}

// View displays the failures of a run in an interactive TUI. Failures can
// be marked resolved with R; the marking is persisted back to the results
// file.
func (fv *FailureViewer) View(results *domain.ResultsOutput) error {
	if len(results.Details) == 0 {
		color.Green("✓ No test failures found!")
		return nil
	}

	// Track resolved failures (by index), seeded from the results file.
	resolved := make(map[int]bool)
	for i, failure := range results.Details {
		if failure.Resolved {
			resolved[i] = true
		}
	}

	saveResolved := func() error {
		for i := range results.Details {
			results.Details[i].Resolved = resolved[i]
		}
		return fv.storage.SaveOutput(results)
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	itemText := func(index int) string {
		failure := results.Details[index]
		if resolved[index] {
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, failure.TestID)
		}
		return fmt.Sprintf("[yellow]%d.[white] %s", index+1, failure.TestID)
	}

	for i := range results.Details {
		list.AddItem(itemText(i), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	countUnresolved := func() int {
		count := 0
		for i := range results.Details {
			if !resolved[i] {
				count++
			}
		}
		return count
	}

	updateHeader := func() {
		headerView.SetText(fmt.Sprintf(
			" Test Failures (%d total, %d unresolved) | ↑↓ navigate, [yellow]R[white] mark resolved, → details, ← back, Ctrl+C exit ",
			len(results.Details), countUnresolved(),
		))
	}
	updateHeader()

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(results.Details) {
			detailsView.SetText(formatFailureDetails(results.Details[index]))
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if index >= 0 && index < len(results.Details) {
					resolved[index] = !resolved[index]
					list.SetItemText(index, itemText(index), "")
					updateHeader()
					if err := saveResolved(); err != nil {
						_ = err
					}
				}
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(detailsView, 0, 2, false)

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(layout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// formatFailureDetails formats a failure for display using tview color tags.
func formatFailureDetails(failure domain.TestFailure) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "[red]✗ %s[white]\n\n", failure.TestID)
	fmt.Fprintf(&builder, "[cyan]File: %s[white]\n\n", failure.FilePath)

	if failure.Message != "" {
		fmt.Fprintf(&builder, "[yellow]Message:[white]\n%s\n\n", failure.Message)
	}
	for _, frame := range failure.Frames {
		fmt.Fprintf(&builder, "[gray]%s[white]\n", frame)
	}
	if len(failure.Frames) > 0 {
		builder.WriteString("\n")
	}

	if failure.Diff != "" {
		fmt.Fprintf(&builder, "[yellow]Diff:[white]\n%s\n\n", failure.Diff)
	}

	if len(failure.StackTrace) > 0 {
		fmt.Fprintf(&builder, "[yellow]Stack Trace:[white]\n")
		for i, trace := range failure.StackTrace {
			if i < 20 {
				fmt.Fprintf(&builder, "  %s\n", trace)
			}
		}
		if len(failure.StackTrace) > 20 {
			fmt.Fprintf(&builder, "  [gray]... and %d more lines[white]\n", len(failure.StackTrace)-20)
		}
	}

	return builder.String()
}
