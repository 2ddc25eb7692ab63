package ui

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"ngrun/internal/domain"
)

// Selector lets the user choose one test declaration
type Selector interface {
	Select(cases []domain.TestCase) (*domain.TestCase, error)
}

// PreviewFunc returns the text shown for the highlighted declaration
type PreviewFunc func(tc domain.TestCase) string

// Picker displays detected test declarations in an interactive TUI
type Picker struct {
	preview PreviewFunc
}

// NewPicker creates a new Picker
func NewPicker(preview PreviewFunc) *Picker {
	return &Picker{preview: preview}
}

// Select shows the declarations and returns the one chosen with Enter, or nil
// when the user quits.
func (p *Picker) Select(cases []domain.TestCase) (*domain.TestCase, error) {
	if len(cases) == 0 {
		color.Yellow("No test declarations found")
		return nil, nil
	}

	var chosen *domain.TestCase

	// Create the application
	app := tview.NewApplication()

	// Create list for declarations (left side)
	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	for _, tc := range cases {
		list.AddItem(p.itemText(tc), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	// Location of the highlighted declaration
	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	// Suite preview (right side)
	previewView := tview.NewTextView().
		SetDynamicColors(false).
		SetWrap(true).
		SetWordWrap(true)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 2, 0, false).
		AddItem(previewView, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(fmt.Sprintf(" Test declarations (%d) | ↑↓ to navigate, [yellow]Enter[white] to create the run configuration, Esc/Ctrl+C to exit ", len(cases)))

	updateDetails := func(index int) {
		if index < 0 || index >= len(cases) {
			return
		}
		tc := cases[index]
		statsView.SetText(fmt.Sprintf("[cyan]path:[white] [yellow]%s[white]:%d  [cyan]%s[white]", tc.FilePath, tc.Line, tc.Kind))
		if p.preview != nil {
			previewView.SetText(p.preview(tc)).ScrollToBeginning()
		}
	}

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails(index)
	})
	list.SetSelectedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		chosen = &cases[index]
		app.Stop()
	})
	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEsc, tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	updateDetails(0)

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	// Run the application
	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return nil, fmt.Errorf("failed to run TUI: %w", err)
	}

	return chosen, nil
}

// itemText formats a list entry using tview color tags
func (p *Picker) itemText(tc domain.TestCase) string {
	file := tview.Escape(filepath.Base(tc.FilePath))
	if tc.Kind == domain.ClassMatch {
		return fmt.Sprintf("[yellow]%s[white] [gray]%s[white]", tview.Escape(tc.Name), file)
	}
	return fmt.Sprintf("  %s [gray]%s:%d[white]", tview.Escape(tc.Name), file, tc.Line)
}
