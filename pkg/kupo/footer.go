package kupo

import (
	"fmt"
	"strings"

	"github.com/filetug/kupo/pkg/commands"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type menuItem struct {
	Keys  string
	Title string
}

// footer shows the last command outcome, or the key menu when there is none.
type footer struct {
	*tview.TextView
	menuItems []menuItem
	message   string
}

func newFooter() *footer {
	f := &footer{
		TextView: tview.NewTextView().
			SetDynamicColors(true).
			SetTextColor(tcell.ColorSlateGray),
		menuItems: []menuItem{
			{Keys: "/", Title: "filter"},
			{Keys: ":", Title: "command"},
			{Keys: "hjkl", Title: "move"},
			{Keys: "g/G", Title: "first/last"},
			{Keys: "Esc", Title: "clear filter"},
			{Keys: "q", Title: "quit"},
		},
	}
	f.render()
	return f
}

func (f *footer) render() {
	if f.message != "" {
		f.SetText(f.message)
		return
	}
	f.SetText(renderMenuItems(f.menuItems))
}

func renderMenuItems(menuItems []menuItem) string {
	const separator = "┊"
	parts := make([]string, 0, len(menuItems))
	for _, mi := range menuItems {
		parts = append(parts, fmt.Sprintf("[%s]%s[-] %s", Style.HotkeyColor, tview.Escape(mi.Keys), mi.Title))
	}
	return strings.Join(parts, " "+separator+" ")
}

func (f *footer) showOutcome(outcome commands.Outcome) {
	switch {
	case outcome.Status == commands.StatusNoop:
		f.message = ""
	case !outcome.Success():
		f.message = fmt.Sprintf("[%s]%s[-]", Style.ErrorColor, tview.Escape(outcome.Message))
	case outcome.Message != "":
		f.message = fmt.Sprintf("[%s]%s[-]", Style.OKColor, tview.Escape(outcome.Message))
	default:
		f.message = ""
	}
	f.render()
}

// showHint describes the command being typed.
func (f *footer) showHint(cmd commands.Command, ok bool) {
	if !ok {
		f.message = ""
	} else {
		f.message = fmt.Sprintf("%s [%s]╲ %s[-]", tview.Escape(cmd.Syntax), Style.HintColor, tview.Escape(cmd.Description))
	}
	f.render()
}

func (f *footer) clear() {
	f.message = ""
	f.render()
}
