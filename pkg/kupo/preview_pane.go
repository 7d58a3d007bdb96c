package kupo

import (
	"fmt"
	"path/filepath"

	"github.com/filetug/kupo/pkg/chroma2tcell"
	"github.com/filetug/kupo/pkg/preview"
	"github.com/rivo/tview"
)

const (
	textPage  = "text"
	dirPage   = "dir"
	emptyPage = "empty"
)

type previewPane struct {
	*tview.Pages
	text      *tview.TextView
	dir       *tview.Table
	empty     *tview.TextView
	styleName string
	counts    *childCounts
	shown     preview.State
}

func newPreviewPane(styleName string, counts *childCounts) *previewPane {
	p := &previewPane{
		Pages: tview.NewPages(),
		text: tview.NewTextView().
			SetDynamicColors(true).
			SetWrap(false).
			SetScrollable(true),
		dir:       tview.NewTable().SetSelectable(false, false),
		empty:     tview.NewTextView(),
		styleName: styleName,
		counts:    counts,
	}
	p.SetBorder(true)
	p.SetBorderColor(Style.BlurBorderColor)
	p.AddPage(textPage, p.text, true, false)
	p.AddPage(dirPage, p.dir, true, false)
	p.AddPage(emptyPage, p.empty, true, true)
	return p
}

// show renders a committed preview. It runs on the UI loop.
func (p *previewPane) show(state preview.State) {
	p.shown = state
	name := filepath.Base(state.Target)
	switch state.Mode {
	case preview.ModeText:
		colorized, err := chroma2tcell.ColorizeNumbered(state.Text, state.Language, p.styleName)
		if err != nil {
			colorized, _ = chroma2tcell.ColorizeNumbered(state.Text, "", p.styleName)
		}
		p.text.SetText(colorized)
		p.text.ScrollToBeginning()
		title := name
		if state.Language != "" {
			title += " · " + state.Language
		}
		if state.Truncated {
			title += " · truncated"
		}
		p.SetTitle(" " + tview.Escape(title) + " ")
		p.SwitchToPage(textPage)
	case preview.ModeDirectory:
		p.dir.SetContent(newEntryRows(state.Entries, state.Unreadable, p.counts))
		p.dir.ScrollToBeginning()
		title := fmt.Sprintf("%s/ · %d entries", name, len(state.Entries))
		if state.Unreadable {
			title = name + "/ · unreadable"
		}
		p.SetTitle(" " + tview.Escape(title) + " ")
		p.SwitchToPage(dirPage)
	default:
		p.empty.SetText("")
		title := ""
		if state.Target != "" {
			title = " " + tview.Escape(name) + " "
		}
		p.SetTitle(title)
		p.SwitchToPage(emptyPage)
	}
}
