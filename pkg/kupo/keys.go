package kupo

import (
	"github.com/gdamore/tcell/v2"
)

const pageStep = 10

// inputCapture maps keys of the current pane onto navigation transitions.
// Every key is consumed so the table never moves its selection on its own.
func (b *Browser) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyDown:
		b.nav.MoveCursor(1)
	case tcell.KeyUp:
		b.nav.MoveCursor(-1)
	case tcell.KeyPgDn:
		b.nav.MoveCursor(b.pageSize())
	case tcell.KeyPgUp:
		b.nav.MoveCursor(-b.pageSize())
	case tcell.KeyHome:
		b.nav.MoveToFirst()
	case tcell.KeyEnd:
		b.nav.MoveToLast()
	case tcell.KeyRight, tcell.KeyEnter:
		b.nav.EnterSelected()
	case tcell.KeyLeft, tcell.KeyBackspace, tcell.KeyBackspace2:
		b.nav.GoToParent()
	case tcell.KeyEscape:
		b.footer.clear()
		if b.nav.Filter() != "" {
			b.clearFilter()
		}
	case tcell.KeyCtrlR:
		b.reload()
	case tcell.KeyRune:
		b.runeKey(event.Rune())
	}
	return nil
}

func (b *Browser) runeKey(r rune) {
	switch r {
	case 'j':
		b.nav.MoveCursor(1)
	case 'k':
		b.nav.MoveCursor(-1)
	case 'g':
		b.nav.MoveToFirst()
	case 'G':
		b.nav.MoveToLast()
	case 'l':
		b.nav.EnterSelected()
	case 'h':
		b.nav.GoToParent()
	case '/':
		b.filter.SetText(b.nav.Filter())
		b.showPrompt(filterPage, b.filter)
	case ':':
		b.footer.clear()
		b.showPrompt(commandPage, b.command)
	case 'q':
		b.app.Stop()
	}
}

func (b *Browser) reload() {
	selected := ""
	if entry, ok := b.nav.Selected(); ok {
		selected = entry.Name
	}
	b.counts.reset()
	b.nav.Reload(selected)
}

func (b *Browser) pageSize() int {
	_, _, _, height := b.current.GetInnerRect()
	if height <= 1 {
		return pageStep
	}
	return height - 1
}
