package kupo

import "github.com/rivo/tview"

// App is the part of tview.Application the browser drives.
type App interface {
	QueueUpdateDraw(f func())
	SetFocus(p tview.Primitive)
	Stop()
}

type kupoApp struct {
	*tview.Application
}

func (a kupoApp) QueueUpdateDraw(f func()) {
	_ = a.Application.QueueUpdateDraw(f)
}

func (a kupoApp) SetFocus(p tview.Primitive) {
	_ = a.Application.SetFocus(p)
}

// SetupApp creates a browser for dir and makes it the root of app.
func SetupApp(app *tview.Application, dir string, options ...Option) *Browser {
	b := NewBrowser(kupoApp{Application: app}, dir, options...)
	app.SetRoot(b, true)
	app.SetFocus(b.current)
	return b
}
