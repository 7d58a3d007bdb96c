// Package kupo lays out the browser: parent, current and preview panes with a
// header, a footer and the filter and command prompts. All state changes go
// through navigation.State; the panes only render what it emits.
package kupo

import (
	"path/filepath"

	"github.com/filetug/kupo/pkg/commands"
	"github.com/filetug/kupo/pkg/config"
	"github.com/filetug/kupo/pkg/files"
	"github.com/filetug/kupo/pkg/files/osfile"
	"github.com/filetug/kupo/pkg/filter"
	"github.com/filetug/kupo/pkg/fsutils"
	"github.com/filetug/kupo/pkg/klog"
	"github.com/filetug/kupo/pkg/lister"
	"github.com/filetug/kupo/pkg/navigation"
	"github.com/filetug/kupo/pkg/preview"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"
)

const (
	footerPage  = "footer"
	filterPage  = "filter"
	commandPage = "command"
)

var defaultProportions = []int{6, 10, 8}

type Browser struct {
	*tview.Flex

	app   App
	store files.Store
	cfg   *config.Config
	log   logrus.FieldLogger

	nav         *navigation.State
	parentNav   *navigation.State
	coordinator *preview.Coordinator
	interpreter *commands.Interpreter
	counts      *childCounts

	header  *tview.TextView
	parent  *tview.Table
	current *tview.Table
	preview *previewPane
	footer  *footer
	prompt  *tview.Pages
	filter  *tview.InputField
	command *tview.InputField
}

type Option func(b *Browser)

func WithStore(store files.Store) Option {
	return func(b *Browser) {
		b.store = store
	}
}

func WithConfig(cfg *config.Config) Option {
	return func(b *Browser) {
		b.cfg = cfg
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(b *Browser) {
		b.log = log
	}
}

func NewBrowser(app App, dir string, options ...Option) *Browser {
	b := &Browser{app: app}
	for _, option := range options {
		option(b)
	}
	if b.store == nil {
		b.store = osfile.NewStore()
	}
	if b.cfg == nil {
		b.cfg = config.Default()
	}
	b.log = klog.OrDiscard(b.log)

	entryLister := lister.New(b.store, lister.WithLogger(b.log))
	b.nav = navigation.New(entryLister, dir,
		navigation.WithFilter(filter.New(filter.Syntax(b.cfg.Filter.Syntax))),
		navigation.WithLogger(b.log),
	)
	b.parentNav = navigation.New(entryLister, fsutils.ParentDir(b.nav.Path()),
		navigation.WithLogger(b.log),
	)
	b.parentNav.Select(filepath.Base(b.nav.Path()))
	b.coordinator = preview.NewCoordinator(entryLister, b.store, app.QueueUpdateDraw,
		preview.WithMaxBytes(b.cfg.Preview.MaxBytes),
		preview.WithLogger(b.log),
	)
	b.interpreter = commands.NewInterpreter(b.store, commands.WithLogger(b.log))
	b.counts = newChildCounts(b.store)

	b.createWidgets()
	b.createLayout()
	b.current.SetTitle(paneTitle(b.nav.Path()))

	b.nav.OnSelectionChanged(b.selectionChanged)
	b.nav.OnDirectoryChanged(b.directoryChanged)
	b.parentNav.OnSelectionChanged(func(navigation.SelectionChanged) {
		b.renderParent()
	})
	b.coordinator.OnReady(b.preview.show)

	b.renderParent()
	b.nav.Refresh()
	return b
}

func (b *Browser) Nav() *navigation.State {
	return b.nav
}

func (b *Browser) createWidgets() {
	b.header = tview.NewTextView().SetDynamicColors(true)

	b.parent = tview.NewTable().SetSelectable(true, false)
	b.parent.SetBorder(true)
	b.parent.SetBorderColor(Style.BlurBorderColor)

	b.current = tview.NewTable().SetSelectable(true, false)
	b.current.SetBorder(true)
	b.current.SetBorderColor(Style.BlurBorderColor)
	b.current.SetInputCapture(b.inputCapture)
	b.current.SetFocusFunc(func() {
		b.current.SetBorderColor(Style.FocusedBorderColor)
	})
	b.current.SetBlurFunc(func() {
		b.current.SetBorderColor(Style.BlurBorderColor)
	})

	b.preview = newPreviewPane(b.cfg.Preview.Style, b.counts)
	b.footer = newFooter()

	b.filter = tview.NewInputField().
		SetLabel("/").
		SetFieldBackgroundColor(tcell.ColorDefault).
		SetChangedFunc(b.filterChanged).
		SetDoneFunc(b.filterDone)
	b.filter.SetInputCapture(b.filterInputCapture)

	b.command = tview.NewInputField().
		SetLabel(":").
		SetFieldBackgroundColor(tcell.ColorDefault).
		SetChangedFunc(b.commandChanged).
		SetDoneFunc(b.commandDone)

	b.prompt = tview.NewPages().
		AddPage(footerPage, b.footer, true, true).
		AddPage(filterPage, b.filter, true, false).
		AddPage(commandPage, b.command, true, false)
}

func (b *Browser) createLayout() {
	columns := tview.NewFlex().
		AddItem(b.parent, 0, defaultProportions[0], false).
		AddItem(b.current, 0, defaultProportions[1], true).
		AddItem(b.preview, 0, defaultProportions[2], false)

	b.Flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(b.header, 1, 0, false).
		AddItem(columns, 0, 1, true).
		AddItem(b.prompt, 1, 0, false)
}

// selectionChanged keeps the current pane and the preview in step with nav.
func (b *Browser) selectionChanged(e navigation.SelectionChanged) {
	b.current.SetContent(newEntryRows(b.nav.Entries(), b.nav.Unreadable(), b.counts))
	if e.Index >= 0 {
		b.current.Select(e.Index, nameColIndex)
	} else {
		b.current.Select(0, nameColIndex)
	}
	b.renderHeader()
	b.coordinator.OnSelectionChanged(e.Entry)
}

func (b *Browser) directoryChanged(e navigation.DirectoryChanged) {
	b.current.SetTitle(paneTitle(e.NewPath))
	b.counts.reset()
	if b.filter.GetText() != "" {
		b.filter.SetText("")
	}
	if fsutils.IsRoot(e.NewPath) {
		b.renderParent()
		return
	}
	b.parentNav.ChangeDirectory(fsutils.ParentDir(e.NewPath), filepath.Base(e.NewPath))
}

func (b *Browser) renderParent() {
	if fsutils.IsRoot(b.nav.Path()) {
		b.parent.SetContent(newEntryRows(nil, false, nil))
		b.parent.SetTitle("")
		return
	}
	b.parent.SetContent(newEntryRows(b.parentNav.Entries(), b.parentNav.Unreadable(), b.counts))
	if i, ok := b.parentNav.SelectedIndex(); ok {
		b.parent.Select(i, nameColIndex)
	}
	b.parent.SetTitle(paneTitle(b.parentNav.Path()))
}

func paneTitle(dirPath string) string {
	return " " + tview.Escape(filepath.Base(dirPath)) + " "
}

func (b *Browser) renderHeader() {
	text := "[::b]" + tview.Escape(b.nav.Path()) + "[::-]"
	if b.nav.Unreadable() {
		text += " [" + Style.ErrorColor + "]unreadable directory[-]"
	}
	if pattern := b.nav.Filter(); pattern != "" {
		text += " [" + Style.HintColor + "]filter: " + tview.Escape(pattern) + "[-]"
	}
	b.header.SetText(text)
}

func (b *Browser) showPrompt(page string, field *tview.InputField) {
	b.prompt.SwitchToPage(page)
	b.app.SetFocus(field)
}

func (b *Browser) hidePrompt() {
	b.prompt.SwitchToPage(footerPage)
	b.app.SetFocus(b.current)
}

func (b *Browser) filterChanged(text string) {
	if text == b.nav.Filter() {
		return
	}
	b.nav.SetFilter(text)
}

// filterDone drops the pattern on Escape. Enter keeps it and opens the
// selected entry.
func (b *Browser) filterDone(key tcell.Key) {
	if key == tcell.KeyEscape {
		b.clearFilter()
	}
	b.hidePrompt()
	if key == tcell.KeyEnter {
		b.nav.EnterSelected()
	}
}

// filterInputCapture lets the cursor move while the filter is being typed.
func (b *Browser) filterInputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyDown:
		b.nav.MoveCursor(1)
	case tcell.KeyUp:
		b.nav.MoveCursor(-1)
	default:
		return event
	}
	return nil
}

func (b *Browser) clearFilter() {
	b.filter.SetText("")
	b.filterChanged("")
}

func (b *Browser) commandChanged(text string) {
	b.footer.showHint(b.interpreter.Reference(text))
}

func (b *Browser) commandDone(key tcell.Key) {
	line := b.command.GetText()
	b.command.SetText("")
	b.hidePrompt()
	if key != tcell.KeyEnter {
		b.footer.clear()
		return
	}
	outcome := b.interpreter.Execute(line, b.nav)
	if outcome.Status == commands.StatusQuit {
		b.app.Stop()
		return
	}
	if outcome.Status == commands.StatusOK {
		b.counts.reset()
	}
	// mkdir and touch may clear the filter without changing directory.
	if b.filter.GetText() != b.nav.Filter() {
		b.filter.SetText(b.nav.Filter())
	}
	b.footer.showOutcome(outcome)
}
