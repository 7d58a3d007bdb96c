package kupo

import (
	"context"
	"strconv"

	"github.com/filetug/kupo/pkg/files"
	"github.com/filetug/kupo/pkg/fsutils"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var _ tview.TableContent = (*entryRows)(nil)

const (
	nameColIndex = 0
	metaColIndex = 1
)

// childCounts caches how many entries each directory shown in a pane holds.
// Counts are taken lazily, only for rows that get drawn. A nil *childCounts
// leaves the column blank.
type childCounts struct {
	store  files.Store
	counts map[string]int // -1 when unreadable
}

func newChildCounts(store files.Store) *childCounts {
	return &childCounts{store: store, counts: make(map[string]int)}
}

func (c *childCounts) text(dirPath string) string {
	if c == nil {
		return ""
	}
	n, ok := c.counts[dirPath]
	if !ok {
		entries, err := c.store.ReadDir(context.Background(), dirPath)
		n = len(entries)
		if err != nil {
			n = -1
		}
		c.counts[dirPath] = n
	}
	if n < 0 {
		return "?"
	}
	return strconv.Itoa(n)
}

func (c *childCounts) reset() {
	if c != nil {
		clear(c.counts)
	}
}

// entryRows presents a listing to a tview.Table without copying it into cells.
type entryRows struct {
	tview.TableContentReadOnly
	entries    []files.Entry
	unreadable bool
	counts     *childCounts
}

func newEntryRows(entries []files.Entry, unreadable bool, counts *childCounts) *entryRows {
	return &entryRows{entries: entries, unreadable: unreadable, counts: counts}
}

func (r *entryRows) GetRowCount() int {
	if len(r.entries) == 0 {
		return 1 // placeholder
	}
	return len(r.entries)
}

func (r *entryRows) GetColumnCount() int {
	return 2
}

func (r *entryRows) GetCell(row, col int) *tview.TableCell {
	if len(r.entries) == 0 {
		if row != 0 || col != nameColIndex {
			return nil
		}
		text := "[::i]empty[::-]"
		if r.unreadable {
			text = "[::i]unreadable directory[::-]"
		}
		return tview.NewTableCell(text).
			SetTextColor(tcell.ColorGray).
			SetSelectable(false)
	}
	if row < 0 || row >= len(r.entries) {
		return nil
	}
	entry := r.entries[row]
	switch col {
	case nameColIndex:
		name := tview.Escape(entry.Name)
		color := Style.FileColor
		if entry.IsDir() {
			name += "/"
			color = Style.DirColor
		}
		if entry.IsHidden() && !entry.IsDir() {
			color = Style.HiddenColor
		}
		return tview.NewTableCell(" " + name).
			SetTextColor(color).
			SetExpansion(1).
			SetReference(entry)
	case metaColIndex:
		text := fsutils.GetSizeShortText(entry.Size)
		attrs := tcell.AttrNone
		if entry.IsDir() {
			text = r.counts.text(entry.FullName())
			attrs = tcell.AttrDim
		}
		return tview.NewTableCell(text + " ").
			SetTextColor(Style.MetaColor).
			SetAttributes(attrs).
			SetAlign(tview.AlignRight)
	default:
		return nil
	}
}
