package kupo

import (
	"github.com/gdamore/tcell/v2"
)

type Styles struct {
	FocusedBorderColor tcell.Color
	BlurBorderColor    tcell.Color

	DirColor    tcell.Color
	FileColor   tcell.Color
	HiddenColor tcell.Color
	MetaColor   tcell.Color

	// Tag colors used in dynamic-color text.
	HotkeyColor string
	ErrorColor  string
	OKColor     string
	HintColor   string
}

var Style = Styles{
	FocusedBorderColor: tcell.ColorCornflowerBlue,
	BlurBorderColor:    tcell.ColorGray,

	DirColor:    tcell.ColorCornflowerBlue,
	FileColor:   tcell.ColorWhiteSmoke,
	HiddenColor: tcell.ColorDarkGray,
	MetaColor:   tcell.ColorSlateGray,

	HotkeyColor: "yellow",
	ErrorColor:  "orangered",
	OKColor:     "lightgreen",
	HintColor:   "darkgray",
}
