// Package renderer writes the game's narrative to a text stream.
package renderer

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/gookit/color"

	"darkcave/pkg/game/locale"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleRoom
	StyleItem
	StyleMonster
	StyleAction
	StyleDenied
	StyleWin
	StyleSubtle
)

// Renderer formats, translates and styles lines of game text.
//
// Messages may contain markup of the form NAME{operand}:
//
//	ROOM{..}     room label, translated
//	ITEM{..}     item name, translated
//	MONSTER{..}  monster name, translated
//	GT{..}       translated, unstyled
//	ACTION{..}   menu key
//	DENIED{..}   failure text
//	WIN{..}      victory text
//
// Unknown markup is written unchanged.
type Renderer struct {
	out     io.Writer
	catalog *locale.Catalog
	styled  bool

	colorRoom    color.Style
	colorItem    color.Style
	colorMonster color.Style
	colorAction  color.Style
	colorDenied  color.Style
	colorWin     color.Style
	colorSubtle  color.Style

	regexpStringFunctions *regexp.Regexp
}

// New creates a renderer writing to out. When styled is false markup is
// reduced to its operand and no escape codes are written.
func New(out io.Writer, catalog *locale.Catalog, styled bool) *Renderer {
	if catalog == nil {
		catalog = locale.Default()
	}

	return &Renderer{
		out:     out,
		catalog: catalog,
		styled:  styled,

		colorRoom:    color.Style{color.FgBlue, color.OpBold},
		colorItem:    color.Style{color.FgMagenta},
		colorMonster: color.Style{color.FgRed},
		colorAction:  color.Style{color.FgMagenta, color.OpBold},
		colorDenied:  color.Style{color.FgRed, color.OpBold},
		colorWin:     color.Style{color.FgGreen, color.OpBold},
		colorSubtle:  color.Style{color.FgGray},

		regexpStringFunctions: regexp.MustCompile(`([A-Z]+){([^{}]+)}`),
	}
}

// StyleText applies a style to text
func (r *Renderer) StyleText(text string, style TextStyle) string {
	if !r.styled {
		return text
	}

	switch style {
	case StyleRoom:
		return r.colorRoom.Sprint(text)
	case StyleItem:
		return r.colorItem.Sprint(text)
	case StyleMonster:
		return r.colorMonster.Sprint(text)
	case StyleAction:
		return r.colorAction.Sprint(text)
	case StyleDenied:
		return r.colorDenied.Sprint(text)
	case StyleWin:
		return r.colorWin.Sprint(text)
	case StyleSubtle:
		return r.colorSubtle.Sprint(text)
	default:
		return text
	}
}

// FormatText translates msg, formats it with args and expands markup
func (r *Renderer) FormatText(msg string, args ...any) string {
	ret := r.catalog.Get(msg, args...)

	matches := r.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = r.catalog.Get(operand)
		case "ROOM":
			val = r.StyleText(r.catalog.Get(operand), StyleRoom)
		case "ITEM":
			val = r.StyleText(r.catalog.Get(operand), StyleItem)
		case "MONSTER":
			val = r.StyleText(r.catalog.Get(operand), StyleMonster)
		case "ACTION":
			val = r.StyleText(operand, StyleAction)
		case "DENIED":
			val = r.StyleText(operand, StyleDenied)
		case "WIN":
			val = r.StyleText(operand, StyleWin)
		default:
			continue
		}

		ret = strings.Replace(ret, match[0], val, 1)
	}

	return ret
}

// Translate returns msg in the renderer's language without markup expansion
func (r *Renderer) Translate(msg string) string {
	return r.catalog.Get(msg)
}

// Println writes one formatted line
func (r *Renderer) Println(msg string, args ...any) {
	fmt.Fprintln(r.out, r.FormatText(msg, args...))
}

// Blank writes an empty line
func (r *Renderer) Blank() {
	fmt.Fprintln(r.out)
}

// RoomHeader announces the current room, preceded by a blank line
func (r *Renderer) RoomHeader(room string) {
	r.Blank()
	r.Println("Current Room: ROOM{%s}", room)
}

// Menu writes a numbered list of options, starting at 1
func (r *Renderer) Menu(options []string) {
	for i, opt := range options {
		key := r.StyleText(strconv.Itoa(i+1), StyleAction)
		fmt.Fprintf(r.out, "%s. %s\n", key, r.catalog.Get(opt))
	}
}

// PromptChoice asks the player for a menu choice
func (r *Renderer) PromptChoice() {
	r.Println("Please enter your choice:")
}

// RejectChoice tells the player their input was not a valid choice
func (r *Renderer) RejectChoice() {
	fmt.Fprintln(r.out, r.StyleText(r.catalog.Get("Invalid choice, try again."), StyleDenied))
}
