package game

import (
	"unicode/utf8"

	"github.com/jr-cho/backdrop/internal/content"
)

// Text metrics for basicfont.Face7x13.
const (
	charW = 7
	lineH = 16
)

// textWidth is the drawn width of s in px. The face advances one fixed-width
// glyph per rune, so runes are the unit, not bytes.
func textWidth(s string) float64 {
	return float64(utf8.RuneCountInString(s)) * charW
}

// Page geometry.
const (
	navBarH      = 48
	wideMargin   = 48.0
	narrowMargin = 24.0
	heroTop      = 96.0
	anchorPad    = navBarH + 16 // section tops land just under the fixed nav
	bottomPad    = 120.0
)

type lineRole int

const (
	roleTitle lineRole = iota
	roleIntro
	roleHeading
	roleBody
	roleCode
	roleList
)

// docLine is one laid-out row of text in document space.
type docLine struct {
	text    string
	x, y    float64
	role    lineRole
	section int // index into sections, -1 for the hero
}

// sectionBox is the document-space extent of one section, used for fade
// observation and anchor targets.
type sectionBox struct {
	id     string
	top    float64
	height float64
}

// navLink is a clickable heading entry in the fixed nav bar, in screen space
// with the bar fully deployed.
type navLink struct {
	section    int
	label      string
	x, y, w, h float64
}

type pageLayout struct {
	lines    []docLine
	sections []sectionBox
	links    []navLink

	height     float64 // total scrollable document height
	margin     float64
	narrow     bool
	heroStatsY float64 // document-space slot for the stats line; 0 when wide
}

// buildLayout flows the document into positioned lines for the given window
// size. Narrow windows get the tighter margin and a stats slot in the hero;
// wide windows show the stats in the nav bar instead.
func buildLayout(doc *content.Document, w, h, narrowWidth float64) pageLayout {
	lay := pageLayout{narrow: w < narrowWidth, margin: wideMargin}
	if lay.narrow {
		lay.margin = narrowMargin
	}
	cols := int((w - 2*lay.margin) / charW)
	if cols < 16 {
		cols = 16
	}

	y := heroTop
	add := func(text string, x float64, role lineRole, section int) {
		lay.lines = append(lay.lines, docLine{text: text, x: x, y: y, role: role, section: section})
		y += lineH
	}

	if doc.Title != "" {
		add(doc.Title, lay.margin, roleTitle, -1)
		y += lineH
	}
	for _, para := range doc.Intro {
		for _, l := range wrap(para, cols) {
			add(l, lay.margin, roleIntro, -1)
		}
		y += lineH / 2
	}
	if lay.narrow {
		// Reserve the slot only; the live counter text is drawn straight
		// from the registry so it updates when the fetch lands.
		y += lineH / 2
		lay.heroStatsY = y
		y += lineH
	}
	y += lineH * 2

	for si := range doc.Sections {
		sec := &doc.Sections[si]
		top := y
		add(sec.Heading, lay.margin, roleHeading, si)
		y += lineH / 2
		for _, b := range sec.Blocks {
			switch b.Kind {
			case content.Code:
				y += lineH / 2
				for _, l := range b.Lines {
					add(l, lay.margin+2*charW, roleCode, si)
				}
				y += lineH / 2
			case content.List:
				itemCols := cols - 2
				if itemCols < 8 {
					itemCols = 8
				}
				for _, item := range b.Lines {
					for j, l := range wrap(item, itemCols) {
						if j == 0 {
							add("- "+l, lay.margin, roleList, si)
						} else {
							add(l, lay.margin+2*charW, roleList, si)
						}
					}
				}
				y += lineH / 2
			default:
				for _, l := range wrap(b.Text, cols) {
					add(l, lay.margin, roleBody, si)
				}
				y += lineH / 2
			}
		}
		lay.sections = append(lay.sections, sectionBox{
			id:     sec.ID,
			top:    top,
			height: y - top,
		})
		y += lineH * 2
	}

	lay.height = y + bottomPad
	lay.links = buildNavLinks(doc, w, lay.narrow)
	return lay
}

// buildNavLinks lays the section headings into the nav bar left to right,
// dropping the ones that no longer fit. Wide layouts reserve the right end of
// the bar for the stat counters.
func buildNavLinks(doc *content.Document, w float64, narrow bool) []navLink {
	brand := doc.Title
	if brand == "" {
		brand = "~"
	}
	x := 16 + textWidth(brand) + 24
	limit := w - 16
	if !narrow {
		limit -= 300
	}

	var links []navLink
	for si := range doc.Sections {
		if doc.Sections[si].Level > 2 {
			continue
		}
		label := doc.Sections[si].Heading
		lw := textWidth(label)
		if x+lw > limit {
			break
		}
		links = append(links, navLink{
			section: si,
			label:   label,
			x:       x,
			y:       (navBarH - lineH) / 2,
			w:       lw,
			h:       lineH,
		})
		x += lw + 20
	}
	return links
}
