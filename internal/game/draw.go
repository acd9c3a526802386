package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/jr-cho/backdrop/internal/chrome"
)

// Dark palette lifted from the page theme.
var (
	colTitle   = color.NRGBA{R: 230, G: 237, B: 243, A: 255}
	colBody    = color.NRGBA{R: 139, G: 148, B: 158, A: 255}
	colHeading = color.NRGBA{R: 88, G: 166, B: 255, A: 255}
	colCode    = color.NRGBA{R: 126, G: 231, B: 135, A: 255}
	colCodeBG  = color.NRGBA{R: 22, G: 27, B: 34, A: 230}
	colPanel   = color.NRGBA{R: 13, G: 17, B: 23, A: 235}
	colHover   = color.NRGBA{R: 28, G: 33, B: 40, A: 255}
	colPressed = color.NRGBA{R: 33, G: 38, B: 45, A: 255}
	colBorder  = color.NRGBA{R: 48, G: 54, B: 61, A: 255}
)

// screenCanvas adapts an ebiten image to the field's drawing surface.
type screenCanvas struct {
	dst *ebiten.Image
}

func (c screenCanvas) FillCircle(x, y, r, opacity float64) {
	a := uint8(clamp01(opacity) * 255)
	vector.DrawFilledCircle(c.dst, float32(x), float32(y), float32(r), color.NRGBA{R: 255, G: 255, B: 255, A: a}, false)
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.bg == nil {
		g.rebuildBackground()
	}
	if g.bg != nil {
		screen.DrawImage(g.bg, nil)
	}

	g.field.Draw(screenCanvas{dst: screen})
	g.drawContent(screen)
	g.drawNavBar(screen)
	g.drawBackToTop(screen)
	if g.debug {
		g.drawDebug(screen)
	}
}

// rebuildBackground renders the vertical gradient once per size change; the
// cached image makes the per-frame background a single blit.
func (g *Game) rebuildBackground() {
	if g.w <= 0 || g.h <= 0 {
		return
	}
	img := ebiten.NewImage(g.w, g.h)
	for y := 0; y < g.h; y++ {
		t := float64(y) / float64(g.h)
		c := color.RGBA{
			R: uint8(10 + 8*t),
			G: uint8(13 + 9*t),
			B: uint8(20 + 16*t),
			A: 255,
		}
		vector.DrawFilledRect(img, 0, float32(y), float32(g.w), 1, c, false)
	}
	g.bg = img
}

func (g *Game) drawContent(screen *ebiten.Image) {
	off := g.scroll.Offset()
	h := float64(g.h)

	for _, l := range g.lay.lines {
		a := 1.0
		rise := 0.0
		if l.section >= 0 && l.section < len(g.fadeAnim) {
			a = g.fadeAnim[l.section]
			if a < 0.02 {
				continue
			}
			rise = (1 - a) * 20 // sections drift up as they fade in
		}
		y := l.y - off + rise
		if y < -lineH || y > h {
			continue
		}
		if l.role == roleCode {
			w := textWidth(l.text)
			vector.DrawFilledRect(screen, float32(l.x-charW), float32(y-2), float32(w+2*charW), lineH, withAlpha(colCodeBG, a), false)
		}
		text.Draw(screen, l.text, basicfont.Face7x13, int(l.x), int(y)+11, withAlpha(roleColor(l.role), a))
		if l.role == roleTitle {
			// Double strike approximates a heavier face.
			text.Draw(screen, l.text, basicfont.Face7x13, int(l.x)+1, int(y)+11, withAlpha(colTitle, a))
		}
	}

	if g.lay.narrow && g.lay.heroStatsY > 0 {
		y := g.lay.heroStatsY - off
		if y > -lineH && y < h {
			line := fmt.Sprintf("repos %s   followers %s   languages %s",
				g.counters.Text(chrome.CounterReposMobile),
				g.counters.Text(chrome.CounterFollowersMobile),
				g.counters.Text(chrome.CounterLanguagesMobile))
			text.Draw(screen, line, basicfont.Face7x13, int(g.lay.margin), int(y)+11, colBody)
		}
	}
}

func (g *Game) drawNavBar(screen *ebiten.Image) {
	if g.navAnim < 0.02 {
		return
	}
	// The bar slides down from past the top edge.
	top := -float64(navBarH) + g.navAnim*navBarH
	w := float64(g.w)

	vector.DrawFilledRect(screen, 0, float32(top), float32(w), navBarH, colPanel, false)
	vector.DrawFilledRect(screen, 0, float32(top+navBarH-1), float32(w), 1, colBorder, false)

	baseline := int(top) + (navBarH-13)/2 + 11
	brand := g.doc.Title
	if brand == "" {
		brand = "~"
	}
	text.Draw(screen, brand, basicfont.Face7x13, 16, baseline, colTitle)
	text.Draw(screen, brand, basicfont.Face7x13, 17, baseline, colTitle)

	for i, l := range g.lay.links {
		c := colBody
		if i == g.hoverLink {
			c = colHeading
		}
		text.Draw(screen, l.label, basicfont.Face7x13, int(l.x), int(top+l.y)+11, c)
	}

	if !g.lay.narrow {
		line := fmt.Sprintf("repos %s  followers %s  languages %s",
			g.counters.Text(chrome.CounterRepos),
			g.counters.Text(chrome.CounterFollowers),
			g.counters.Text(chrome.CounterLanguages))
		x := int(w-textWidth(line)) - 16
		text.Draw(screen, line, basicfont.Face7x13, x, baseline, colBody)
	}
}

func (g *Game) drawBackToTop(screen *ebiten.Image) {
	if g.topAnim < 0.02 {
		return
	}
	x, y, w, h := g.topButtonRect()

	bg := colPanel
	if g.topPressed {
		bg = colPressed
	} else if g.hoverTop && g.topBtn.Interactable() {
		bg = colHover
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), withAlpha(bg, g.topAnim), false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, withAlpha(colBorder, g.topAnim), false)

	tx := int(x + (w-charW)/2)
	ty := int(y+(h-13)/2) + 11
	text.Draw(screen, "^", basicfont.Face7x13, tx, ty, withAlpha(colTitle, g.topAnim))
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	avg, worst := g.frames.stats()
	soundState := "off"
	if g.soundOn {
		soundState = "on"
	}
	status := fmt.Sprintf("tps %.0f  frame avg %.1fms worst %.1fms  scroll %.0f/%.0f  particles %d  sound %s",
		ebiten.ActualTPS(),
		float64(avg.Microseconds())/1000,
		float64(worst.Microseconds())/1000,
		g.scroll.Offset(), g.scroll.Max(),
		len(g.field.Particles()),
		soundState)
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, g.h-28)
}

func roleColor(r lineRole) color.NRGBA {
	switch r {
	case roleTitle:
		return colTitle
	case roleHeading:
		return colHeading
	case roleCode:
		return colCode
	default:
		return colBody
	}
}

func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(float64(c.A) * clamp01(a))
	return c
}
