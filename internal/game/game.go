// Package game runs the page: an Ebiten frame loop that owns the particle
// field backdrop, the scrolled content, the chrome state, and the one-shot
// profile stats fetch.
package game

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"github.com/jr-cho/backdrop/internal/chrome"
	"github.com/jr-cho/backdrop/internal/config"
	"github.com/jr-cho/backdrop/internal/content"
	"github.com/jr-cho/backdrop/internal/field"
	"github.com/jr-cho/backdrop/internal/sound"
	"github.com/jr-cho/backdrop/internal/stats"
)

const (
	wheelStep    = 24.0 // px per wheel notch
	lineStep     = 8.0  // px per frame while an arrow key is held
	animEase     = 0.12 // share of remaining distance per frame for UI fades
	fetchTimeout = 10 * time.Second
	frameWindow  = 64
)

// Fetcher is the slice of the stats client the game needs.
type Fetcher interface {
	Fetch(ctx context.Context) (stats.Profile, error)
}

type statsResult struct {
	profile stats.Profile
	err     error
}

// input is one frame's worth of gathered input. step consumes it, so tests
// can drive the game without a display.
type input struct {
	wheelY  float64
	cursorX int
	cursorY int
	click   bool
	release bool

	quit     bool
	open     bool
	mute     bool
	debug    bool
	lineUp   bool
	lineDown bool
	pageUp   bool
	pageDown bool
	home     bool
	end      bool
}

// Game implements ebiten.Game for the whole page.
type Game struct {
	cfg *config.Config
	doc *content.Document

	fieldCfg field.Config
	field    *field.Field
	scroll   *chrome.Scroll
	nav      *chrome.NavBar
	topBtn   *chrome.BackToTop
	fades    *chrome.FadeObserver
	counters *chrome.StatCounters
	sounds   *sound.Bank

	fetcher      Fetcher
	results      chan statsResult
	fetchStarted bool

	// hidden reports whether the page is backgrounded; swapped in tests.
	hidden func() bool
	// pickArticle shows the open-article dialog; swapped in tests.
	pickArticle func() (string, error)

	w, h int
	lay  pageLayout

	fadeAnim []float64
	navAnim  float64
	topAnim  float64

	soundOn    bool
	debug      bool
	hoverTop   bool
	hoverLink  int
	topPressed bool

	bg       *ebiten.Image
	frames   *frameRing
	lastTick time.Time
	lastErr  error
}

// New assembles the page. fetcher may be nil (stats disabled); sounds must
// not be nil, a silent Bank will do. The stats fetch, when configured, is
// kicked off immediately.
func New(cfg *config.Config, doc *content.Document, fetcher Fetcher, sounds *sound.Bank) *Game {
	g := &Game{
		cfg:         cfg,
		doc:         doc,
		fieldCfg:    field.DefaultConfig(),
		scroll:      chrome.NewScroll(),
		nav:         chrome.NewNavBar(),
		topBtn:      chrome.NewBackToTop(),
		fades:       chrome.NewFadeObserver(),
		counters:    chrome.NewStatCounters(),
		sounds:      sounds,
		fetcher:     fetcher,
		results:     make(chan statsResult, 1),
		hidden:      ebiten.IsWindowMinimized,
		pickArticle: pickArticleDialog,
		hoverLink:   -1,
		soundOn:     sounds.Enabled(),
		debug:       cfg.Debug,
		frames:      newFrameRing(frameWindow),
	}
	g.field = field.New(g.fieldCfg, rand.New(rand.NewSource(time.Now().UnixNano())))
	g.resize(cfg.WindowWidth, cfg.WindowHeight)
	g.startStatsFetch()
	return g
}

// Layout tracks the outside size; the window is resizable and a size change
// reshapes the field and reflows the content in the same frame.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) resize(w, h int) {
	g.w, g.h = w, h
	g.field.Resize(float64(w), float64(h))
	g.relayout()
	g.bg = nil // gradient is rebuilt at the new size on the next draw
}

// relayout reflows the document and re-registers every section with the fade
// observer. Re-observing keeps sections that were already revealed visible.
func (g *Game) relayout() {
	g.lay = buildLayout(g.doc, float64(g.w), float64(g.h), g.fieldCfg.NarrowWidth)
	g.scroll.SetLimits(g.lay.height, float64(g.h))
	for _, sb := range g.lay.sections {
		g.fades.Observe(sb.id, sb.top, sb.height)
	}
	if len(g.fadeAnim) != len(g.lay.sections) {
		anim := make([]float64, len(g.lay.sections))
		copy(anim, g.fadeAnim)
		g.fadeAnim = anim
	}
}

func (g *Game) Update() error {
	now := time.Now()
	if !g.lastTick.IsZero() {
		g.frames.record(now.Sub(g.lastTick))
	}
	g.lastTick = now
	return g.step(readInput())
}

func readInput() input {
	_, wheelY := ebiten.Wheel()
	cx, cy := ebiten.CursorPosition()
	return input{
		wheelY:   wheelY,
		cursorX:  cx,
		cursorY:  cy,
		click:    inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		release:  inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		quit:     inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ),
		open:     inpututil.IsKeyJustPressed(ebiten.KeyO),
		mute:     inpututil.IsKeyJustPressed(ebiten.KeyM),
		debug:    inpututil.IsKeyJustPressed(ebiten.KeyD),
		lineUp:   ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		lineDown: ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		pageUp:   inpututil.IsKeyJustPressed(ebiten.KeyPageUp),
		pageDown: inpututil.IsKeyJustPressed(ebiten.KeyPageDown),
		home:     inpututil.IsKeyJustPressed(ebiten.KeyHome),
		end:      inpututil.IsKeyJustPressed(ebiten.KeyEnd),
	}
}

// step advances the page by one frame from a gathered input snapshot.
func (g *Game) step(in input) error {
	if in.quit {
		return ebiten.Termination
	}
	if in.debug {
		g.debug = !g.debug
	}
	if in.mute && g.sounds.Enabled() {
		g.soundOn = !g.soundOn
	}
	if in.open {
		g.openArticle()
	}

	g.handlePointer(in)
	g.handleScrollKeys(in)
	g.scroll.Step()

	off := g.scroll.Offset()
	g.nav.Update(off)
	g.topBtn.Update(off)
	g.fades.Update(off, float64(g.h))
	g.stepAnims()
	g.drainStats()

	// The field pauses while the page is backgrounded; chrome and scroll
	// state keep working so the page is current the moment it returns.
	if !g.hidden() {
		g.field.Step()
	}
	return nil
}

func (g *Game) handleScrollKeys(in input) {
	if in.wheelY != 0 {
		g.scroll.ScrollBy(-in.wheelY * wheelStep)
	}
	if in.lineUp {
		g.scroll.ScrollBy(-lineStep)
	}
	if in.lineDown {
		g.scroll.ScrollBy(lineStep)
	}
	page := float64(g.h) - 2*navBarH
	if in.pageUp {
		g.scroll.GlideTo(g.scroll.Offset() - page)
	}
	if in.pageDown {
		g.scroll.GlideTo(g.scroll.Offset() + page)
	}
	if in.home {
		g.scroll.GlideTo(0)
	}
	if in.end {
		g.scroll.GlideTo(g.scroll.Max())
	}
}

func (g *Game) handlePointer(in input) {
	cx, cy := float64(in.cursorX), float64(in.cursorY)

	bx, by, bw, bh := g.topButtonRect()
	g.hoverTop = cx >= bx && cx <= bx+bw && cy >= by && cy <= by+bh

	// Links are hit-tested where the sliding bar actually draws them, so a
	// click cannot land on a link that is still mostly off screen.
	g.hoverLink = -1
	if g.nav.Visible() && g.navAnim >= 0.02 {
		barTop := -float64(navBarH) + g.navAnim*navBarH
		for i, l := range g.lay.links {
			ly := barTop + l.y
			if cx >= l.x && cx <= l.x+l.w && cy >= ly && cy <= ly+l.h {
				g.hoverLink = i
				break
			}
		}
	}

	if in.click {
		switch {
		case g.hoverTop && g.topBtn.Interactable():
			g.topPressed = true
		case g.hoverLink >= 0:
			g.goToSection(g.lay.links[g.hoverLink].section)
		}
	}
	if in.release {
		if g.topPressed && g.hoverTop {
			if g.topBtn.Activate(g.scroll) {
				g.playClick()
			}
		}
		g.topPressed = false
	}
}

// GoToAnchor resolves an in-page fragment and glides to its section. Unknown
// fragments are ignored, the way a dead link scrolls nowhere.
func (g *Game) GoToAnchor(frag string) {
	if si, ok := g.doc.Anchor(frag); ok {
		g.goToSection(si)
	}
}

// goToSection glides the viewport so the section heading sits just below the
// fixed nav bar.
func (g *Game) goToSection(si int) {
	if si < 0 || si >= len(g.lay.sections) {
		return
	}
	g.scroll.GlideTo(g.lay.sections[si].top - anchorPad)
	g.playBlip()
}

func (g *Game) stepAnims() {
	for i := range g.fadeAnim {
		target := 0.0
		if g.fades.Visible(g.lay.sections[i].id) {
			target = 1
		}
		g.fadeAnim[i] += (target - g.fadeAnim[i]) * animEase
	}

	navTarget := 0.0
	if g.nav.Visible() {
		navTarget = 1
	}
	g.navAnim += (navTarget - g.navAnim) * animEase

	topTarget := 0.0
	if g.topBtn.Interactable() {
		topTarget = 1
	}
	g.topAnim += (topTarget - g.topAnim) * animEase
}

func (g *Game) startStatsFetch() {
	if g.fetcher == nil || g.fetchStarted {
		return
	}
	g.fetchStarted = true
	fetch := g.fetcher
	results := g.results
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		profile, err := fetch.Fetch(ctx)
		results <- statsResult{profile: profile, err: err}
	}()
}

func (g *Game) drainStats() {
	select {
	case res := <-g.results:
		if res.err != nil {
			// Counters keep their placeholders; the page shows no error.
			slog.Warn("profile stats unavailable", "error", res.err)
			return
		}
		g.counters.Apply(res.profile.Repos, res.profile.Followers, res.profile.Languages)
		slog.Debug("profile stats applied",
			"repos", res.profile.Repos,
			"followers", res.profile.Followers,
			"languages", res.profile.Languages,
		)
	default:
	}
}

func (g *Game) openArticle() {
	path, err := g.pickArticle()
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return
		}
		g.lastErr = err
		slog.Warn("article dialog failed", "error", err)
		return
	}
	if path == "" {
		return
	}
	doc, err := content.Load(path)
	if err != nil {
		g.lastErr = err
		slog.Warn("article load failed", "path", path, "error", err)
		return
	}
	g.setDocument(doc)
	slog.Info("article loaded", "path", path, "title", doc.Title)
}

// setDocument swaps in a new document: fresh fade state, scroll back to the
// top, full reflow.
func (g *Game) setDocument(doc *content.Document) {
	g.doc = doc
	g.fades = chrome.NewFadeObserver()
	g.fadeAnim = nil
	g.scroll.JumpTo(0)
	g.relayout()
}

func pickArticleDialog() (string, error) {
	return zenity.SelectFile(
		zenity.Title("Open Article"),
		zenity.FileFilters{{
			Name:     "Markdown",
			Patterns: []string{"*.md", "*.markdown"},
		}},
	)
}

// topButtonRect is the screen-space back-to-top button box.
func (g *Game) topButtonRect() (x, y, w, h float64) {
	const size = 44
	return float64(g.w) - size - 20, float64(g.h) - size - 20, size, size
}

func (g *Game) playClick() {
	if g.soundOn {
		g.sounds.Click()
	}
}

func (g *Game) playBlip() {
	if g.soundOn {
		g.sounds.Blip()
	}
}
