package chrome

import "strconv"

// NavBar models the fixed navigation bar that appears once the page has been
// scrolled past its reveal offset and hides again above it.
type NavBar struct {
	RevealOffset float64
	visible      bool
}

func NewNavBar() *NavBar {
	return &NavBar{RevealOffset: DefaultNavRevealOffset}
}

// Update recomputes visibility from the current scroll offset.
func (n *NavBar) Update(scrollY float64) {
	n.visible = scrollY > n.RevealOffset
}

// Visible reports whether the bar is shown this frame.
func (n *NavBar) Visible() bool { return n.visible }

// BackToTop models the return-to-top control. Below its show offset the
// control is inert: it neither draws at full strength nor accepts clicks.
type BackToTop struct {
	ShowOffset   float64
	interactable bool
}

func NewBackToTop() *BackToTop {
	return &BackToTop{ShowOffset: DefaultTopShowOffset}
}

// Update recomputes interactability from the current scroll offset.
func (b *BackToTop) Update(scrollY float64) {
	b.interactable = scrollY > b.ShowOffset
}

// Interactable reports whether the control currently accepts activation.
func (b *BackToTop) Interactable() bool { return b.interactable }

// Activate starts a glide back to the top of the document. Activation while
// the control is inert is ignored and reported as false.
func (b *BackToTop) Activate(s *Scroll) bool {
	if !b.interactable {
		return false
	}
	s.GlideTo(0)
	return true
}

// FadeTarget is one observed element: its extent in document space and
// whether it has crossed the visibility threshold. Visible never reverts.
type FadeTarget struct {
	ID      string
	Top     float64
	Height  float64
	Visible bool
}

// FadeObserver tracks which observed elements have entered the viewport.
// An element becomes Visible once at least VisibleFraction of its height
// overlaps the viewport with BottomInset trimmed off the bottom edge, and
// stays Visible afterwards regardless of where the page scrolls.
type FadeObserver struct {
	VisibleFraction float64
	BottomInset     float64

	targets []*FadeTarget
	byID    map[string]*FadeTarget
}

func NewFadeObserver() *FadeObserver {
	return &FadeObserver{
		VisibleFraction: DefaultFadeFraction,
		BottomInset:     DefaultFadeBottomInset,
		byID:            make(map[string]*FadeTarget),
	}
}

// Observe registers an element at its document position, or moves it if the
// ID is already known. Re-observing after a relayout keeps the Visible flag,
// so elements revealed once do not fade back out when the window resizes.
func (o *FadeObserver) Observe(id string, top, height float64) {
	if t, ok := o.byID[id]; ok {
		t.Top = top
		t.Height = height
		return
	}
	t := &FadeTarget{ID: id, Top: top, Height: height}
	o.targets = append(o.targets, t)
	o.byID[id] = t
}

// Update checks every still-hidden target against the current viewport and
// latches the ones that have crossed the threshold.
func (o *FadeObserver) Update(scrollY, viewH float64) {
	winTop := scrollY
	winBot := scrollY + viewH - o.BottomInset
	for _, t := range o.targets {
		if t.Visible {
			continue
		}
		lo := t.Top
		if winTop > lo {
			lo = winTop
		}
		hi := t.Top + t.Height
		if winBot < hi {
			hi = winBot
		}
		overlap := hi - lo
		if overlap > 0 && overlap >= o.VisibleFraction*t.Height {
			t.Visible = true
		}
	}
}

// Visible reports whether the element with the given ID has been revealed.
// Unknown IDs are hidden.
func (o *FadeObserver) Visible(id string) bool {
	t, ok := o.byID[id]
	return ok && t.Visible
}

// Targets returns the observed elements in registration order.
func (o *FadeObserver) Targets() []*FadeTarget { return o.targets }

// Counter IDs. Each stat exists twice on the page: once in the nav bar for
// wide layouts and once in the hero block for narrow ones.
const (
	CounterRepos           = "github-repos"
	CounterFollowers       = "github-followers"
	CounterLanguages       = "github-languages"
	CounterReposMobile     = "github-repos-mobile"
	CounterFollowersMobile = "github-followers-mobile"
	CounterLanguagesMobile = "github-languages-mobile"
)

// Placeholder is shown in every counter until real values arrive.
const Placeholder = "--"

// StatCounters is the registry of named numeric displays. Writes to unknown
// IDs are dropped, mirroring how a missing page element is simply skipped.
type StatCounters struct {
	text map[string]string
}

// NewStatCounters returns the standard six counters, all showing the
// placeholder.
func NewStatCounters() *StatCounters {
	c := &StatCounters{text: make(map[string]string)}
	for _, id := range []string{
		CounterRepos, CounterFollowers, CounterLanguages,
		CounterReposMobile, CounterFollowersMobile, CounterLanguagesMobile,
	} {
		c.text[id] = Placeholder
	}
	return c
}

// Set replaces the text of one counter. Unknown IDs are ignored.
func (c *StatCounters) Set(id, text string) {
	if _, ok := c.text[id]; !ok {
		return
	}
	c.text[id] = text
}

// Text returns the current text of a counter, or the placeholder for an
// unknown ID.
func (c *StatCounters) Text(id string) string {
	if s, ok := c.text[id]; ok {
		return s
	}
	return Placeholder
}

// Apply writes fetched profile numbers into all six counters at once, so the
// wide and narrow variants can never disagree.
func (c *StatCounters) Apply(repos, followers, languages int) {
	c.Set(CounterRepos, strconv.Itoa(repos))
	c.Set(CounterReposMobile, strconv.Itoa(repos))
	c.Set(CounterFollowers, strconv.Itoa(followers))
	c.Set(CounterFollowersMobile, strconv.Itoa(followers))
	c.Set(CounterLanguages, strconv.Itoa(languages))
	c.Set(CounterLanguagesMobile, strconv.Itoa(languages))
}
