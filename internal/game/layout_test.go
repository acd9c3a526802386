package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jr-cho/backdrop/internal/content"
)

func TestWrap(t *testing.T) {
	cases := []struct {
		name string
		text string
		cols int
		want []string
	}{
		{"fits", "short line", 20, []string{"short line"}},
		{"breaks on spaces", "alpha beta gamma", 11, []string{"alpha beta", "gamma"}},
		{"hard splits long words", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"collapses whitespace", "  a   b  ", 10, []string{"a b"}},
		{"empty", "", 10, nil},
		{"counts runes not bytes", "héllo wörld", 5, []string{"héllo", "wörld"}},
		{"hard splits between runes", "日本語のテキスト", 4, []string{"日本語の", "テキスト"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, wrap(tc.text, tc.cols))
		})
	}
}

func TestBuildLayout_WideAndNarrowVariants(t *testing.T) {
	doc := content.Landing()

	wide := buildLayout(doc, 1024, 768, 768)
	assert.False(t, wide.narrow)
	assert.Equal(t, wideMargin, wide.margin)
	assert.Zero(t, wide.heroStatsY, "wide layout shows stats in the nav bar")

	narrow := buildLayout(doc, 500, 600, 768)
	assert.True(t, narrow.narrow)
	assert.Equal(t, narrowMargin, narrow.margin)
	assert.Greater(t, narrow.heroStatsY, 0.0, "narrow layout reserves a hero stats slot")
}

func TestBuildLayout_SectionsAreOrderedAndSized(t *testing.T) {
	doc := content.Landing()
	lay := buildLayout(doc, 1024, 768, 768)

	require.Len(t, lay.sections, len(doc.Sections))
	prevEnd := 0.0
	for i, sb := range lay.sections {
		assert.Equal(t, doc.Sections[i].ID, sb.id)
		assert.Greater(t, sb.height, 0.0, sb.id)
		assert.GreaterOrEqual(t, sb.top, prevEnd, "sections must not overlap")
		prevEnd = sb.top + sb.height
	}
	assert.Greater(t, lay.height, prevEnd, "document extends past the last section")
}

func TestBuildLayout_LinesStayInsideMargins(t *testing.T) {
	doc := content.Landing()
	const w = 800.0
	lay := buildLayout(doc, w, 600, 768)

	for _, l := range lay.lines {
		assert.GreaterOrEqual(t, l.x, lay.margin, "%q", l.text)
		right := l.x + textWidth(l.text)
		assert.LessOrEqual(t, right, w-lay.margin+charW, "%q overflows", l.text)
	}
}

func TestBuildNavLinks_FitWithinBar(t *testing.T) {
	doc := content.Landing()

	links := buildNavLinks(doc, 1024, false)
	require.NotEmpty(t, links)
	for _, l := range links {
		assert.LessOrEqual(t, l.x+l.w, 1024.0-16-300, "%q collides with the counters", l.label)
	}

	// A very tight bar keeps fewer links rather than overflowing.
	tight := buildNavLinks(doc, 320, true)
	assert.Less(t, len(tight), len(doc.Sections)+1)
	for _, l := range tight {
		assert.LessOrEqual(t, l.x+l.w, 320.0-16)
	}
}

func TestBuildNavLinks_MeasuresRunesNotBytes(t *testing.T) {
	doc := content.Parse([]byte("# Übersicht\n\n## Déjà Vu\n\nBody.\n"))
	links := buildNavLinks(doc, 1024, false)

	require.Len(t, links, 1)
	// "Déjà Vu" is 7 glyphs even though it is 9 bytes.
	assert.Equal(t, 7.0*charW, links[0].w)
	// Brand "Übersicht" is 9 glyphs: links start at 16 + 9*7 + 24.
	assert.Equal(t, 103.0, links[0].x)
}

func TestFrameRing_StatsOverWindow(t *testing.T) {
	r := newFrameRing(4)

	avg, worst := r.stats()
	assert.Zero(t, avg)
	assert.Zero(t, worst)

	r.record(10 * time.Millisecond)
	r.record(20 * time.Millisecond)
	r.record(30 * time.Millisecond)

	avg, worst = r.stats()
	assert.Equal(t, 20*time.Millisecond, avg)
	assert.Equal(t, 30*time.Millisecond, worst)
}

func TestFrameRing_OldSamplesFallOut(t *testing.T) {
	r := newFrameRing(2)
	r.record(100 * time.Millisecond)
	r.record(10 * time.Millisecond)
	r.record(20 * time.Millisecond) // overwrites the 100ms sample

	avg, worst := r.stats()
	assert.Equal(t, 15*time.Millisecond, avg)
	assert.Equal(t, 20*time.Millisecond, worst)
}
