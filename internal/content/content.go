// Package content loads the page copy from Markdown and splits it into the
// title, intro, and anchored sections the renderer lays out.
package content

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

//go:embed landing.md
var landingSource []byte

// BlockKind tells the renderer how to lay a block out.
type BlockKind int

const (
	Paragraph BlockKind = iota
	Code
	List
)

// Block is one renderable unit inside a section.
type Block struct {
	Kind  BlockKind
	Text  string   // Paragraph copy
	Lang  string   // Code fence language, may be empty
	Lines []string // Code lines or List items
}

// Section is an anchored slice of the document, one per heading.
type Section struct {
	ID      string
	Heading string
	Level   int
	Blocks  []Block
}

// Document is the parsed page copy.
type Document struct {
	Title    string
	Intro    []string
	Sections []Section
}

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// Landing returns the embedded landing page document.
func Landing() *Document {
	return Parse(landingSource)
}

// Load parses a Markdown article from disk.
func Load(path string) (*Document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read article: %w", err)
	}
	doc := Parse(src)
	if doc.Title == "" && len(doc.Intro) == 0 && len(doc.Sections) == 0 {
		return nil, fmt.Errorf("article %s has no readable content", path)
	}
	return doc, nil
}

// Parse splits Markdown source into the structure the page draws. The first
// heading, when it is level 1, becomes the title; copy before the next
// heading is intro; every later heading starts a section whose auto-generated
// slug doubles as the in-page anchor.
func Parse(src []byte) *Document {
	root := md.Parser().Parse(text.NewReader(src))

	doc := &Document{}
	var cur *Section

	flush := func() {
		if cur != nil {
			doc.Sections = append(doc.Sections, *cur)
			cur = nil
		}
	}
	add := func(b Block) {
		if cur != nil {
			cur.Blocks = append(cur.Blocks, b)
			return
		}
		// Before the first section only paragraphs have a slot: they are
		// the intro copy. Stray code or lists up there are dropped.
		if b.Kind == Paragraph {
			doc.Intro = append(doc.Intro, b.Text)
		}
	}

	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			if node.Level == 1 && doc.Title == "" && cur == nil && len(doc.Sections) == 0 {
				doc.Title = flatten(node, src)
				continue
			}
			flush()
			cur = &Section{
				ID:      headingID(node),
				Heading: flatten(node, src),
				Level:   node.Level,
			}
		case *ast.FencedCodeBlock:
			add(Block{
				Kind:  Code,
				Lang:  string(node.Language(src)),
				Lines: fenceLines(node, src),
			})
		case *ast.List:
			b := Block{Kind: List}
			for item := node.FirstChild(); item != nil; item = item.NextSibling() {
				b.Lines = append(b.Lines, flatten(item, src))
			}
			add(b)
		default:
			// Paragraphs and anything else with inline children flatten to
			// plain text; thematic breaks flatten to nothing and vanish.
			if txt := flatten(n, src); txt != "" {
				add(Block{Kind: Paragraph, Text: txt})
			}
		}
	}
	flush()
	return doc
}

// flatten joins the inline text under a node. Soft line breaks become spaces,
// so a paragraph wrapped across source lines does not fuse the words at the
// break.
func flatten(n ast.Node, src []byte) string {
	var sb strings.Builder
	var walk func(ast.Node)
	walk = func(n ast.Node) {
		switch t := n.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}
			return
		case *ast.String:
			sb.Write(t.Value)
			return
		}
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}

// Anchor resolves an in-page link fragment ("#projects" or "projects") to the
// index of its section.
func (d *Document) Anchor(frag string) (int, bool) {
	id := strings.TrimPrefix(frag, "#")
	for i := range d.Sections {
		if d.Sections[i].ID == id {
			return i, true
		}
	}
	return 0, false
}

func headingID(h *ast.Heading) string {
	v, ok := h.AttributeString("id")
	if !ok {
		return ""
	}
	id, ok := v.([]byte)
	if !ok {
		return ""
	}
	return string(id)
}

func fenceLines(node *ast.FencedCodeBlock, src []byte) []string {
	lines := make([]string, 0, node.Lines().Len())
	for i := 0; i < node.Lines().Len(); i++ {
		seg := node.Lines().At(i)
		lines = append(lines, strings.TrimRight(string(seg.Value(src)), "\n"))
	}
	return lines
}
