// Package cmark adapts CommonMark parse trees from
// zombiezen.com/go/commonmark into the mdtty event vocabulary. It is the
// parser collaborator for the renderer: the renderer consumes events only
// and never sees Markdown source.
package cmark

import (
	"strings"

	"zombiezen.com/go/commonmark"

	"pkt.systems/mdtty"
)

// ParseEvents parses CommonMark source and returns the event stream for
// it. Reference links are resolved against the document's own link
// reference definitions.
func ParseEvents(source []byte) []mdtty.Event {
	blocks, refMap := commonmark.Parse(source)
	return Events(blocks, refMap)
}

// Events converts fully parsed blocks into renderer events. Constructs the
// renderer rejects (images, raw HTML) become unsupported-construct events;
// deciding what to do with them is the renderer's call, not the adapter's.
func Events(blocks []*commonmark.RootBlock, refMap commonmark.ReferenceMap) []mdtty.Event {
	c := converter{refMap: refMap}
	for _, root := range blocks {
		c.block(root.Source, &root.Block)
	}
	return c.events
}

type converter struct {
	refMap commonmark.ReferenceMap
	events []mdtty.Event
}

func (c *converter) emit(ev mdtty.Event) {
	c.events = append(c.events, ev)
}

func (c *converter) block(source []byte, block *commonmark.Block) {
	switch block.Kind() {
	case commonmark.ParagraphKind:
		c.wrap(source, block, mdtty.Paragraph())
	case commonmark.ThematicBreakKind:
		c.emit(mdtty.Start(mdtty.Rule()))
		c.emit(mdtty.End(mdtty.Rule()))
	case commonmark.ATXHeadingKind, commonmark.SetextHeadingKind:
		c.wrap(source, block, mdtty.Heading(block.HeadingLevel()))
	case commonmark.IndentedCodeBlockKind, commonmark.FencedCodeBlockKind:
		c.wrap(source, block, mdtty.CodeBlock())
	case commonmark.BlockQuoteKind:
		c.wrap(source, block, mdtty.BlockQuote())
	case commonmark.ListKind:
		tag := mdtty.BulletList()
		if block.IsOrderedList() {
			start := 1
			if first := block.Child(0).Block(); first != nil {
				if n := first.ListItemNumber(source); n >= 0 {
					start = n
				}
			}
			tag = mdtty.OrderedList(start)
		}
		c.wrap(source, block, tag)
	case commonmark.ListItemKind:
		c.emit(mdtty.Start(mdtty.ListItem()))
		tight := block.IsTightList()
		for i := 0; i < block.ChildCount(); i++ {
			child := block.Child(i)
			cb := child.Block()
			switch {
			case cb.Kind() == commonmark.ListMarkerKind:
				// The source marker; the renderer draws its own.
			case tight && cb.Kind() == commonmark.ParagraphKind:
				// Tight items carry their paragraph content inline.
				c.children(source, cb)
			default:
				c.child(source, child)
			}
		}
		c.emit(mdtty.End(mdtty.ListItem()))
	case commonmark.LinkReferenceDefinitionKind:
		// Already collected into the reference map.
	case commonmark.HTMLBlockKind:
		c.emit(mdtty.Unsupported("HTML block"))
	default:
		c.children(source, block)
	}
}

// wrap emits tag start, the block's children, and tag end.
func (c *converter) wrap(source []byte, block *commonmark.Block, tag mdtty.Tag) {
	c.emit(mdtty.Start(tag))
	c.children(source, block)
	c.emit(mdtty.End(tag))
}

func (c *converter) children(source []byte, block *commonmark.Block) {
	for i := 0; i < block.ChildCount(); i++ {
		c.child(source, block.Child(i))
	}
}

func (c *converter) child(source []byte, node commonmark.Node) {
	if b := node.Block(); b != nil {
		c.block(source, b)
		return
	}
	if in := node.Inline(); in != nil {
		c.inline(source, in)
	}
}

func (c *converter) inline(source []byte, in *commonmark.Inline) {
	switch in.Kind() {
	case commonmark.TextKind, commonmark.UnparsedKind, commonmark.CharacterReferenceKind:
		c.emit(mdtty.TextEvent(in.Text(source)))
	case commonmark.SoftLineBreakKind:
		c.emit(mdtty.SoftBreak())
	case commonmark.HardLineBreakKind:
		c.emit(mdtty.HardBreak())
	case commonmark.IndentKind:
		c.emit(mdtty.TextEvent(strings.Repeat(" ", in.IndentWidth())))
	case commonmark.InfoStringKind:
		// Language hints have no terminal rendering.
	case commonmark.EmphasisKind:
		c.wrapInline(source, in, mdtty.Emphasis())
	case commonmark.StrongKind:
		c.wrapInline(source, in, mdtty.Strong())
	case commonmark.CodeSpanKind:
		c.wrapInline(source, in, mdtty.InlineCode())
	case commonmark.LinkKind:
		def := c.linkDefinition(source, in)
		c.wrapInline(source, in, mdtty.Link(def.Destination, def.Title))
	case commonmark.AutolinkKind:
		destination := ""
		if in.ChildCount() > 0 {
			destination = in.Child(0).Text(source)
		}
		c.wrapInline(source, in, mdtty.Link(destination, ""))
	case commonmark.ImageKind:
		c.emit(mdtty.Unsupported("image"))
	case commonmark.RawHTMLKind, commonmark.HTMLTagKind:
		c.emit(mdtty.Unsupported("inline HTML"))
	}
}

// wrapInline emits tag start, the inline's renderable children, and tag
// end. Link metadata children carry no visible text and are skipped.
func (c *converter) wrapInline(source []byte, in *commonmark.Inline, tag mdtty.Tag) {
	c.emit(mdtty.Start(tag))
	for i := 0; i < in.ChildCount(); i++ {
		child := in.Child(i)
		switch child.Kind() {
		case commonmark.LinkDestinationKind, commonmark.LinkTitleKind, commonmark.LinkLabelKind:
		default:
			c.inline(source, child)
		}
	}
	c.emit(mdtty.End(tag))
}

func (c *converter) linkDefinition(source []byte, in *commonmark.Inline) commonmark.LinkDefinition {
	if ref := in.LinkReference(); ref != "" {
		return c.refMap[ref]
	}
	title := in.LinkTitle()
	return commonmark.LinkDefinition{
		Destination:  in.LinkDestination().Text(source),
		Title:        title.Text(source),
		TitlePresent: title != nil,
	}
}
