package mdtty

import (
	"fmt"
	"strconv"
	"strings"
)

// EventKind discriminates Event variants.
type EventKind uint8

const (
	// EventText is a literal text run written verbatim to the sink.
	EventText EventKind = iota
	// EventSoftBreak is a soft line break within a block.
	EventSoftBreak
	// EventHardBreak is an explicit line break within a block.
	EventHardBreak
	// EventStartTag opens a structural construct.
	EventStartTag
	// EventEndTag closes a structural construct.
	EventEndTag
	// EventUnsupported marks a construct the renderer refuses to render.
	EventUnsupported
)

// Event is one unit of the structural input stream.
type Event struct {
	Kind EventKind
	// Text carries the literal text of an EventText.
	Text string
	// Tag carries the construct of an EventStartTag or EventEndTag.
	Tag Tag
	// Construct names the offending construct of an EventUnsupported.
	Construct string
}

// TextEvent returns a literal text run event.
func TextEvent(text string) Event {
	return Event{Kind: EventText, Text: text}
}

// SoftBreak returns a soft line break event.
func SoftBreak() Event { return Event{Kind: EventSoftBreak} }

// HardBreak returns a hard line break event.
func HardBreak() Event { return Event{Kind: EventHardBreak} }

// Start returns an event opening tag.
func Start(tag Tag) Event { return Event{Kind: EventStartTag, Tag: tag} }

// End returns an event closing tag.
func End(tag Tag) Event { return Event{Kind: EventEndTag, Tag: tag} }

// Unsupported returns an event marking a construct the renderer must
// reject, identified by name (for example "table" or "image").
func Unsupported(construct string) Event {
	return Event{Kind: EventUnsupported, Construct: construct}
}

// String returns a debug form of the event, one suitable for DumpEvents.
func (ev Event) String() string {
	switch ev.Kind {
	case EventText:
		return "Text(" + strconv.Quote(ev.Text) + ")"
	case EventSoftBreak:
		return "SoftBreak"
	case EventHardBreak:
		return "HardBreak"
	case EventStartTag:
		return "Start(" + ev.Tag.String() + ")"
	case EventEndTag:
		return "End(" + ev.Tag.String() + ")"
	case EventUnsupported:
		return "Unsupported(" + ev.Construct + ")"
	default:
		return fmt.Sprintf("Event(%d)", ev.Kind)
	}
}

// TagKind discriminates Tag variants.
type TagKind uint8

const (
	// TagParagraph is a paragraph block.
	TagParagraph TagKind = iota
	// TagRule is a horizontal rule.
	TagRule
	// TagHeading is a heading block with a level.
	TagHeading
	// TagBlockQuote is a quoted block.
	TagBlockQuote
	// TagCodeBlock is a preformatted code block.
	TagCodeBlock
	// TagList is an ordered or unordered list.
	TagList
	// TagListItem is a single list item.
	TagListItem
	// TagEmphasis is an emphasized inline span.
	TagEmphasis
	// TagStrong is a strongly emphasized inline span.
	TagStrong
	// TagInlineCode is an inline code span.
	TagInlineCode
	// TagLink is a hyperlink span carrying destination and title.
	TagLink
)

// Tag identifies the structural construct a start/end event pair delimits.
// It carries only the data needed to open or close that construct.
type Tag struct {
	Kind TagKind
	// Level is the heading level, 1 through 6.
	Level int
	// Ordered selects numbered items for a list tag.
	Ordered bool
	// Number is the ordinal of the first item of an ordered list.
	Number int
	// Destination and Title belong to a link tag.
	Destination string
	Title       string
}

// Paragraph returns a paragraph tag.
func Paragraph() Tag { return Tag{Kind: TagParagraph} }

// Rule returns a horizontal rule tag.
func Rule() Tag { return Tag{Kind: TagRule} }

// Heading returns a heading tag of the given level.
func Heading(level int) Tag { return Tag{Kind: TagHeading, Level: level} }

// BlockQuote returns a block quote tag.
func BlockQuote() Tag { return Tag{Kind: TagBlockQuote} }

// CodeBlock returns a code block tag.
func CodeBlock() Tag { return Tag{Kind: TagCodeBlock} }

// BulletList returns an unordered list tag.
func BulletList() Tag { return Tag{Kind: TagList} }

// OrderedList returns an ordered list tag whose first item is numbered
// start.
func OrderedList(start int) Tag {
	return Tag{Kind: TagList, Ordered: true, Number: start}
}

// ListItem returns a list item tag.
func ListItem() Tag { return Tag{Kind: TagListItem} }

// Emphasis returns an emphasis tag.
func Emphasis() Tag { return Tag{Kind: TagEmphasis} }

// Strong returns a strong emphasis tag.
func Strong() Tag { return Tag{Kind: TagStrong} }

// InlineCode returns an inline code tag.
func InlineCode() Tag { return Tag{Kind: TagInlineCode} }

// Link returns a link tag. The destination and title are rendered in the
// deferred reference list, not inline.
func Link(destination, title string) Tag {
	return Tag{Kind: TagLink, Destination: destination, Title: title}
}

// String returns a debug form of the tag.
func (t Tag) String() string {
	switch t.Kind {
	case TagParagraph:
		return "Paragraph"
	case TagRule:
		return "Rule"
	case TagHeading:
		return "Heading(" + strconv.Itoa(t.Level) + ")"
	case TagBlockQuote:
		return "BlockQuote"
	case TagCodeBlock:
		return "CodeBlock"
	case TagList:
		if t.Ordered {
			return "OrderedList(" + strconv.Itoa(t.Number) + ")"
		}
		return "BulletList"
	case TagListItem:
		return "ListItem"
	case TagEmphasis:
		return "Emphasis"
	case TagStrong:
		return "Strong"
	case TagInlineCode:
		return "InlineCode"
	case TagLink:
		var b strings.Builder
		b.WriteString("Link(")
		b.WriteString(strconv.Quote(t.Destination))
		b.WriteString(", ")
		b.WriteString(strconv.Quote(t.Title))
		b.WriteString(")")
		return b.String()
	default:
		return fmt.Sprintf("Tag(%d)", t.Kind)
	}
}
