package mdtty

import (
	"fmt"
	"io"
	"strings"
)

const (
	defaultColumns = 80

	quoteIndent   = 4
	bulletIndent  = 2
	orderedIndent = 4

	ruleRune     = "─" // ─
	headingTick  = "┄" // ┄
	bulletMarker = "• "
)

// RenderRequest configures Render.
type RenderRequest struct {
	Events  []Event
	Writer  io.Writer
	Columns int
	Theme   Theme
	Options []RenderOption
}

// Render renders a finite event stream to the request's writer. Columns
// sizes horizontal rules only; no wrapping is enforced. A nil theme picks
// the default theme.
func Render(req RenderRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	r := NewRenderer(req.Writer, req.Columns, req.Theme, req.Options...)
	for _, ev := range req.Events {
		if err := r.WriteEvent(ev); err != nil {
			return err
		}
	}
	return r.Flush()
}

// DumpEvents writes the debug representation of each event, one per line,
// with no styling. Useful for tracing an input stream independent of
// rendering.
func DumpEvents(w io.Writer, events []Event) error {
	for _, ev := range events {
		if _, err := fmt.Fprintf(w, "%s\n", ev); err != nil {
			return err
		}
	}
	return nil
}

// listFrame records the kind of one open list; ordered frames carry the
// ordinal of their next item.
type listFrame struct {
	ordered bool
	next    int
}

// pendingLink is a deferred link reference awaiting flush.
type pendingLink struct {
	index       int
	destination string
	title       string
}

// Renderer transduces events into styled terminal output. It owns its sink
// for the duration of a render: one Renderer per event stream, discarded
// after the final Flush.
type Renderer struct {
	w       io.Writer
	columns int
	styles  Styles
	osc8    bool

	// active holds every style token currently in effect, in push order.
	// Joined, the stack reproduces the styling at the cursor; it is
	// reissued in full after each line break because the reset token
	// clears everything.
	active        []string
	emphasisLevel int
	indentLevel   int
	inline        bool
	lists         []listFrame
	pending       []pendingLink
	nextLinkIndex int
	lastText      string
	haveText      bool
}

// NewRenderer creates a renderer writing to w. Columns sizes horizontal
// rules; values below 1 fall back to 80. A nil theme picks the default
// theme.
func NewRenderer(w io.Writer, columns int, theme Theme, opts ...RenderOption) *Renderer {
	cfg := renderConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if theme == nil {
		theme = DefaultTheme()
	}
	if columns <= 0 {
		columns = defaultColumns
	}
	return &Renderer{
		w:       w,
		columns: columns,
		styles:  theme.Styles(),
		osc8:    cfg.osc8,
		// Rendering starts inline; blocks separate themselves.
		inline:        true,
		nextLinkIndex: 1,
	}
}

// WriteEvent processes a single event. Events must arrive in document
// order; each is consumed exactly once. Errors abort the render: either a
// sink write failed, or the stream contained an unsupported construct or
// violated its structural contract.
func (r *Renderer) WriteEvent(ev Event) error {
	switch ev.Kind {
	case EventText:
		if err := r.writeString(ev.Text); err != nil {
			return err
		}
		r.lastText = ev.Text
		r.haveText = true
		return nil
	case EventSoftBreak, EventHardBreak:
		return r.newlineAndIndent()
	case EventStartTag:
		return r.startTag(ev.Tag)
	case EventEndTag:
		return r.endTag(ev.Tag)
	case EventUnsupported:
		return &UnsupportedError{Construct: ev.Construct}
	default:
		return fmt.Errorf("unknown event kind %d", ev.Kind)
	}
}

// Flush writes any link references still pending. It runs once at stream
// end and is a no-op when nothing is pending.
func (r *Renderer) Flush() error {
	return r.flushPendingLinks()
}

func (r *Renderer) writeString(s string) error {
	_, err := io.WriteString(r.w, s)
	return err
}

// startInlineText begins a new inline run, separating it from a preceding
// block with a line break and indentation.
func (r *Renderer) startInlineText() error {
	if !r.inline {
		if err := r.newlineAndIndent(); err != nil {
			return err
		}
	}
	r.inline = true
	return nil
}

// endInlineText closes the current inline run, if any, with a line break
// and returns to block mode.
func (r *Renderer) endInlineText() error {
	if r.inline {
		if err := r.newline(); err != nil {
			return err
		}
	}
	r.inline = false
	return nil
}

// flushStyles reissues every active style in push order.
func (r *Renderer) flushStyles() error {
	return r.writeString(strings.Join(r.active, ""))
}

// newline resets styling, breaks the line, and reissues the active styles.
// Terminal styling does not persist across lines in this model.
func (r *Renderer) newline() error {
	if err := r.writeString(r.styles.Reset.Prefix + "\n"); err != nil {
		return err
	}
	return r.flushStyles()
}

func (r *Renderer) newlineAndIndent() error {
	if err := r.newline(); err != nil {
		return err
	}
	return r.indent()
}

func (r *Renderer) indent() error {
	return r.writeString(strings.Repeat(" ", r.indentLevel))
}

// pushStyle activates a style: the token joins the stack and is written
// immediately.
func (r *Renderer) pushStyle(style Style) error {
	r.active = append(r.active, style.Prefix)
	return r.writeString(style.Prefix)
}

// popStyle removes the most recent style, then resets and reissues the
// remainder: the reset token clears every active style, so styles that
// outlive the popped one must be written again.
func (r *Renderer) popStyle() error {
	r.dropStyle()
	if err := r.writeString(r.styles.Reset.Prefix); err != nil {
		return err
	}
	return r.flushStyles()
}

// dropStyle removes the most recent style without touching the sink. The
// next line break reconciles the terminal.
func (r *Renderer) dropStyle() {
	if n := len(r.active); n > 0 {
		r.active = r.active[:n-1]
	}
}

// enableEmphasis enters one level of emphasis. Odd depths slant, even
// depths unslant, so nested emphasis alternates instead of stacking.
func (r *Renderer) enableEmphasis() error {
	r.emphasisLevel++
	if r.emphasisLevel%2 == 1 {
		return r.pushStyle(r.styles.Italic)
	}
	return r.pushStyle(r.styles.NoItalic)
}

// addLink queues a link reference and returns its index.
func (r *Renderer) addLink(destination, title string) int {
	index := r.nextLinkIndex
	r.nextLinkIndex++
	r.pending = append(r.pending, pendingLink{
		index:       index,
		destination: destination,
		title:       title,
	})
	return index
}

// flushPendingLinks writes all queued link references in enqueue order and
// empties the queue. Called before each heading and once at stream end.
func (r *Renderer) flushPendingLinks() error {
	if len(r.pending) == 0 {
		return nil
	}
	if err := r.newline(); err != nil {
		return err
	}
	if err := r.pushStyle(r.styles.Link); err != nil {
		return err
	}
	for len(r.pending) > 0 {
		link := r.pending[0]
		r.pending = r.pending[1:]
		if _, err := fmt.Fprintf(r.w, "[%d]: %s %s", link.index, link.destination, link.title); err != nil {
			return err
		}
		if err := r.newline(); err != nil {
			return err
		}
	}
	return r.popStyle()
}

func (r *Renderer) startTag(tag Tag) error {
	switch tag.Kind {
	case TagParagraph:
		return r.startInlineText()
	case TagRule:
		if err := r.startInlineText(); err != nil {
			return err
		}
		if err := r.pushStyle(r.styles.Rule); err != nil {
			return err
		}
		return r.writeString(strings.Repeat(ruleRune, r.columns))
	case TagHeading:
		// Flush pending links first so references stay close to the
		// text that introduced them.
		if err := r.flushPendingLinks(); err != nil {
			return err
		}
		if err := r.startInlineText(); err != nil {
			return err
		}
		if err := r.pushStyle(r.styles.Bold); err != nil {
			return err
		}
		if err := r.pushStyle(r.styles.Heading); err != nil {
			return err
		}
		if tag.Level > 1 {
			return r.writeString(strings.Repeat(headingTick, tag.Level-1))
		}
		return nil
	case TagBlockQuote:
		r.indentLevel += quoteIndent
		if err := r.startInlineText(); err != nil {
			return err
		}
		if err := r.pushStyle(r.styles.Quote); err != nil {
			return err
		}
		return r.enableEmphasis()
	case TagCodeBlock:
		if err := r.startInlineText(); err != nil {
			return err
		}
		return r.pushStyle(r.styles.Code)
	case TagList:
		frame := listFrame{ordered: tag.Ordered}
		if tag.Ordered {
			frame.next = tag.Number
		}
		r.lists = append(r.lists, frame)
		return r.newline()
	case TagListItem:
		if len(r.lists) == 0 {
			return ErrListItemOutsideList
		}
		if err := r.indent(); err != nil {
			return err
		}
		// A list item always starts a fresh inline run.
		r.inline = true
		top := &r.lists[len(r.lists)-1]
		if top.ordered {
			if _, err := fmt.Fprintf(r.w, "%2d. ", top.next); err != nil {
				return err
			}
			top.next++
			r.indentLevel += orderedIndent
		} else {
			if err := r.writeString(bulletMarker); err != nil {
				return err
			}
			r.indentLevel += bulletIndent
		}
		return nil
	case TagEmphasis:
		return r.enableEmphasis()
	case TagStrong:
		return r.pushStyle(r.styles.Bold)
	case TagInlineCode:
		return r.pushStyle(r.styles.Code)
	case TagLink:
		// Nothing to do yet; the reference is rendered at the end tag,
		// once the visible text is known.
		return nil
	default:
		return fmt.Errorf("unknown tag kind %d", tag.Kind)
	}
}

func (r *Renderer) endTag(tag Tag) error {
	switch tag.Kind {
	case TagParagraph:
		return r.endInlineText()
	case TagRule:
		r.dropStyle()
		return r.endInlineText()
	case TagHeading:
		r.dropStyle()
		r.dropStyle()
		return r.endInlineText()
	case TagBlockQuote:
		r.indentLevel -= quoteIndent
		r.emphasisLevel--
		r.dropStyle()
		if err := r.popStyle(); err != nil {
			return err
		}
		return r.endInlineText()
	case TagCodeBlock:
		if err := r.popStyle(); err != nil {
			return err
		}
		return r.endInlineText()
	case TagList:
		if n := len(r.lists); n > 0 {
			r.lists = r.lists[:n-1]
		}
		return r.endInlineText()
	case TagListItem:
		// Undo the indentation of the frame still on top; a frame may
		// be absent when the stream is malformed, then nothing changes.
		if n := len(r.lists); n > 0 {
			if r.lists[n-1].ordered {
				r.indentLevel -= orderedIndent
			} else {
				r.indentLevel -= bulletIndent
			}
		}
		return r.endInlineText()
	case TagEmphasis:
		if err := r.popStyle(); err != nil {
			return err
		}
		r.emphasisLevel--
		return nil
	case TagStrong, TagInlineCode:
		return r.popStyle()
	case TagLink:
		if r.haveText && r.lastText == tag.Destination {
			// The destination is already in the text; an inline
			// autolink needs no reference.
			return nil
		}
		index := r.addLink(tag.Destination, tag.Title)
		if r.osc8 {
			if err := r.writeString(osc8Anchor(tag.Destination)); err != nil {
				return err
			}
		}
		if err := r.pushStyle(r.styles.Link); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(r.w, "[%d]", index); err != nil {
			return err
		}
		if err := r.popStyle(); err != nil {
			return err
		}
		if r.osc8 {
			return r.writeString(osc8Close)
		}
		return nil
	default:
		// Remaining end tags carry no closing behavior.
		return nil
	}
}
