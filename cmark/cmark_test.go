package cmark

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"pkt.systems/mdtty"
)

func parse(t *testing.T, source string) []mdtty.Event {
	t.Helper()
	return ParseEvents([]byte(source))
}

// joinedText concatenates the text of every text event in events.
func joinedText(events []mdtty.Event) string {
	var b strings.Builder
	for _, ev := range events {
		if ev.Kind == mdtty.EventText {
			b.WriteString(ev.Text)
		}
	}
	return b.String()
}

func firstLinkTag(events []mdtty.Event) (mdtty.Tag, bool) {
	for _, ev := range events {
		if ev.Kind == mdtty.EventStartTag && ev.Tag.Kind == mdtty.TagLink {
			return ev.Tag, true
		}
	}
	return mdtty.Tag{}, false
}

func TestParagraph(t *testing.T) {
	got := parse(t, "hello\n")
	want := []mdtty.Event{
		mdtty.Start(mdtty.Paragraph()),
		mdtty.TextEvent("hello"),
		mdtty.End(mdtty.Paragraph()),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestHeading(t *testing.T) {
	got := parse(t, "## Title\n")
	want := []mdtty.Event{
		mdtty.Start(mdtty.Heading(2)),
		mdtty.TextEvent("Title"),
		mdtty.End(mdtty.Heading(2)),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestStrongAndEmphasis(t *testing.T) {
	got := parse(t, "**bold** and *slanted*\n")
	want := []mdtty.Event{
		mdtty.Start(mdtty.Paragraph()),
		mdtty.Start(mdtty.Strong()),
		mdtty.TextEvent("bold"),
		mdtty.End(mdtty.Strong()),
		mdtty.TextEvent(" and "),
		mdtty.Start(mdtty.Emphasis()),
		mdtty.TextEvent("slanted"),
		mdtty.End(mdtty.Emphasis()),
		mdtty.End(mdtty.Paragraph()),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestThematicBreak(t *testing.T) {
	got := parse(t, "***\n")
	want := []mdtty.Event{
		mdtty.Start(mdtty.Rule()),
		mdtty.End(mdtty.Rule()),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestTightBulletList(t *testing.T) {
	got := parse(t, "- a\n- b\n")
	want := []mdtty.Event{
		mdtty.Start(mdtty.BulletList()),
		mdtty.Start(mdtty.ListItem()),
		mdtty.TextEvent("a"),
		mdtty.End(mdtty.ListItem()),
		mdtty.Start(mdtty.ListItem()),
		mdtty.TextEvent("b"),
		mdtty.End(mdtty.ListItem()),
		mdtty.End(mdtty.BulletList()),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestOrderedListStart(t *testing.T) {
	got := parse(t, "3. x\n4. y\n")
	want := []mdtty.Event{
		mdtty.Start(mdtty.OrderedList(3)),
		mdtty.Start(mdtty.ListItem()),
		mdtty.TextEvent("x"),
		mdtty.End(mdtty.ListItem()),
		mdtty.Start(mdtty.ListItem()),
		mdtty.TextEvent("y"),
		mdtty.End(mdtty.ListItem()),
		mdtty.End(mdtty.OrderedList(3)),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestFencedCodeBlock(t *testing.T) {
	got := parse(t, "```go\nx := 1\n```\n")
	if len(got) < 2 {
		t.Fatalf("too few events: %v", got)
	}
	if got[0].Kind != mdtty.EventStartTag || got[0].Tag.Kind != mdtty.TagCodeBlock {
		t.Fatalf("first event = %s, want Start(CodeBlock)", got[0])
	}
	if last := got[len(got)-1]; last.Kind != mdtty.EventEndTag || last.Tag.Kind != mdtty.TagCodeBlock {
		t.Fatalf("last event = %s, want End(CodeBlock)", last)
	}
	// The info string is metadata and must not leak into the text.
	if text := joinedText(got); text != "x := 1\n" {
		t.Errorf("code text = %q, want %q", text, "x := 1\n")
	}
}

func TestBlockQuote(t *testing.T) {
	got := parse(t, "> quoted\n")
	want := []mdtty.Event{
		mdtty.Start(mdtty.BlockQuote()),
		mdtty.Start(mdtty.Paragraph()),
		mdtty.TextEvent("quoted"),
		mdtty.End(mdtty.Paragraph()),
		mdtty.End(mdtty.BlockQuote()),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestInlineLinkWithTitle(t *testing.T) {
	got := parse(t, "[site](http://example.com \"A title\")\n")
	tag, ok := firstLinkTag(got)
	if !ok {
		t.Fatalf("no link tag in %v", got)
	}
	if tag.Destination != "http://example.com" {
		t.Errorf("destination = %q", tag.Destination)
	}
	if tag.Title != "A title" {
		t.Errorf("title = %q", tag.Title)
	}
	if text := joinedText(got); text != "site" {
		t.Errorf("visible text = %q, want %q", text, "site")
	}
}

func TestReferenceLinkResolved(t *testing.T) {
	got := parse(t, "[site][ref]\n\n[ref]: http://example.com\n")
	tag, ok := firstLinkTag(got)
	if !ok {
		t.Fatalf("no link tag in %v", got)
	}
	if tag.Destination != "http://example.com" {
		t.Errorf("destination = %q, want resolved reference", tag.Destination)
	}
	// The definition block itself produces no events.
	if text := joinedText(got); text != "site" {
		t.Errorf("visible text = %q, want %q", text, "site")
	}
}

func TestAutolink(t *testing.T) {
	got := parse(t, "<http://example.com>\n")
	tag, ok := firstLinkTag(got)
	if !ok {
		t.Fatalf("no link tag in %v", got)
	}
	if tag.Destination != "http://example.com" {
		t.Errorf("destination = %q", tag.Destination)
	}
	if text := joinedText(got); text != "http://example.com" {
		t.Errorf("visible text = %q, want the destination", text)
	}
}

func TestSoftAndHardBreaks(t *testing.T) {
	got := parse(t, "a\nb  \nc\n")
	soft, hard := 0, 0
	for _, ev := range got {
		switch ev.Kind {
		case mdtty.EventSoftBreak:
			soft++
		case mdtty.EventHardBreak:
			hard++
		}
	}
	if soft != 1 || hard != 1 {
		t.Errorf("soft = %d, hard = %d, want 1 and 1: %v", soft, hard, got)
	}
}

func TestImageUnsupported(t *testing.T) {
	got := parse(t, "![alt](pic.png)\n")
	if !containsUnsupported(got, "image") {
		t.Errorf("no unsupported image event in %v", got)
	}
}

func TestHTMLBlockUnsupported(t *testing.T) {
	got := parse(t, "<div>\nhi\n</div>\n")
	if !containsUnsupported(got, "HTML block") {
		t.Errorf("no unsupported HTML block event in %v", got)
	}
}

func TestInlineHTMLUnsupported(t *testing.T) {
	got := parse(t, "before <b>bold</b> after\n")
	if !containsUnsupported(got, "inline HTML") {
		t.Errorf("no unsupported inline HTML event in %v", got)
	}
}

func containsUnsupported(events []mdtty.Event, construct string) bool {
	for _, ev := range events {
		if ev.Kind == mdtty.EventUnsupported && ev.Construct == construct {
			return true
		}
	}
	return false
}

func TestCodeSpan(t *testing.T) {
	got := parse(t, "use `go vet` here\n")
	want := []mdtty.Event{
		mdtty.Start(mdtty.Paragraph()),
		mdtty.TextEvent("use "),
		mdtty.Start(mdtty.InlineCode()),
		mdtty.TextEvent("go vet"),
		mdtty.End(mdtty.InlineCode()),
		mdtty.TextEvent(" here"),
		mdtty.End(mdtty.Paragraph()),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}
