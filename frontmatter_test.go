package mdtty

import (
	"bytes"
	"testing"
)

func TestStripFrontMatterYAML(t *testing.T) {
	src := []byte("---\ntitle: Demo\ndate: 2026-08-30\n---\n# Body\n")
	got := StripFrontMatter(src)
	want := []byte("# Body\n")
	if !bytes.Equal(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestStripFrontMatterTOML(t *testing.T) {
	src := []byte("+++\ntitle = \"Demo\"\n+++\nrest\n")
	got := StripFrontMatter(src)
	if !bytes.Equal(got, []byte("rest\n")) {
		t.Errorf("got %q", got)
	}
}

func TestStripFrontMatterJSON(t *testing.T) {
	src := []byte(";;;\n{\"title\": \"Demo\"}\n;;;\nrest\n")
	got := StripFrontMatter(src)
	if !bytes.Equal(got, []byte("rest\n")) {
		t.Errorf("got %q", got)
	}
}

func TestStripFrontMatterCRLF(t *testing.T) {
	src := []byte("---\r\ntitle: Demo\r\n---\r\nbody\r\n")
	got := StripFrontMatter(src)
	if !bytes.Equal(got, []byte("body\r\n")) {
		t.Errorf("got %q", got)
	}
}

func TestStripFrontMatterBOM(t *testing.T) {
	src := []byte("\xef\xbb\xbf---\ntitle: Demo\n---\nbody\n")
	got := StripFrontMatter(src)
	if !bytes.Equal(got, []byte("body\n")) {
		t.Errorf("got %q", got)
	}
}

func TestStripFrontMatterPassthrough(t *testing.T) {
	cases := [][]byte{
		[]byte("# Just a document\n"),
		// A thematic break followed by prose is not front matter.
		[]byte("---\nnot metadata at all\n---\n"),
		// Blank second line disqualifies the block.
		[]byte("---\n\n---\nbody\n"),
		nil,
	}
	for _, src := range cases {
		got := StripFrontMatter(src)
		if !bytes.Equal(got, src) {
			t.Errorf("StripFrontMatter(%q) = %q, want unchanged", src, got)
		}
	}
}

func TestStripFrontMatterUnclosed(t *testing.T) {
	// A lone thematic break followed by prose with a colon opens like
	// front matter; without a closing delimiter the document must survive
	// intact.
	cases := [][]byte{
		[]byte("---\ntitle: Demo\nnever closed\n"),
		[]byte("---\nNote: this document matters\n\nreal content here\n"),
	}
	for _, src := range cases {
		got := StripFrontMatter(src)
		if !bytes.Equal(got, src) {
			t.Errorf("StripFrontMatter(%q) = %q, want unchanged", src, got)
		}
	}
}
