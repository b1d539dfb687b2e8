// Package mdtty renders structural document events to ANSI for terminal
// display.
//
// The package is a single-pass transducer: it consumes an ordered stream of
// typed events (paragraphs, headings, lists, emphasis, links, code, rules)
// and writes styled text to an io.Writer. It does not parse document syntax
// itself; a parser collaborator such as the cmark subpackage produces the
// event stream.
//
// Core properties:
//   - Single forward pass over the event stream, finite or unbounded
//   - Stack-tracked styles, reissued in full after every line break
//   - Link destinations deferred to a reference list near their text
//   - Advisory column width; rules are sized to it, text is never wrapped
//
// Example:
//
//	events := []mdtty.Event{
//		mdtty.Start(mdtty.Paragraph()),
//		mdtty.TextEvent("Events in, ANSI out."),
//		mdtty.End(mdtty.Paragraph()),
//	}
//	err := mdtty.Render(mdtty.RenderRequest{
//		Events:  events,
//		Writer:  os.Stdout,
//		Columns: 80,
//		Theme:   mdtty.DefaultTheme(),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Tables, images, footnotes, and raw HTML are deliberately unsupported and
// surface as *UnsupportedError rather than degraded output.
package mdtty
