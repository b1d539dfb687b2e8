package mdtty

import "errors"

// ErrListItemOutsideList reports a list item event arriving with no open
// list. The event stream violated its structural contract.
var ErrListItemOutsideList = errors.New("list item outside of any list")

// UnsupportedError reports an input construct the renderer deliberately
// refuses to render (tables, images, footnotes, raw HTML). Rendering stops
// before any output is produced for the construct.
type UnsupportedError struct {
	Construct string
}

func (e *UnsupportedError) Error() string {
	return "unsupported construct: " + e.Construct
}
