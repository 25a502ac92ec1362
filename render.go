package cherry

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/list"
)

// Render writes the document to w as an indented tree, one node per line,
// for logs and audit output. The JSON form remains the stable wire format;
// this rendering is for humans.
func (d Document) Render(w io.Writer) {
	l := list.NewWriter()
	l.SetOutputMirror(w)
	l.SetStyle(list.StyleConnectedLight)
	appendDocument(l, d)
	l.Render()
}

func appendDocument(l list.Writer, d Document) {
	l.AppendItem(renderItem(d))
	if len(d.Subexpr) == 0 {
		return
	}
	l.Indent()
	for _, sub := range d.Subexpr {
		appendDocument(l, sub)
	}
	l.UnIndent()
}

func renderItem(d Document) string {
	if d.Unit == DimensionlessUnit {
		return fmt.Sprintf("%s = %v", d.Label, d.Value)
	}
	return fmt.Sprintf("%s = %v %s", d.Label, d.Value, d.Unit)
}
