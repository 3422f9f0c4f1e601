package dual

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Report writes the value and one derivative line per declared variable.
//
// For a dependent value:
//
//	f = 6
//	df/dx = 3
//	df/dy = 2
//
// For an independent variable x:
//
//	x = 2
//	dx/dx = 1
//	dx/dy = 0
//
// The output is meant for people, not for parsing.
func (a *Value) Report(w io.Writer) error {
	label := "f"
	if a.IsIndependent() {
		label = a.Name()
	}

	if _, err := fmt.Fprintf(w, "%s = %s\n", label, formatFloat(a.value)); err != nil {
		return err
	}
	for i, name := range a.sess.Names() {
		if i >= len(a.grad) {
			break
		}
		if _, err := fmt.Fprintf(w, "d%s/d%s = %s\n", label, name, formatFloat(a.grad[i])); err != nil {
			return err
		}
	}
	return nil
}

// String returns "(value, [g0 g1 ...])".
func (a *Value) String() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(formatFloat(a.value))
	b.WriteString(", [")
	for i, g := range a.grad {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(formatFloat(g))
	}
	b.WriteString("])")
	return b.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
