package bezier

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [Polyline] and [WritePolyline].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// Polyline converts a sequence of points, such as the samples of a curve, to
// a string of SVG path commands that connect them with straight lines.
//
// See [WritePolyline] for a version that writes to an [io.Writer] instead of
// returning a string.
func Polyline(seq iter.Seq[Point], opts SVGOptions) string {
	sb := &strings.Builder{}
	WritePolyline(sb, seq, opts)
	return sb.String()
}

// WritePolyline converts a sequence of points to a string of SVG path
// commands and writes it to w. The first point is a move, every other point
// a line.
//
// See [Polyline] for a version that returns a string instead.
func WritePolyline(w io.Writer, seq iter.Seq[Point], opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	first := true
	for pt := range seq {
		if err != nil {
			return err
		}
		if first {
			writef("M%s,%s", formatCoord(pt.X, opts), formatCoord(pt.Y, opts))
			first = false
		} else {
			writef(" L%s,%s", formatCoord(pt.X, opts), formatCoord(pt.Y, opts))
		}
	}
	return err
}

func formatCoord(n float64, opts SVGOptions) string {
	if opts.MaxPrecision <= 0 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}
