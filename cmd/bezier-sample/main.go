// Command bezier-sample samples a Bézier curve at a fixed parametric step and
// prints the resulting points, either as text or as SVG path data.
//
// Control points are given as x,y arguments or in a YAML document:
//
//	step: 0.25
//	points:
//	  - [0, 0]
//	  - [0.5, 0.5]
//	  - [1, 0]
//
// -viewbox and -flip-y transform the control points before sampling, for
// example to place a curve designed in the unit square onto an SVG canvas.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"honnef.co/go/bezier"
)

const defaultStep = 0.1

type document struct {
	Step   *float64    `yaml:"step"`
	Points [][]float64 `yaml:"points"`
}

func (doc *document) curve() (*bezier.Curve[bezier.Point], error) {
	c := bezier.New[bezier.Point]()
	for i, coords := range doc.Points {
		if len(coords) != 2 {
			return nil, fmt.Errorf("point %d: got %d coordinates, want 2", i, len(coords))
		}
		c.Append(bezier.Pt(coords[0], coords[1]))
	}
	return c, nil
}

func readDocument(path string) (*document, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var doc document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &doc, nil
}

// parseFloats parses n comma-separated numbers. syntax describes them in
// error messages.
func parseFloats(s string, n int, syntax string) ([]float64, error) {
	fields := strings.Split(s, ",")
	if len(fields) != n {
		return nil, fmt.Errorf("%q: want %s", s, syntax)
	}
	out := make([]float64, n)
	for i, field := range fields {
		f, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

// transform returns the transform from curve space to output space.
func transform(viewBox string, flipY bool) (bezier.Affine, error) {
	aff := bezier.Identity
	if viewBox != "" {
		n, err := parseFloats(viewBox, 4, "x0,y0,x1,y1")
		if err != nil {
			return bezier.Affine{}, fmt.Errorf("-viewbox: %w", err)
		}
		aff = bezier.MapUnitSquare(bezier.Rect{X0: n[0], Y0: n[1], X1: n[2], Y1: n[3]})
	}
	if flipY {
		aff = bezier.FlipY.Mul(aff)
	}
	return aff, nil
}

func run(args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("bezier-sample", flag.ContinueOnError)
	file := flags.String("f", "", "YAML document with control points (- for stdin)")
	step := flags.Float64("step", defaultStep, "parametric step, overrides the document's step")
	format := flags.String("format", "text", "output format: text or svg")
	precision := flags.Int("precision", 0, "maximum number of decimals in svg output (0 for exact)")
	viewBox := flags.String("viewbox", "", "map the unit square onto the rectangle x0,y0,x1,y1")
	flipY := flags.Bool("flip-y", false, "negate y coordinates, for y-down outputs such as SVG")
	if err := flags.Parse(args); err != nil {
		return err
	}
	aff, err := transform(*viewBox, *flipY)
	if err != nil {
		return err
	}

	doc := &document{}
	if *file != "" {
		doc, err = readDocument(*file)
		if err != nil {
			return err
		}
	}
	for _, arg := range flags.Args() {
		coords, err := parseFloats(arg, 2, "x,y")
		if err != nil {
			return err
		}
		doc.Points = append(doc.Points, coords)
	}
	// An explicit step, even an invalid one, wins over the document's.
	sampleStep := defaultStep
	if doc.Step != nil {
		sampleStep = *doc.Step
	}
	flags.Visit(func(f *flag.Flag) {
		if f.Name == "step" {
			sampleStep = *step
		}
	})

	c, err := doc.curve()
	if err != nil {
		return err
	}
	c = bezier.TransformCurve(c, aff)
	seq, err := c.Samples(sampleStep)
	if err != nil {
		return err
	}

	switch *format {
	case "text":
		for pt := range seq {
			if _, err := fmt.Fprintf(stdout, "%g %g\n", pt.X, pt.Y); err != nil {
				return err
			}
		}
		return nil
	case "svg":
		if err := bezier.WritePolyline(stdout, seq, bezier.SVGOptions{MaxPrecision: *precision}); err != nil {
			return err
		}
		_, err := fmt.Fprintln(stdout)
		return err
	default:
		return fmt.Errorf("unknown format %q", *format)
	}
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
