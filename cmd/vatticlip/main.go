// Command vatticlip is a thin demonstrator over the vatticlip
// library: it reads a subject and a clip path from flags, scales them
// to integer coordinates, runs one Boolean set operation, and prints
// the result.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/kestrelgeo/vatticlip"
	"github.com/spf13/cobra"
)

var (
	flagSubject string
	flagClip    string
	flagOp      string
	flagFill    string
	flagScale   float64
	flagWKT     bool
	flagVerbose bool
)

func main() {
	root := &cobra.Command{
		Use:   "vatticlip",
		Short: "Boolean set operations over 2D polygons and polylines",
		RunE:  runClip,
	}
	root.Flags().StringVar(&flagSubject, "subject", "", "subject path as \"x1,y1 x2,y2 ...\"")
	root.Flags().StringVar(&flagClip, "clip", "", "clip path as \"x1,y1 x2,y2 ...\"")
	root.Flags().StringVar(&flagOp, "op", "intersection", "intersection|union|difference|xor")
	root.Flags().StringVar(&flagFill, "fill", "nonzero", "evenodd|nonzero|positive|negative")
	root.Flags().Float64Var(&flagScale, "scale", 1, "multiplier applied before rounding to integer coordinates")
	root.Flags().BoolVar(&flagWKT, "wkt", false, "print result as WKT MULTIPOLYGON text instead of JSON")
	root.Flags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")
	root.MarkFlagRequired("subject")
	root.MarkFlagRequired("clip")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runClip(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	subjectF, err := parsePointsD(flagSubject)
	if err != nil {
		return fmt.Errorf("subject: %w", err)
	}
	clipF, err := parsePointsD(flagClip)
	if err != nil {
		return fmt.Errorf("clip: %w", err)
	}

	subject, err := vatticlip.ScalePathD(subjectF, flagScale)
	if err != nil {
		return err
	}
	clip, err := vatticlip.ScalePathD(clipF, flagScale)
	if err != nil {
		return err
	}

	clipType, err := parseClipType(flagOp)
	if err != nil {
		return err
	}
	fillRule, err := parseFillRule(flagFill)
	if err != nil {
		return err
	}

	c := vatticlip.NewClipper64()
	c.AddPath(subject, vatticlip.PtSubject, false)
	c.AddPath(clip, vatticlip.PtClip, false)

	closed, open, ok := c.Execute(clipType, fillRule)
	if !ok {
		return fmt.Errorf("vatticlip: execute failed, see logs")
	}

	if flagWKT {
		printWKT(closed)
		return nil
	}
	return printJSON(closed, open)
}

func parsePointsD(s string) ([]vatticlip.PointD, error) {
	fields := strings.Fields(s)
	pts := make([]vatticlip.PointD, 0, len(fields))
	for _, f := range fields {
		xy := strings.SplitN(f, ",", 2)
		if len(xy) != 2 {
			return nil, fmt.Errorf("malformed point %q", f)
		}
		x, err := strconv.ParseFloat(xy[0], 64)
		if err != nil {
			return nil, fmt.Errorf("malformed point %q: %w", f, err)
		}
		y, err := strconv.ParseFloat(xy[1], 64)
		if err != nil {
			return nil, fmt.Errorf("malformed point %q: %w", f, err)
		}
		pts = append(pts, vatticlip.PointD{X: x, Y: y})
	}
	return pts, nil
}

func parseClipType(s string) (vatticlip.ClipType, error) {
	switch strings.ToLower(s) {
	case "intersection":
		return vatticlip.CtIntersection, nil
	case "union":
		return vatticlip.CtUnion, nil
	case "difference":
		return vatticlip.CtDifference, nil
	case "xor":
		return vatticlip.CtXor, nil
	default:
		return 0, fmt.Errorf("unknown --op %q", s)
	}
}

func parseFillRule(s string) (vatticlip.FillRule, error) {
	switch strings.ToLower(s) {
	case "evenodd":
		return vatticlip.FrEvenOdd, nil
	case "nonzero":
		return vatticlip.FrNonZero, nil
	case "positive":
		return vatticlip.FrPositive, nil
	case "negative":
		return vatticlip.FrNegative, nil
	default:
		return 0, fmt.Errorf("unknown --fill %q", s)
	}
}

type result struct {
	Closed [][][2]int64 `json:"closed"`
	Open   [][][2]int64 `json:"open"`
}

func printJSON(closed, open vatticlip.Paths64) error {
	r := result{}
	for _, p := range closed {
		r.Closed = append(r.Closed, pathToPairs(p))
	}
	for _, p := range open {
		r.Open = append(r.Open, pathToPairs(p))
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func pathToPairs(p vatticlip.Path64) [][2]int64 {
	pairs := make([][2]int64, len(p))
	for i, pt := range p {
		pairs[i] = [2]int64{pt.X, pt.Y}
	}
	return pairs
}

func printWKT(paths vatticlip.Paths64) {
	var b strings.Builder
	b.WriteString("MULTIPOLYGON(")
	for i, p := range paths {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString("((")
		for j, pt := range p {
			if j > 0 {
				b.WriteString(",")
			}
			fmt.Fprintf(&b, "%d %d", pt.X, pt.Y)
		}
		if len(p) > 0 {
			fmt.Fprintf(&b, ",%d %d", p[0].X, p[0].Y)
		}
		b.WriteString("))")
	}
	b.WriteString(")")
	fmt.Println(b.String())
}
