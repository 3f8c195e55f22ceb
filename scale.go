package vatticlip

import "math"

// ScalePathD scales a floating-point path up to Path64 by multiplying
// every coordinate by scale and rounding to the nearest integer, ties
// away from zero — the same convention the sweep itself uses for
// manufactured intersection points. scale must be positive and
// finite; ErrConfig is returned otherwise, or if any resulting
// coordinate would overflow int64.
func ScalePathD(path []PointD, scale float64) (Path64, error) {
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return nil, &ErrConfig{Param: "scale", Value: scale}
	}
	out := make(Path64, len(path))
	for i, p := range path {
		x := p.X * scale
		y := p.Y * scale
		if math.Abs(x) > math.MaxInt64 || math.Abs(y) > math.MaxInt64 {
			return nil, &ErrConfig{Param: "scale", Value: scale}
		}
		out[i] = Point64{X: roundAwayFromZero(x), Y: roundAwayFromZero(y)}
	}
	return out, nil
}

// ScalePathsD applies ScalePathD to every path in paths, stopping at
// the first invalid one.
func ScalePathsD(paths [][]PointD, scale float64) (Paths64, error) {
	out := make(Paths64, len(paths))
	for i, p := range paths {
		scaled, err := ScalePathD(p, scale)
		if err != nil {
			return nil, err
		}
		out[i] = scaled
	}
	return out, nil
}

// UnscalePath64 is ScalePathD's inverse: it divides every coordinate
// by scale to recover a floating-point path.
func UnscalePath64(path Path64, scale float64) ([]PointD, error) {
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return nil, &ErrConfig{Param: "scale", Value: scale}
	}
	out := make([]PointD, len(path))
	for i, p := range path {
		out[i] = PointD{X: float64(p.X) / scale, Y: float64(p.Y) / scale}
	}
	return out, nil
}

func roundAwayFromZero(v float64) int64 {
	if v >= 0 {
		return int64(math.Floor(v + 0.5))
	}
	return int64(math.Ceil(v - 0.5))
}
