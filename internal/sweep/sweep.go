// Package sweep rotates a vector through a range of angles around a fixed
// axis and formats the results.
package sweep

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/davecgh/go-spew/spew"
	"k8s.io/klog/v2"

	"quatrot/internal/axisangle"
	"quatrot/quaternion"
)

var (
	ErrZeroAxis    = errors.New("rotation axis has zero length")
	ErrInvalidStep = errors.New("angle step must be greater than 0")
	ErrTolerance   = errors.New("cross-check tolerance must be greater than 0")
	ErrCrossCheck  = errors.New("quaternion and axis-angle rotations disagree")
	ErrNotFinite   = errors.New("vector components must be finite")
)

// Config describes a sweep over the degrees [From, To) in increments of Step.
type Config struct {
	Axis   quaternion.V3
	Vector quaternion.V3
	From   int
	To     int
	Step   int

	// CrossCheck compares every quaternion rotation against a
	// single-precision Rodrigues rotation.
	CrossCheck bool
	Tolerance  float64
}

// DefaultConfig rotates (1, 0, 0) around the z axis in 10 degree steps.
func DefaultConfig() Config {
	return Config{
		Axis:      quaternion.V3{0, 0, 10},
		Vector:    quaternion.V3{1, 0, 0},
		From:      0,
		To:        360,
		Step:      10,
		Tolerance: 1e-4,
	}
}

func (c Config) Validate() error {
	if c.Step <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidStep, c.Step)
	}
	for _, v := range []struct {
		name string
		v    quaternion.V3
	}{{"axis", c.Axis}, {"vector", c.Vector}} {
		for _, f := range v.v {
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return fmt.Errorf("%w: %s %v", ErrNotFinite, v.name, v.v)
			}
		}
	}
	if c.Axis.Len() == 0 {
		return fmt.Errorf("%w: %v", ErrZeroAxis, c.Axis)
	}
	if c.CrossCheck && !(c.Tolerance > 0) {
		return fmt.Errorf("%w: got %v", ErrTolerance, c.Tolerance)
	}
	return nil
}

// Row is the result of one step of a sweep.
type Row struct {
	Degree  int
	Rotated quaternion.V3
	// Deviation is the largest component difference from the
	// cross-check rotation, or 0 when cross-checking is off.
	Deviation float64
}

// Run performs the sweep described by cfg.
// When cross-checking, rows are returned even if some of them exceed the
// tolerance; the returned error then wraps ErrCrossCheck.
func Run(cfg Config) ([]Row, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if v := klog.V(4); v.Enabled() {
		v.InfoS("Sweep configuration", "config", spew.Sdump(cfg))
	}

	var rows []Row
	failed := 0
	for d := cfg.From; d < cfg.To; d += cfg.Step {
		theta := quaternion.Degrees(float64(d))
		q := quaternion.RotationQ(cfg.Axis[0], cfg.Axis[1], cfg.Axis[2], theta)
		row := Row{Degree: d, Rotated: q.Rotate(cfg.Vector)}

		if cfg.CrossCheck {
			ref := axisangle.FromFloat64(cfg.Vector).
				RotateAroundAxis(axisangle.FromFloat64(cfg.Axis), float32(theta)).
				Float64()
			row.Deviation = deviation(row.Rotated, ref)
			if !(row.Deviation <= cfg.Tolerance) {
				failed++
				klog.Warningf("Degree %d: deviation %g exceeds tolerance %g", d, row.Deviation, cfg.Tolerance)
			}
		}
		klog.V(2).InfoS("Rotated", "degree", d, "q", q, "result", row.Rotated, "deviation", row.Deviation)
		rows = append(rows, row)

		if d > math.MaxInt-cfg.Step {
			break
		}
	}

	if failed > 0 {
		return rows, fmt.Errorf("%w: %d of %d rows exceed tolerance %g", ErrCrossCheck, failed, len(rows), cfg.Tolerance)
	}
	return rows, nil
}

func deviation(v, w [3]float64) float64 {
	var d float64
	for i := range v {
		d = math.Max(d, math.Abs(v[i]-w[i]))
	}
	return d
}

// FormatRow formats r as "Degree=ddd => (x, y, z)".
func FormatRow(r Row) string {
	return fmt.Sprintf("Degree=%03d => (%.4f, %.4f, %.4f)", r.Degree, r.Rotated[0], r.Rotated[1], r.Rotated[2])
}

// Write writes one formatted line per row to w.
func Write(w io.Writer, rows []Row) error {
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, FormatRow(r)); err != nil {
			return err
		}
	}
	return nil
}
