package svgpath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats, including those inside segments, with an absolute
// tolerance.
func approx(epsilon float64) cmp.Option {
	return cmpopts.EquateApprox(0, epsilon)
}
