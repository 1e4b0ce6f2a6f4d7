package g3d

import (
	"testing"

	"github.com/chewxy/math32"
)

const eps = 1e-5

func near(a, b float32) bool {
	return math32.Abs(a-b) < eps
}

func TestVec3Cross(t *testing.T) {
	got := V3(1, 0, 0).Cross(V3(0, 1, 0))
	if got != V3(0, 0, 1) {
		t.Errorf("X.Cross(Y) = %v, want (0,0,1)", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	tests := []struct {
		in   Vec3
		want Vec3
	}{
		{V3(3, 0, 4), V3(0.6, 0, 0.8)},
		{V3(0, 0, 0), V3(0, 0, 0)},
		{V3(0, -2, 0), V3(0, -1, 0)},
	}
	for _, tt := range tests {
		got := tt.in.Normalize()
		if !near(got.X, tt.want.X) || !near(got.Y, tt.want.Y) || !near(got.Z, tt.want.Z) {
			t.Errorf("%v.Normalize() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestVec4Lerp(t *testing.T) {
	a := Vec4{0, 0, 0, 1}
	b := Vec4{2, 4, -2, 3}
	got := a.Lerp(b, 0.5)
	want := Vec4{1, 2, -1, 2}
	if got != want {
		t.Errorf("Lerp() = %v, want %v", got, want)
	}
}
