package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTransformPoint(t *testing.T) {
	m := Translate(10, 20, 30)
	result := m.TransformPoint([3]float32{1, 2, 3})

	expected := [3]float32{11, 22, 33}
	if result != expected {
		t.Errorf("TransformPoint: got %v, want %v", result, expected)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(math.Pi/4), 1, 0.1, 100)

	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestInverseRoundTrip(t *testing.T) {
	proj := Perspective(float32(math.Pi/3), 16.0/9.0, 0.1, 100)
	view := LookAt(Vec3{0, 2, 8}, Vec3{}, Vec3{0, 1, 0})
	viewProj := proj.Mul(view)

	inv, ok := viewProj.Inverse()
	if !ok {
		t.Fatal("view-projection should be invertible")
	}
	product := viewProj.Mul(inv)
	id := Identity()
	for i := 0; i < 16; i++ {
		if abs(product[i]-id[i]) > 1e-4 {
			t.Fatalf("M * M^-1 element %d: got %f, want %f", i, product[i], id[i])
		}
	}
}

func TestInverseSingular(t *testing.T) {
	var zero Mat4
	inv, ok := zero.Inverse()
	if ok {
		t.Error("zero matrix should not be invertible")
	}
	if inv != Identity() {
		t.Error("singular inverse should fall back to identity")
	}
}

func TestProject(t *testing.T) {
	proj := Perspective(float32(math.Pi/2), 1, 1, 100)
	view := LookAt(Vec3{0, 0, 5}, Vec3{}, Vec3{0, 1, 0})
	viewProj := proj.Mul(view)

	tests := []struct {
		name string
		p    Vec3
		ok   bool
	}{
		{"center", Vec3{0, 0, 0}, true},
		{"behind eye", Vec3{0, 0, 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ndc, ok := viewProj.Project(tt.p)
			if ok != tt.ok {
				t.Fatalf("Project ok = %v, want %v", ok, tt.ok)
			}
			if ok && (abs(ndc.X) > 1e-5 || abs(ndc.Y) > 1e-5) {
				t.Errorf("Project center: got %v, want (0, 0, z)", ndc)
			}
		})
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
