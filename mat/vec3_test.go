package mat

import (
	"testing"
)

func TestVec3Cross(t *testing.T) {
	a := NewVec3(1, 0, 0)
	b := NewVec3(0, 1, 0)

	c := a.Cross(b)
	expected := NewVec3(0, 0, 1)
	if !c.Equal(expected) {
		t.Errorf("expected cross product %v, got %v", expected, c)
	}
}

func TestVec3NormalizedHasUnitNorm(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalized()
	if diff := v.Norm() - 1; diff < -1e-4 || 1e-4 < diff {
		t.Errorf("normalized vector should have unit norm, got %v", v.Norm())
	}
}

func TestVec3Equal(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(1, 2, 3)
	c := NewVec3(1, 2, 3.1)

	if !a.Equal(b) {
		t.Error("identical vectors should be equal")
	}
	if a.Equal(c) {
		t.Error("distinct vectors should not be equal")
	}
}
