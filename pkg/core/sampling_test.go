package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestSampleOnUnitSphere(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	var mean Vec3
	const n = 20000
	for i := 0; i < n; i++ {
		dir := SampleOnUnitSphere(sampler.Get2D())
		if math.Abs(dir.Length()-1.0) > 1e-9 {
			t.Fatalf("Sample %d not unit length: %f", i, dir.Length())
		}
		mean = mean.Add(dir)
	}

	// Uniform directions average out to the origin
	mean = mean.Multiply(1.0 / n)
	if mean.Length() > 0.03 {
		t.Errorf("Mean direction should be near zero, got %v", mean)
	}
}

func TestSamplePointInUnitDisk(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(7)))

	for i := 0; i < 1000; i++ {
		p := SamplePointInUnitDisk(sampler.Get2D())
		if p.Z != 0 {
			t.Fatalf("Disk sample should lie in the XY plane, got %v", p)
		}
		if p.LengthSquared() > 1.0+1e-12 {
			t.Fatalf("Disk sample outside unit disk: %v", p)
		}
	}

	center := SamplePointInUnitDisk(NewVec2(0.5, 0.5))
	if !center.Equals(NewVec3(0, 0, 0)) {
		t.Errorf("Center sample should map to origin, got %v", center)
	}
}

func TestSeededSampler_Deterministic(t *testing.T) {
	a := NewSeededSampler(99)
	b := NewSeededSampler(99)
	for i := 0; i < 10; i++ {
		if a.Get1D() != b.Get1D() {
			t.Fatal("Samplers with equal seeds should produce equal streams")
		}
	}
}
