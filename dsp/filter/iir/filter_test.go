package iir

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-kernels/dsp/filter/biquad"
	"github.com/cwbudde/algo-kernels/internal/testutil"
)

func TestZeroCoefficientIsIdentity(t *testing.T) {
	for _, n := range []int{0, 1, 7, 1000} {
		f := New()
		f.SetCoefficient(0)
		in := testutil.DeterministicNoise(int64(n), 1, n)
		out := make([]float64, n)
		f.ProcessBlockTo(out, in)
		testutil.RequireBitIdentical(t, out, in)
	}
}

func TestImpulseHalf(t *testing.T) {
	f := New()
	f.SetCoefficient(0.5)

	out := make([]float64, 4)
	f.ProcessBlockTo(out, []float64{1, 0, 0, 0})

	want := []float64{0.5, 0.25, 0.125, 0.0625}
	testutil.RequireSliceNearlyEqual(t, out, want, 0)
}

func TestNegativeCoefficientAlternates(t *testing.T) {
	f := New()
	f.SetCoefficient(-0.5)

	out := make([]float64, 4)
	f.ProcessBlockTo(out, []float64{1, 0, 0, 0})

	want := []float64{0.5, -0.25, 0.125, -0.0625}
	testutil.RequireSliceNearlyEqual(t, out, want, 0)
}

func TestCoefficientClamped(t *testing.T) {
	f := New()
	f.SetCoefficient(1.5)
	if f.Coefficient() != MaxCoefficient {
		t.Fatalf("coef = %v, want %v", f.Coefficient(), MaxCoefficient)
	}
	f.SetCoefficient(-7)
	if f.Coefficient() != -MaxCoefficient {
		t.Fatalf("coef = %v, want %v", f.Coefficient(), -MaxCoefficient)
	}
	f.SetCoefficient(math.NaN())
	if f.Coefficient() != -MaxCoefficient {
		t.Fatalf("coef = %v for NaN", f.Coefficient())
	}
}

func TestLowPassUnityDCGain(t *testing.T) {
	f := New()
	f.SetCoefficient(0.9)

	out := make([]float64, 500)
	f.ProcessBlockTo(out, testutil.Ones(len(out)))
	if math.Abs(out[len(out)-1]-1) > 1e-9 {
		t.Fatalf("DC gain = %v, want 1", out[len(out)-1])
	}
}

func TestStateCarriesAcrossBlocks(t *testing.T) {
	in := testutil.DeterministicNoise(2, 1, 90)

	whole := New()
	whole.SetCoefficient(0.3)
	want := make([]float64, len(in))
	whole.ProcessBlockTo(want, in)

	split := New()
	split.SetCoefficient(0.3)
	got := make([]float64, len(in))
	split.ProcessBlockTo(got[:40], in[:40])
	split.ProcessBlockTo(got[40:], in[40:])

	testutil.RequireSliceNearlyEqual(t, got, want, 0)
	if split.State() != want[len(want)-1] {
		t.Fatalf("state = %v, want last output", split.State())
	}
}

func TestProcessSampleMatchesBlock(t *testing.T) {
	in := testutil.DeterministicNoise(6, 1, 64)

	a := New()
	a.SetCoefficient(-0.7)
	want := make([]float64, len(in))
	a.ProcessBlockTo(want, in)

	b := New()
	b.SetCoefficient(-0.7)
	for i, x := range in {
		if got := b.ProcessSample(x); got != want[i] {
			t.Fatalf("sample %d: %v != %v", i, got, want[i])
		}
	}
}

func TestBitExactToRecurrence(t *testing.T) {
	in := testutil.DeterministicNoise(4, 1, 500)
	for _, c := range []float64{0.3, -0.7, 0.99999, -0.123456789} {
		f := New()
		f.SetCoefficient(c)
		got := make([]float64, len(in))
		f.ProcessBlockTo(got, in)

		want := make([]float64, len(in))
		prev := 0.0
		for i, x := range in {
			want[i] = x*(1-math.Abs(c)) + c*prev
			prev = want[i]
		}
		testutil.RequireBitIdentical(t, got, want)
	}
}

func TestMatchesBiquadSection(t *testing.T) {
	in := testutil.DeterministicNoise(5, 1, 500)
	for _, c := range []float64{0.5, -0.5, 0.95} {
		f := New()
		f.SetCoefficient(c)
		got := make([]float64, len(in))
		f.ProcessBlockTo(got, in)

		s := biquad.NewSection(f.Biquad())
		want := make([]float64, len(in))
		s.ProcessBlockTo(want, in)
		testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
	}
}

func TestReset(t *testing.T) {
	f := New()
	f.SetCoefficient(0.5)
	f.ProcessSample(1)
	f.Reset()
	if f.State() != 0 {
		t.Fatalf("state after reset = %v", f.State())
	}
}

func BenchmarkProcessBlock(b *testing.B) {
	f := New()
	f.SetCoefficient(0.9)
	buf := testutil.DeterministicNoise(1, 1, 1024)

	for b.Loop() {
		f.ProcessBlock(buf)
	}
}
