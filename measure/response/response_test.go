package response

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-kernels/dsp/core"
	"github.com/cwbudde/algo-kernels/dsp/filter/comb"
	"github.com/cwbudde/algo-kernels/dsp/filter/fir"
	"github.com/cwbudde/algo-kernels/dsp/filter/iir"
	"github.com/cwbudde/algo-kernels/dsp/filter/reson"
	"github.com/cwbudde/algo-kernels/dsp/kernel"
	"github.com/cwbudde/algo-kernels/internal/testutil"
)

func activeIIR(t *testing.T, desc *kernel.Descriptor, coef *float64) *kernel.Instance {
	t.Helper()
	inst, err := kernel.New(desc, 48000)
	if err != nil {
		t.Fatal(err)
	}
	inst.BindControl(iir.PortCoef, coef)
	inst.BindControl(iir.PortCoefRight, coef)
	if err := inst.Activate(); err != nil {
		t.Fatal(err)
	}
	return inst
}

func TestIIRTilt(t *testing.T) {
	tests := []struct {
		coef            float64
		wantDC, wantNyq float64
	}{
		{0.5, 1, 1.0 / 3},
		{-0.5, 1.0 / 3, 1},
		{0, 1, 1},
	}
	for _, tt := range tests {
		coef := tt.coef
		inst := activeIIR(t, iir.MonoDescriptor(), &coef)

		ir, err := Impulse(inst, 4096)
		if err != nil {
			t.Fatal(err)
		}
		bins, err := NewAnalyzer().Magnitude(ir)
		if err != nil {
			t.Fatal(err)
		}
		dc, nyq := bins[0], bins[len(bins)-1]
		if nyq.Freq != 24000 {
			t.Fatalf("last bin at %v Hz", nyq.Freq)
		}
		if math.Abs(dc.Magnitude-tt.wantDC) > 1e-9 || math.Abs(nyq.Magnitude-tt.wantNyq) > 1e-9 {
			t.Fatalf("coef %v: DC %v Nyquist %v, want %v %v",
				tt.coef, dc.Magnitude, nyq.Magnitude, tt.wantDC, tt.wantNyq)
		}
	}
}

func TestImpulseMatchesFilter(t *testing.T) {
	inst, err := kernel.New(comb.MonoDescriptor(), 44100)
	if err != nil {
		t.Fatal(err)
	}
	delay, sharp := 7.0, 0.9
	inst.BindControl(comb.PortDelay, &delay)
	inst.BindControl(comb.PortSharpness, &sharp)
	if err := inst.Activate(); err != nil {
		t.Fatal(err)
	}

	got, err := Impulse(inst, 64)
	if err != nil {
		t.Fatal(err)
	}

	f, err := comb.New()
	if err != nil {
		t.Fatal(err)
	}
	f.SetDelay(delay)
	f.SetSharpness(sharp)
	want := make([]float64, 64)
	f.ProcessBlockTo(want, testutil.Impulse(64, 0))
	testutil.RequireSliceNearlyEqual(t, got, want, 0)
}

func TestFIRNotchAtFirstFrequency(t *testing.T) {
	inst, err := kernel.New(fir.MonoDescriptor(), 48000)
	if err != nil {
		t.Fatal(err)
	}
	freq, wet := 750.0, 1.0
	inst.BindControl(fir.PortFreq, &freq)
	inst.BindControl(fir.PortWet, &wet)
	if err := inst.Activate(); err != nil {
		t.Fatal(err)
	}

	ir, err := Impulse(inst, 256)
	if err != nil {
		t.Fatal(err)
	}
	a := NewAnalyzer(core.WithSampleRate(48000), core.WithBlockSize(1024))
	notch, err := a.MagnitudeAt(ir, freq)
	if err != nil {
		t.Fatal(err)
	}
	if notch.Freq != 750 || notch.Magnitude > 1e-12 {
		t.Fatalf("notch bin %+v", notch)
	}
	if !math.IsInf(notch.DB, -1) && notch.DB > -200 {
		t.Fatalf("notch depth %v dB", notch.DB)
	}
	dc, _ := a.MagnitudeAt(ir, 0)
	if math.Abs(dc.Magnitude-1) > 1e-12 {
		t.Fatalf("DC magnitude = %v, want 1", dc.Magnitude)
	}
}

func TestResonPeakNearCentre(t *testing.T) {
	inst, err := kernel.New(reson.MonoDescriptor(), 48000)
	if err != nil {
		t.Fatal(err)
	}
	freq, bw := 1000.0, 100.0
	inst.BindControl(reson.PortFreq, &freq)
	inst.BindControl(reson.PortBandwidth, &bw)
	if err := inst.Activate(); err != nil {
		t.Fatal(err)
	}

	ir, err := Impulse(inst, 8192)
	if err != nil {
		t.Fatal(err)
	}
	bins, err := NewAnalyzer().Magnitude(ir)
	if err != nil {
		t.Fatal(err)
	}
	best := bins[0]
	for _, b := range bins {
		if b.Magnitude > best.Magnitude {
			best = b
		}
	}
	if math.Abs(best.Freq-freq) > 20 {
		t.Fatalf("peak at %v Hz, want near %v", best.Freq, freq)
	}
	if best.DB < -1 || best.DB > 1 {
		t.Fatalf("peak level %v dB, want about 0", best.DB)
	}
}

func TestImpulseStereoAndRestore(t *testing.T) {
	coef := 0.25
	inst := activeIIR(t, iir.StereoDescriptor(), &coef)
	userIn := []float64{9, 9}
	userOut := make([]float64, 2)
	inst.BindAudio(iir.PortInput, userIn)
	inst.BindAudio(iir.PortOutputRight, userOut)

	chans, err := ImpulseChannels(inst, 16)
	if err != nil {
		t.Fatal(err)
	}
	if len(chans) != 2 {
		t.Fatalf("got %d channels", len(chans))
	}
	testutil.RequireSliceNearlyEqual(t, chans[0], chans[1], 0)
	if chans[0][0] != 0.75 {
		t.Fatalf("first sample = %v, want 0.75", chans[0][0])
	}

	if got := inst.AudioBinding(iir.PortInput); &got[0] != &userIn[0] {
		t.Fatal("input binding not restored")
	}
	if got := inst.AudioBinding(iir.PortOutputRight); &got[0] != &userOut[0] {
		t.Fatal("output binding not restored")
	}
	if inst.AudioBinding(iir.PortOutput) != nil {
		t.Fatal("unbound port left bound")
	}
	if userOut[0] != 0 || userIn[0] != 9 {
		t.Fatal("caller buffers were written")
	}
}

func TestImpulseErrors(t *testing.T) {
	if _, err := Impulse(nil, 8); !errors.Is(err, ErrNilInstance) {
		t.Fatalf("nil instance: %v", err)
	}

	coef := 0.0
	inst, err := kernel.New(iir.MonoDescriptor(), 48000)
	if err != nil {
		t.Fatal(err)
	}
	inst.BindControl(iir.PortCoef, &coef)
	if _, err := Impulse(inst, 8); !errors.Is(err, kernel.ErrNotActive) {
		t.Fatalf("inactive: %v", err)
	}
	if _, err := Impulse(inst, 0); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("zero length: %v", err)
	}
}

func TestMagnitudeErrors(t *testing.T) {
	if _, err := NewAnalyzer().Magnitude(nil); !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("empty: %v", err)
	}
	bad := &Analyzer{cfg: core.ProcessorConfig{SampleRate: 0, BlockSize: 8}}
	if _, err := bad.Magnitude([]float64{1}); !errors.Is(err, ErrInvalidSampleRate) {
		t.Fatalf("zero rate: %v", err)
	}
}

func TestFFTSize(t *testing.T) {
	a := NewAnalyzer(core.WithBlockSize(256))
	tests := []struct{ n, want int }{
		{1, 256},
		{256, 256},
		{257, 512},
		{5000, 8192},
	}
	for _, tt := range tests {
		if got := a.FFTSize(tt.n); got != tt.want {
			t.Fatalf("FFTSize(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestAnalyzerReusesPlanAcrossSizes(t *testing.T) {
	a := NewAnalyzer(core.WithBlockSize(16))
	for _, n := range []int{16, 64, 16} {
		bins, err := a.Magnitude(testutil.Impulse(n, 0))
		if err != nil {
			t.Fatal(err)
		}
		if len(bins) != n/2+1 {
			t.Fatalf("n=%d: %d bins", n, len(bins))
		}
		for _, b := range bins {
			if math.Abs(b.Magnitude-1) > 1e-12 || math.Abs(b.DB) > 1e-9 {
				t.Fatalf("n=%d: impulse bin %+v not flat", n, b)
			}
		}
	}
}

func TestAnalyzerSizeChangesMatchFreshAnalyzer(t *testing.T) {
	shared := NewAnalyzer(core.WithBlockSize(16))
	for _, n := range []int{300, 40, 120} {
		ir := testutil.DeterministicNoise(int64(n), 1, n)
		got, err := shared.Magnitude(ir)
		if err != nil {
			t.Fatal(err)
		}
		want, err := NewAnalyzer(core.WithBlockSize(16)).Magnitude(ir)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != len(want) {
			t.Fatalf("n=%d: %d bins, want %d", n, len(got), len(want))
		}
		for k := range want {
			if got[k] != want[k] {
				t.Fatalf("n=%d bin %d: %+v, want %+v", n, k, got[k], want[k])
			}
		}
	}
}

func TestPeak(t *testing.T) {
	if got := Peak([]float64{0.1, -0.8, 0.5}); got != 0.8 {
		t.Fatalf("Peak = %v", got)
	}
	if got := Peak(nil); got != 0 {
		t.Fatalf("Peak(nil) = %v", got)
	}
}

func TestNearestBin(t *testing.T) {
	bins := []Bin{{Freq: 0}, {Freq: 10}, {Freq: 20}, {Freq: 30}}
	tests := []struct {
		freq float64
		want float64
	}{
		{-5, 0},
		{4, 0},
		{6, 10},
		{24, 20},
		{1000, 30},
	}
	for _, tt := range tests {
		if got := NearestBin(bins, tt.freq); got.Freq != tt.want {
			t.Fatalf("NearestBin(%v) = %v, want %v", tt.freq, got.Freq, tt.want)
		}
	}
	if got := NearestBin(nil, 5); got != (Bin{}) {
		t.Fatalf("NearestBin(nil) = %+v", got)
	}
}
