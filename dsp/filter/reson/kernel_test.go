package reson

import (
	"testing"

	"github.com/cwbudde/algo-kernels/dsp/kernel"
	"github.com/cwbudde/algo-kernels/internal/testutil"
)

func TestDescriptorLayout(t *testing.T) {
	stereo := StereoDescriptor()
	for _, d := range []*kernel.Descriptor{MonoDescriptor(), stereo} {
		if err := d.Validate(); err != nil {
			t.Fatalf("%s: %v", d.Label, err)
		}
	}
	want := []string{
		"Frequency Left", "Bandwidth Left", "Input Left", "Output Left",
		"Frequency Right", "Bandwidth Right", "Input Right", "Output Right",
	}
	for i, name := range want {
		if p, ok := stereo.Port(kernel.PortID(i)); !ok || p.Name != name {
			t.Fatalf("port %d = %+v, want %q", i, p, name)
		}
	}
}

func TestStereoKernelMatchesFilters(t *testing.T) {
	const sr = 44100
	inst, err := kernel.New(StereoDescriptor(), sr)
	if err != nil {
		t.Fatal(err)
	}
	freqL, bwL := 440.0, 50.0
	freqR, bwR := 3000.0, 800.0
	inL := testutil.DeterministicNoise(1, 1, 512)
	inR := testutil.DeterministicNoise(2, 1, 512)
	outL := make([]float64, 512)
	outR := make([]float64, 512)

	inst.BindControl(PortFreq, &freqL)
	inst.BindControl(PortBandwidth, &bwL)
	inst.BindControl(PortFreqRight, &freqR)
	inst.BindControl(PortBandwidthRight, &bwR)
	inst.BindAudio(PortInput, inL)
	inst.BindAudio(PortOutput, outL)
	inst.BindAudio(PortInputRight, inR)
	inst.BindAudio(PortOutputRight, outR)

	if err := inst.Activate(); err != nil {
		t.Fatal(err)
	}
	if err := inst.Process(512); err != nil {
		t.Fatal(err)
	}

	left, _ := New(sr)
	left.SetParams(freqL, bwL)
	wantL := make([]float64, 512)
	left.ProcessBlockTo(wantL, inL)

	right, _ := New(sr)
	right.SetParams(freqR, bwR)
	wantR := make([]float64, 512)
	right.ProcessBlockTo(wantR, inR)

	testutil.RequireSliceNearlyEqual(t, outL, wantL, 0)
	testutil.RequireSliceNearlyEqual(t, outR, wantR, 0)

	inst.Deactivate()
	if err := inst.Activate(); err != nil {
		t.Fatal(err)
	}
	if err := inst.Process(512); err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, outL, wantL, 0)
}

func TestParameterChangeBetweenBlocks(t *testing.T) {
	inst, err := kernel.New(MonoDescriptor(), 48000)
	if err != nil {
		t.Fatal(err)
	}
	freq, bw := 1000.0, 100.0
	in := testutil.DeterministicNoise(3, 1, 200)
	out := make([]float64, 200)
	inst.BindControl(PortFreq, &freq)
	inst.BindControl(PortBandwidth, &bw)
	if err := inst.Activate(); err != nil {
		t.Fatal(err)
	}

	inst.BindAudio(PortInput, in[:100])
	inst.BindAudio(PortOutput, out[:100])
	if err := inst.Process(100); err != nil {
		t.Fatal(err)
	}
	freq = 2000
	inst.BindAudio(PortInput, in[100:])
	inst.BindAudio(PortOutput, out[100:])
	if err := inst.Process(100); err != nil {
		t.Fatal(err)
	}

	f, _ := New(48000)
	want := make([]float64, 200)
	f.SetParams(1000, 100)
	f.ProcessBlockTo(want[:100], in[:100])
	f.SetParams(2000, 100)
	f.ProcessBlockTo(want[100:], in[100:])
	testutil.RequireSliceNearlyEqual(t, out, want, 0)
}
