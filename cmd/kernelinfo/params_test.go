package main

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-kernels/dsp/filter/comb"
	"github.com/cwbudde/algo-kernels/dsp/filter/iir"
	"github.com/cwbudde/algo-kernels/measure/response"
)

func TestNewInstanceDefaults(t *testing.T) {
	inst, err := newInstance("comb_mono", 44100, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := inst.Activate(); err != nil {
		t.Fatal(err)
	}
	ir, err := response.Impulse(inst, 60)
	if err != nil {
		t.Fatal(err)
	}

	// Defaults: delay 51 (middle of [1, 100]), sharpness 0.875.
	f, err := comb.New()
	if err != nil {
		t.Fatal(err)
	}
	f.SetDelay(51)
	f.SetSharpness(0.875)
	want := f.ProcessSample(1)
	if math.Abs(ir[0]-want) > 1e-15 {
		t.Fatalf("first sample = %v, want %v", ir[0], want)
	}
}

func TestNewInstanceParamsBothChannels(t *testing.T) {
	inst, err := newInstance("iir_stereo", 48000, map[string]float64{"coefficient": 0.5})
	if err != nil {
		t.Fatal(err)
	}
	if err := inst.Activate(); err != nil {
		t.Fatal(err)
	}
	chans, err := response.ImpulseChannels(inst, 2)
	if err != nil {
		t.Fatal(err)
	}
	for ch, out := range chans {
		if out[0] != 0.5 || out[1] != 0.25 {
			t.Fatalf("channel %d = %v", ch, out)
		}
	}
}

func TestNewInstanceSingleChannelParam(t *testing.T) {
	inst, err := newInstance("iir_stereo", 48000, map[string]float64{"Coefficient Right": -0.5})
	if err != nil {
		t.Fatal(err)
	}
	if err := inst.Activate(); err != nil {
		t.Fatal(err)
	}
	chans, err := response.ImpulseChannels(inst, 2)
	if err != nil {
		t.Fatal(err)
	}
	if chans[0][1] != 0 || chans[1][1] != -0.25 {
		t.Fatalf("left %v right %v", chans[0], chans[1])
	}
}

func TestNewInstanceErrors(t *testing.T) {
	if _, err := newInstance("iir_mono", 48000, map[string]float64{"Input": 1}); !errors.Is(err, errUnknownParam) {
		t.Fatalf("audio port as param: %v", err)
	}
	if _, err := newInstance("iir_mono", 48000, map[string]float64{"Gain": 1}); !errors.Is(err, errUnknownParam) {
		t.Fatalf("unknown param: %v", err)
	}
	if _, err := newInstance("missing", 48000, nil); err == nil {
		t.Fatal("unknown label accepted")
	}
}

func TestMatchControl(t *testing.T) {
	stereo := iir.StereoDescriptor()
	if ids := matchControl(stereo, "Coefficient"); len(ids) != 2 {
		t.Fatalf("ids = %v", ids)
	}
	if ids := matchControl(stereo, "coefficient left"); len(ids) != 1 || ids[0] != iir.PortCoef {
		t.Fatalf("ids = %v", ids)
	}
	if ids := matchControl(iir.MonoDescriptor(), "Output"); len(ids) != 0 {
		t.Fatalf("ids = %v", ids)
	}
}
