package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-kernels/dsp/buffer"
	"github.com/cwbudde/algo-kernels/dsp/kernel"
)

var (
	errNotWAV          = errors.New("not a valid WAV file")
	errChannelMismatch = errors.New("channel count does not match kernel")
)

// RenderCmd processes a WAV file through a kernel.
type RenderCmd struct {
	Label  string             `arg:"" help:"Kernel label, see 'kernelinfo list'"`
	Input  string             `arg:"" type:"existingfile" help:"Input PCM WAV file"`
	Output string             `arg:"" type:"path" help:"Output WAV file"`
	Param  map[string]float64 `short:"p" help:"Control value as NAME=VALUE; repeatable" placeholder:"NAME=VALUE"`
	Block  int                `short:"b" default:"1024" help:"Frames per Process call"`
}

// Run implements the render subcommand.
func (c *RenderCmd) Run(g *Globals) error {
	buf, err := readWAV(c.Input)
	if err != nil {
		return fmt.Errorf("read %s: %w", c.Input, err)
	}

	if err := renderBuffer(buf, c.Label, c.Param, c.Block); err != nil {
		return err
	}

	if err := writeWAV(c.Output, buf); err != nil {
		return fmt.Errorf("write %s: %w", c.Output, err)
	}

	printKV(g.Out, "Kernel", c.Label)
	printKV(g.Out, "Frames", buf.NumFrames())
	printKV(g.Out, "Channels", buf.Format.NumChannels)
	printKV(g.Out, "Written", c.Output)
	return nil
}

func readWAV(path string) (*audio.IntBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d := wav.NewDecoder(f)
	if !d.IsValidFile() {
		return nil, errNotWAV
	}
	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, err
	}
	if _, err := buffer.FullScale(buf.SourceBitDepth); err != nil {
		return nil, err
	}
	return buf, nil
}

func writeWAV(path string, buf *audio.IntBuffer) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	e := wav.NewEncoder(f, buf.Format.SampleRate, buf.SourceBitDepth, buf.Format.NumChannels, 1)
	if err := e.Write(buf); err != nil {
		f.Close()
		return err
	}
	if err := e.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// renderBuffer runs buf through the labelled kernel in place, block frames at
// a time. A mono kernel runs one instance per file channel. A stereo kernel
// requires a stereo file.
func renderBuffer(buf *audio.IntBuffer, label string, params map[string]float64, block int) error {
	planar, err := buffer.FromPCM(buf.Data, buf.Format.NumChannels, buf.SourceBitDepth)
	if err != nil {
		return err
	}
	frames := planar.Frames()
	if block <= 0 {
		block = frames
	}

	insts, err := instancesFor(label, float64(buf.Format.SampleRate), params, planar.Channels())
	if err != nil {
		return err
	}
	for _, r := range insts {
		if err := r.run(planar, frames, block); err != nil {
			return err
		}
	}
	return planar.ToPCM(buf.Data, buf.SourceBitDepth)
}

// runner drives one instance over a group of planar channels.
type runner struct {
	inst     *kernel.Instance
	channels []int
}

func instancesFor(label string, sampleRate float64, params map[string]float64, chans int) ([]runner, error) {
	first, err := newInstance(label, sampleRate, params)
	if err != nil {
		return nil, err
	}
	switch {
	case first.Descriptor().Channels == chans:
		all := make([]int, chans)
		for i := range all {
			all[i] = i
		}
		return []runner{{first, all}}, nil
	case first.Descriptor().Channels == 1:
		out := []runner{{first, []int{0}}}
		for ch := 1; ch < chans; ch++ {
			inst, err := newInstance(label, sampleRate, params)
			if err != nil {
				return nil, err
			}
			out = append(out, runner{inst, []int{ch}})
		}
		return out, nil
	default:
		first.Destroy()
		return nil, fmt.Errorf("%w: %s has %d, file has %d",
			errChannelMismatch, label, first.Descriptor().Channels, chans)
	}
}

func (r runner) run(planar *buffer.Planar, frames, block int) error {
	defer r.inst.Destroy()
	if err := r.inst.Activate(); err != nil {
		return err
	}

	desc := r.inst.Descriptor()
	for lo := 0; lo < frames; lo += block {
		hi := min(lo+block, frames)
		for _, p := range desc.Ports {
			if p.Kind == kernel.Control {
				continue
			}
			// Input and output share the channel buffer.
			r.inst.BindAudio(p.ID, planar.Channel(r.channels[p.Channel])[lo:hi])
		}
		if err := r.inst.Process(hi - lo); err != nil {
			return err
		}
	}
	return nil
}
