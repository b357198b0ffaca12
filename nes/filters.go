package nes

import "math"

// filter is a single-pole IIR filter stage. The APU chains two high-pass
// stages and one low-pass stage to reproduce the output RC network of a
// real NES/Famicom.
// Reference: _examples/original_source/src/apu/filters.rs
type filter interface {
	process(amplitude float32) float32
}

type lowPassFilter struct {
	previousOutput float32
	alpha          float32
}

func newLowPassFilter(frequency, sampleRate float64) *lowPassFilter {
	rc := 1.0 / (2.0 * math.Pi * frequency)
	dt := 1.0 / sampleRate
	return &lowPassFilter{alpha: float32(dt / (rc + dt))}
}

func (f *lowPassFilter) process(amplitude float32) float32 {
	out := f.previousOutput + f.alpha*(amplitude-f.previousOutput)
	f.previousOutput = out
	return out
}

type highPassFilter struct {
	previousOutput float32
	previousInput  float32
	alpha          float32
}

func newHighPassFilter(frequency, sampleRate float64) *highPassFilter {
	rc := 1.0 / (2.0 * math.Pi * frequency)
	dt := 1.0 / sampleRate
	return &highPassFilter{alpha: float32(rc / (rc + dt))}
}

func (f *highPassFilter) process(amplitude float32) float32 {
	out := f.alpha * (f.previousOutput + amplitude - f.previousInput)
	f.previousInput = amplitude
	f.previousOutput = out
	return out
}
