// Package response measures the impulse and magnitude response of a running
// kernel instance.
//
// # Usage
//
//	ir, err := response.Impulse(inst, 4096)
//	a := response.NewAnalyzer(core.WithSampleRate(inst.SampleRate()))
//	bins, err := a.Magnitude(ir)
//
// Impulse advances the instance state like any other Process call, so
// measure a freshly activated instance for a clean result.
package response
