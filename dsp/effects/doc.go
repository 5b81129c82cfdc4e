// Package effects provides the voice's output stage.
//
//   - Distortion: tanh overdrive with drive-dependent gain compensation and
//     dry/wet mix.
//
// Effects process single samples or buffers in place without allocating.
package effects
