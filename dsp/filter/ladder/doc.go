// Package ladder provides a three-pole resonant low-pass filter in the style
// of the diode ladder found in classic monophonic bass synthesizers.
//
// Three cascaded one-pole trapezoidal low-pass stages give an 18 dB/octave
// slope. Resonance is produced by feeding the third stage back to the input
// through a tanh saturator, so the loop stays bounded even when resonance is
// pushed to self-oscillation. The output passes through SoftClip, which is
// unity inside [-1, 1] and approaches ±1.5 exponentially outside.
//
// The cutoff coefficient uses the bilinear tangent pre-warp, which keeps the
// stages stable up to the 0.49*sampleRate cutoff limit.
package ladder
