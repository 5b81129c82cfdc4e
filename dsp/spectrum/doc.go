// Package spectrum provides frequency-domain measurement for the synth
// engine: a streaming windowed-FFT analyzer for host metering, single-bin
// Goertzel tone detection, and bin magnitude helpers.
//
// FFTs are computed with github.com/MeKo-Christian/algo-fft; bin magnitudes
// and window application use github.com/cwbudde/algo-vecmath kernels.
package spectrum
