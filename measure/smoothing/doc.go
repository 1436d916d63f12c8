// Package smoothing measures the spectral effect of slew-rate limiting:
// how much high-frequency content a limiter configuration strips from a
// signal.
//
// The limiter is a nonlinear element, so it has no transfer function to
// report. Instead the package compares power spectra of the raw input and
// the limited output for a concrete excitation trace, and summarizes the
// attenuation above a configurable split bin as a rejection figure in dB.
// This is the natural way to tune rate limit and smoothing settings against
// a recorded noise profile.
package smoothing
