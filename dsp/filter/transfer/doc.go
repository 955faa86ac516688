// Package transfer provides radially symmetric frequency-domain transfer
// functions for centered 2D spectra.
//
// Every transfer function is a pure gain of the distance d between a
// spectrum coordinate and the spectrum center (rows/2, cols/2):
//
//	none              1
//	ideal             1 if d < k, else 0
//	butterworth-low   1 / (1 + (d/k)^n)
//	butterworth-high  1 - 1/(1 + (d/k)^n)
//	exponential       exp(-d^2 / (2k^2))
//
// k is the cutoff radius in frequency-domain pixels and n the Butterworth
// order. The low- and high-pass Butterworth gains are complementary: they
// sum to one at every distance.
package transfer
