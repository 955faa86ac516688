// Package spectral applies radially symmetric transfer functions to images
// in the frequency domain.
//
// A filtering pass mirror-pads the image to twice its size, takes the
// centered 2D Fourier transform, scales every spectrum coordinate by the
// transfer function's gain at its distance from the center, inverts the
// transform, keeps the real part of the upper-left quadrant (the original
// image area), and normalizes it to [0, 1].
//
// The per-coordinate pass is a pure mapping from the input spectrum to a new
// spectrum. With WithWorkers(n) it is split into contiguous row ranges that
// are evaluated concurrently; the result is identical to the serial pass.
package spectral
