// Package dither quantizes [0, 1] images to a fixed number of levels with
// optional dither noise and two-dimensional error diffusion.
//
// Smooth alpha gradients written at 8 bits band visibly when rounded
// directly. A Quantizer with Floyd-Steinberg diffusion spreads each pixel's
// rounding error to its unvisited neighbors, which keeps local means and
// moves the error to high spatial frequencies.
package dither
