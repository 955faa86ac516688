// Package spectrum renders 2D spectra as viewable real images.
//
// It does not transform; it reads complex grids produced by dsp/fft2d and
// returns magnitude, power, phase and log-magnitude images.
package spectrum
