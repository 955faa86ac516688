// Package fft2d computes centered two-dimensional discrete Fourier
// transforms of image grids.
//
// Transforms are separable: every row is transformed, then every column.
// The one-dimensional plans come from one of several backends:
//
//   - BackendAuto uses algo-fft plans for power-of-two lengths and gonum's
//     mixed-radix FFTPACK port for every other length.
//   - BackendGonum always uses gonum.
//   - BackendGoDSP hands the whole grid to go-dsp's FFT2/IFFT2.
//
// Forward transforms are unnormalized; inverse transforms divide by the
// element count, so Inverse(Forward(x)) == x within round-off.
//
// Shift and Unshift move the zero-frequency term to and from index
// (rows/2, cols/2), matching the fftshift/ifftshift convention.
package fft2d
