// Package highlight turns a grayscale image into a translucent overlay whose
// alpha channel marks fine structure.
//
// Two pipelines are available. [Spectral] squares and pads the image, low-pass
// filters it in the frequency domain and keeps the positive part of the
// difference against the original. [Simple] does the same with a spatial
// Gaussian blur. Both end in [Composite]-style alpha masks carried by an
// [Overlay] of constant tint.
package highlight
