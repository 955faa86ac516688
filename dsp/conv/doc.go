// Package conv provides direct convolution for short kernels and separable
// 2D convolution of images.
//
// # Usage
//
// One-dimensional linear convolution:
//
//	result, err := conv.Direct(signal, kernel)
//	same, err := conv.ConvolveMode(signal, kernel, conv.ModeSame)
//
// Separable image filtering with a symmetric kernel, such as a Gaussian blur:
//
//	k, _ := window.Gaussian(65, 2)
//	blurred, err := conv.Separable(img, k, k, conv.BorderReflect101)
//
// Borders are extended according to a [Border] mode so the output keeps the
// input shape. Kernels longer than the image are handled by repeated
// reflection.
package conv
