package freehand

import (
	"image"
	"image/color"
)

// CanvasOption configures a Canvas during creation.
//
// Example:
//
//	// Default transparent canvas
//	cv := freehand.NewCanvas(800, 600)
//
//	// Opaque white canvas
//	cv := freehand.NewCanvas(800, 600, freehand.WithBackground(color.White))
type CanvasOption func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	background color.Color
	source     image.Image
}

// defaultCanvasOptions returns the default canvas options.
func defaultCanvasOptions() canvasOptions {
	return canvasOptions{
		background: nil, // transparent unless set
		source:     nil,
	}
}

// WithBackground fills the canvas with a color before any drawing.
func WithBackground(c color.Color) CanvasOption {
	return func(o *canvasOptions) {
		o.background = c
	}
}

// WithImage seeds the canvas content from an existing image, aligned
// at the canvas origin. It is applied after WithBackground, so the
// background shows anywhere the source does not cover.
//
// Example:
//
//	cv := freehand.NewCanvas(800, 600,
//		freehand.WithBackground(color.White),
//		freehand.WithImage(photo))
func WithImage(src image.Image) CanvasOption {
	return func(o *canvasOptions) {
		o.source = src
	}
}
