package barscan

import (
	"image"
	"image/color"
)

// ImageLuminanceSource is a LuminanceSource implementation that wraps a Go
// image.Image, converting each pixel to greyscale luminance on the fly.
type ImageLuminanceSource struct {
	luminances []byte
	dataWidth  int
	dataHeight int
	left       int
	top        int
	width      int
	height     int
	inverted   bool
}

// NewImageLuminanceSource creates a LuminanceSource from a Go image.Image.
// The image is converted to greyscale luminance values upon construction.
// Uses the same luminance formula as Java ZXing's BufferedImageLuminanceSource:
// (306*R + 601*G + 117*B + 0x200) >> 10, operating on 8-bit color components.
func NewImageLuminanceSource(img image.Image) *ImageLuminanceSource {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	luminances := make([]byte, w*h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			_, _, _, a := c.RGBA()
			if a == 0 {
				// Fully-transparent pixels are forced to white, matching Java behavior.
				luminances[y*w+x] = 0xFF
			} else {
				r, g, b, _ := c.RGBA()
				r8 := r >> 8
				g8 := g >> 8
				b8 := b >> 8
				luminances[y*w+x] = byte((306*r8 + 601*g8 + 117*b8 + 0x200) >> 10)
			}
		}
	}

	return &ImageLuminanceSource{
		luminances: luminances,
		dataWidth:  w,
		dataHeight: h,
		width:      w,
		height:     h,
	}
}

// NewGrayImageLuminanceSource creates a LuminanceSource from a *image.Gray,
// using the pixel data directly without conversion.
func NewGrayImageLuminanceSource(img *image.Gray) *ImageLuminanceSource {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	if img.Stride == w && bounds.Min.X == 0 && bounds.Min.Y == 0 {
		lum := make([]byte, w*h)
		copy(lum, img.Pix[:w*h])
		return &ImageLuminanceSource{luminances: lum, dataWidth: w, dataHeight: h, width: w, height: h}
	}

	luminances := make([]byte, w*h)
	for y := 0; y < h; y++ {
		srcOff := (bounds.Min.Y+y)*img.Stride + bounds.Min.X
		copy(luminances[y*w:], img.Pix[srcOff:srcOff+w])
	}
	return &ImageLuminanceSource{luminances: luminances, dataWidth: w, dataHeight: h, width: w, height: h}
}

func (s *ImageLuminanceSource) pixel(x, y int) byte {
	v := s.luminances[(s.top+y)*s.dataWidth+s.left+x]
	if s.inverted {
		return 0xFF - v
	}
	return v
}

// Row returns a row of luminance data.
func (s *ImageLuminanceSource) Row(y int, row []byte) []byte {
	if y < 0 || y >= s.height {
		return nil
	}
	if row == nil || len(row) < s.width {
		row = make([]byte, s.width)
	}
	offset := (s.top+y)*s.dataWidth + s.left
	if s.inverted {
		for x := 0; x < s.width; x++ {
			row[x] = 0xFF - s.luminances[offset+x]
		}
	} else {
		copy(row, s.luminances[offset:offset+s.width])
	}
	return row
}

// Column returns a column of luminance data, top to bottom.
func (s *ImageLuminanceSource) Column(x int, col []byte) []byte {
	if x < 0 || x >= s.width {
		return nil
	}
	if col == nil || len(col) < s.height {
		col = make([]byte, s.height)
	}
	for y := 0; y < s.height; y++ {
		col[y] = s.pixel(x, y)
	}
	return col
}

// Matrix returns the entire luminance matrix.
func (s *ImageLuminanceSource) Matrix() []byte {
	result := make([]byte, s.width*s.height)
	for y := 0; y < s.height; y++ {
		copy(result[y*s.width:(y+1)*s.width], s.Row(y, nil))
	}
	return result
}

// Width returns the width of the image.
func (s *ImageLuminanceSource) Width() int { return s.width }

// Height returns the height of the image.
func (s *ImageLuminanceSource) Height() int { return s.height }

// Invert returns a source with luminance inverted.
func (s *ImageLuminanceSource) Invert() LuminanceSource {
	clone := *s
	clone.inverted = !s.inverted
	return &clone
}

// Crop returns a view over a sub-rectangle of the source without copying
// pixel data.
func (s *ImageLuminanceSource) Crop(left, top, width, height int) (LuminanceSource, error) {
	if left < 0 || top < 0 || left+width > s.width || top+height > s.height || width <= 0 || height <= 0 {
		return nil, ErrUnsupportedOperation
	}
	clone := *s
	clone.left = s.left + left
	clone.top = s.top + top
	clone.width = width
	clone.height = height
	return &clone, nil
}

// RotateCCW returns a new ImageLuminanceSource rotated 90 degrees
// counterclockwise. This is used by 1D readers to try reading barcodes that
// may be oriented vertically.
func (s *ImageLuminanceSource) RotateCCW() (LuminanceSource, error) {
	newWidth := s.height
	newHeight := s.width
	newLum := make([]byte, newWidth*newHeight)
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			// (x, y) in old image -> (y, width - 1 - x) in new image
			newLum[(s.width-1-x)*newWidth+y] = s.pixel(x, y)
		}
	}
	return &ImageLuminanceSource{
		luminances: newLum,
		dataWidth:  newWidth,
		dataHeight: newHeight,
		width:      newWidth,
		height:     newHeight,
	}, nil
}

// RotateCCW45 is unsupported for image-backed sources; there is no lossless
// 45-degree rotation of a raster without resampling.
func (s *ImageLuminanceSource) RotateCCW45() (LuminanceSource, error) {
	return nil, ErrUnsupportedOperation
}

// BitMatrixToImage converts a BitMatrix to a grayscale image where black
// modules are black (0) and white modules are white (255).
func BitMatrixToImage(matrix interface {
	Width() int
	Height() int
	Get(x, y int) bool
}) *image.Gray {
	w := matrix.Width()
	h := matrix.Height()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if matrix.Get(x, y) {
				img.SetGray(x, y, color.Gray{Y: 0})
			} else {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return img
}
