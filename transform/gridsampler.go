package transform

import (
	"errors"

	"github.com/corvidlabs/barscan/bitutil"
)

// ErrNotFound is returned when sampling fails.
var ErrNotFound = errors.New("gridsampler: not found")

// GridSampler samples an image to reconstruct a barcode, accounting for
// perspective distortion.
type GridSampler interface {
	SampleGrid(image *bitutil.BitMatrix, dimensionX, dimensionY int,
		p1ToX, p1ToY, p2ToX, p2ToY, p3ToX, p3ToY, p4ToX, p4ToY float64,
		p1FromX, p1FromY, p2FromX, p2FromY, p3FromX, p3FromY, p4FromX, p4FromY float64,
	) (*bitutil.BitMatrix, error)

	SampleGridTransform(image *bitutil.BitMatrix, dimensionX, dimensionY int,
		transform *PerspectiveTransform,
	) (*bitutil.BitMatrix, error)
}

// DefaultGridSampler is the standard GridSampler implementation.
type DefaultGridSampler struct{}

// SampleGrid samples with explicit corner points.
func (s *DefaultGridSampler) SampleGrid(image *bitutil.BitMatrix, dimensionX, dimensionY int,
	p1ToX, p1ToY, p2ToX, p2ToY, p3ToX, p3ToY, p4ToX, p4ToY float64,
	p1FromX, p1FromY, p2FromX, p2FromY, p3FromX, p3FromY, p4FromX, p4FromY float64,
) (*bitutil.BitMatrix, error) {
	transform := QuadrilateralToQuadrilateral(
		p1ToX, p1ToY, p2ToX, p2ToY, p3ToX, p3ToY, p4ToX, p4ToY,
		p1FromX, p1FromY, p2FromX, p2FromY, p3FromX, p3FromY, p4FromX, p4FromY)
	return s.SampleGridTransform(image, dimensionX, dimensionY, transform)
}

// SampleGridTransform samples using a pre-computed transform.
func (s *DefaultGridSampler) SampleGridTransform(image *bitutil.BitMatrix, dimensionX, dimensionY int,
	transform *PerspectiveTransform,
) (*bitutil.BitMatrix, error) {
	if dimensionX <= 0 || dimensionY <= 0 {
		return nil, ErrNotFound
	}
	grid := bitutil.NewBitMatrixWithSize(dimensionX, dimensionY)
	row := make([]float64, 2*dimensionX)
	for y := 0; y < dimensionY; y++ {
		rowCenter := float64(y) + 0.5
		for x := 0; x < len(row); x += 2 {
			row[x] = float64(x/2) + 0.5
			row[x+1] = rowCenter
		}
		transform.TransformPoints(row)
		if err := CheckAndNudgePoints(image, row); err != nil {
			return nil, err
		}
		for x := 0; x < len(row); x += 2 {
			ix, iy := int(row[x]), int(row[x+1])
			if ix < 0 || ix >= image.Width() || iy < 0 || iy >= image.Height() {
				return nil, ErrNotFound
			}
			if image.Get(ix, iy) {
				grid.Set(x/2, y)
			}
		}
	}
	return grid, nil
}

// CheckAndNudgePoints verifies every transformed (x, y) pair falls within
// the image, snapping points that land exactly one pixel outside back
// onto the nearest edge rather than rejecting the whole sample.
func CheckAndNudgePoints(image *bitutil.BitMatrix, points []float64) error {
	width := image.Width()
	height := image.Height()

	nudgeOne := func(offset int) (nudged bool, err error) {
		x := int(points[offset])
		y := int(points[offset+1])
		if x < -1 || x > width || y < -1 || y > height {
			return false, ErrNotFound
		}
		switch x {
		case -1:
			points[offset] = 0
			nudged = true
		case width:
			points[offset] = float64(width - 1)
			nudged = true
		}
		switch y {
		case -1:
			points[offset+1] = 0
			nudged = true
		case height:
			points[offset+1] = float64(height - 1)
			nudged = true
		}
		return nudged, nil
	}

	maxOffset := len(points) - 1
	for offset, nudged := 0, true; offset < maxOffset && nudged; offset += 2 {
		var err error
		nudged, err = nudgeOne(offset)
		if err != nil {
			return err
		}
	}
	for offset, nudged := len(points)-2, true; offset >= 0 && nudged; offset -= 2 {
		var err error
		nudged, err = nudgeOne(offset)
		if err != nil {
			return err
		}
	}
	return nil
}
