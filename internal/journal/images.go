package journal

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"

	"github.com/julianstephens/lifeup/internal/constants"
)

// StageImage decodes an image, bounds its long edge to 800px preserving
// aspect ratio, re-encodes as JPEG at reduced quality, and returns it as a
// base64 data URL ready to embed in a journal entry. Staged images live only
// in the caller's draft until the entry is saved.
func StageImage(r io.Reader) (string, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}
	return encodeStaged(img)
}

func encodeStaged(img image.Image) (string, error) {
	bounds := img.Bounds()
	if bounds.Dx() > constants.ImageMaxDimension || bounds.Dy() > constants.ImageMaxDimension {
		img = imaging.Fit(img, constants.ImageMaxDimension, constants.ImageMaxDimension, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(constants.ImageJPEGQuality)); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// RemoveStaged drops the staged image at index, preserving the relative
// order of the rest. Out-of-range indices leave the slice untouched.
func RemoveStaged(images []string, index int) []string {
	if index < 0 || index >= len(images) {
		return images
	}
	out := make([]string, 0, len(images)-1)
	out = append(out, images[:index]...)
	return append(out, images[index+1:]...)
}

// GridColumns is the image-layout contract exposed to the shell: one image
// renders full width, two render a two-column grid, three or more render a
// dense square grid.
func GridColumns(imageCount int) int {
	switch {
	case imageCount <= 1:
		return 1
	case imageCount == 2:
		return 2
	default:
		return 3
	}
}
