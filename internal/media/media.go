// Package media holds the embedded boot artwork.
package media

import (
	"embed"
	"errors"
	"image"

	"golang.org/x/image/bmp"
)

//go:embed media/*.bmp
var imgs embed.FS

const (
	// LogoW and LogoH are the fixed boot logo dimensions.
	LogoW = 64
	LogoH = 32
)

// Logo decodes the embedded boot logo.
func Logo() (image.Image, error) {
	r, err := imgs.Open("media/logo.bmp")
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	img, err := bmp.Decode(r)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	if b.Dx() != LogoW || b.Dy() != LogoH {
		return nil, errors.New("boot logo has wrong dimensions")
	}
	return img, nil
}
