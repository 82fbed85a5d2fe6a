// Package media turns uploaded profile pictures into square WebP avatars
// and stores them.
package media

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

const (
	AvatarSize    = 256
	avatarQuality = 80

	// MaxUploadBytes bounds the accepted upload size.
	MaxUploadBytes = 5 << 20

	// Decoded images are bounded too: a small compressed file can declare
	// dimensions that need gigabytes once decoded.
	MaxImageSide   = 4096
	MaxImagePixels = 16 << 20

	ContentTypeWebP = "image/webp"
)

var (
	ErrInvalidImage  = httperr.ErrBusinessf("invalid_image", "Unsupported or corrupt image")
	ErrImageTooLarge = httperr.ErrBusinessf("image_too_large", "Image dimensions exceed %dx%d", MaxImageSide, MaxImageSide)
)

// ProcessAvatar decodes r, crops the centre square, scales it to
// AvatarSize and encodes it as WebP. The header is checked against
// MaxImageSide and MaxImagePixels before any pixel is decoded.
func ProcessAvatar(r io.Reader) ([]byte, error) {
	raw, err := io.ReadAll(io.LimitReader(r, MaxUploadBytes))
	if err != nil {
		return nil, fmt.Errorf("media: read upload: %w", err)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, ErrInvalidImage
	}
	if cfg.Width > MaxImageSide || cfg.Height > MaxImageSide ||
		int64(cfg.Width)*int64(cfg.Height) > MaxImagePixels {
		return nil, ErrImageTooLarge
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, ErrInvalidImage
	}

	square := centerSquare(src.Bounds())
	if square.Empty() {
		return nil, ErrInvalidImage
	}

	dst := image.NewRGBA(image.Rect(0, 0, AvatarSize, AvatarSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, square, draw.Over, nil)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, dst, &webp.Options{Quality: avatarQuality}); err != nil {
		return nil, fmt.Errorf("media: encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

func centerSquare(b image.Rectangle) image.Rectangle {
	side := b.Dx()
	if b.Dy() < side {
		side = b.Dy()
	}

	x0 := b.Min.X + (b.Dx()-side)/2
	y0 := b.Min.Y + (b.Dy()-side)/2
	return image.Rect(x0, y0, x0+side, y0+side)
}

// AvatarKey is the object key of a user's avatar. User ids are only unique
// per device, so the device is part of the key.
func AvatarKey(deviceID, userID string) string {
	return "avatars/" + deviceID + "/" + userID + ".webp"
}
