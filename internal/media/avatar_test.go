package media

import (
	"bytes"
	"context"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/chai2010/webp"

	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestProcessAvatar(t *testing.T) {
	out, err := ProcessAvatar(bytes.NewReader(pngBytes(t, 640, 480)))
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not webp: %v", err)
	}
	if cfg.Width != AvatarSize || cfg.Height != AvatarSize {
		t.Errorf("expected %dx%d, got %dx%d", AvatarSize, AvatarSize, cfg.Width, cfg.Height)
	}
}

func TestProcessAvatarRejectsGarbage(t *testing.T) {
	if _, err := ProcessAvatar(strings.NewReader("not an image")); !httperr.IsBusiness(err, "invalid_image") {
		t.Errorf("expected invalid_image, got %v", err)
	}
}

// pngHeader is a PNG signature and IHDR chunk declaring w x h RGB pixels,
// with no image data behind it.
func pngHeader(w, h uint32) []byte {
	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:], w)
	binary.BigEndian.PutUint32(ihdr[4:], h)
	ihdr[8] = 8 // bit depth
	ihdr[9] = 2 // truecolor

	chunk := append([]byte("IHDR"), ihdr...)
	_ = binary.Write(&buf, binary.BigEndian, uint32(len(ihdr)))
	buf.Write(chunk)
	_ = binary.Write(&buf, binary.BigEndian, crc32.ChecksumIEEE(chunk))
	return buf.Bytes()
}

func TestProcessAvatarRejectsHugeDimensions(t *testing.T) {
	tests := []struct {
		name string
		w, h uint32
	}{
		{"both sides", 30000, 30000},
		{"one side", MaxImageSide + 1, 16},
	}

	for _, tt := range tests {
		_, err := ProcessAvatar(bytes.NewReader(pngHeader(tt.w, tt.h)))
		if !httperr.IsBusiness(err, "image_too_large") {
			t.Errorf("%s: expected image_too_large, got %v", tt.name, err)
		}
	}
}

func TestCenterSquare(t *testing.T) {
	tests := []struct {
		in   image.Rectangle
		want image.Rectangle
	}{
		{image.Rect(0, 0, 640, 480), image.Rect(80, 0, 560, 480)},
		{image.Rect(0, 0, 300, 500), image.Rect(0, 100, 300, 400)},
		{image.Rect(10, 10, 110, 110), image.Rect(10, 10, 110, 110)},
	}

	for _, tt := range tests {
		if got := centerSquare(tt.in); got != tt.want {
			t.Errorf("centerSquare(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore("/media/")

	url, err := s.Put(context.Background(), AvatarKey("dev-a", "user_1"), []byte("x"), ContentTypeWebP)
	if err != nil {
		t.Fatal(err)
	}
	if url != "/media/avatars/dev-a/user_1.webp" {
		t.Errorf("unexpected url %s", url)
	}

	o, ok := s.Get("avatars/dev-a/user_1.webp")
	if !ok || string(o.Data) != "x" || o.ContentType != ContentTypeWebP {
		t.Errorf("unexpected object %+v", o)
	}
}

func TestAvatarKeyIsPerDevice(t *testing.T) {
	s := NewMemoryStore("/media/")
	ctx := context.Background()

	a, _ := s.Put(ctx, AvatarKey("dev-a", "user_1"), []byte("a"), ContentTypeWebP)
	b, _ := s.Put(ctx, AvatarKey("dev-b", "user_1"), []byte("b"), ContentTypeWebP)
	if a == b {
		t.Fatalf("two devices share avatar url %s", a)
	}

	o, _ := s.Get(AvatarKey("dev-a", "user_1"))
	if string(o.Data) != "a" {
		t.Errorf("dev-a avatar overwritten: %q", o.Data)
	}
}

func TestNewStore(t *testing.T) {
	if _, ok := NewStore(&config.Config{}).(*MemoryStore); !ok {
		t.Error("expected memory store without a bucket")
	}

	s, ok := NewStore(&config.Config{S3Bucket: "avatars", S3Region: "af-south-1"}).(*S3Store)
	if !ok {
		t.Fatal("expected s3 store with a bucket")
	}
	if s.publicURL != "https://avatars.s3.af-south-1.amazonaws.com" {
		t.Errorf("unexpected public url %s", s.publicURL)
	}
}
