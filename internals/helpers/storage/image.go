// file: internals/helpers/storage/image.go
package storage

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"mime/multipart"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
)

// batas ukuran upload gambar (mengikuti API lama: 2MB)
const MaxImageBytes = 2 * 1024 * 1024

// DecodeImage membaca file upload dan mendecode sebagai gambar.
// JPEG/PNG/GIF lewat imaging (dengan auto-orientation EXIF), WebP
// dicoba sebagai fallback.
func DecodeImage(fh *multipart.FileHeader) (image.Image, error) {
	if fh.Size > MaxImageBytes {
		return nil, fmt.Errorf("ukuran file melebihi %d byte", MaxImageBytes)
	}
	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	raw, err := io.ReadAll(io.LimitReader(src, MaxImageBytes+1))
	if err != nil {
		return nil, err
	}
	if len(raw) > MaxImageBytes {
		return nil, fmt.Errorf("ukuran file melebihi %d byte", MaxImageBytes)
	}

	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err == nil {
		return img, nil
	}
	if wimg, werr := webp.Decode(bytes.NewReader(raw)); werr == nil {
		return wimg, nil
	}
	return nil, fmt.Errorf("file bukan gambar yang valid: %w", err)
}

// EncodeWebP menulis gambar sebagai WebP lossy, diturunkan skalanya
// jika lebarnya melewati maxWidth.
func EncodeWebP(img image.Image, maxWidth int, quality float32) ([]byte, error) {
	b := img.Bounds()
	if maxWidth > 0 && b.Dx() > maxWidth {
		h := b.Dy() * maxWidth / b.Dx()
		dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
		img = dst
	}
	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Lossless: false, Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
