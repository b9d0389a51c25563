package folio

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"

	"github.com/eringen/folio/content"
)

const (
	maxImageWidth = 800
	jpegQuality   = 80
	coversSubdir  = "covers"
)

// Thumbnail is a resized cover image ready to be written to disk.
type Thumbnail struct {
	Filename string
	Width    int
	Height   int
	Data     []byte
}

// processImage decodes an image from src, resizes it to maxImageWidth when
// wider, and encodes it as JPEG.
func processImage(src io.Reader, name string) (Thumbnail, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return Thumbnail{}, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w > maxImageWidth {
		newH := h * maxImageWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
		w = maxImageWidth
		h = newH
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return Thumbnail{}, fmt.Errorf("encode jpeg: %w", err)
	}

	return Thumbnail{
		Filename: name + ".jpg",
		Width:    w,
		Height:   h,
		Data:     buf.Bytes(),
	}, nil
}

// coverSource maps a post's cover image to a file in the static dir. Remote
// and non-/public/ covers have no local source.
func (a *App) coverSource(p content.Post) (string, bool) {
	rel, ok := strings.CutPrefix(p.CoverImage, "/public/")
	if !ok || rel == "" || strings.Contains(rel, "..") {
		return "", false
	}
	return filepath.Join(a.Config.StaticDir, filepath.FromSlash(rel)), true
}

// writeCover writes a thumbnail of p's cover to <outDir>/public/covers/<slug>.jpg.
// Posts without a local cover are skipped.
func (a *App) writeCover(outDir string, p content.Post) error {
	path, ok := a.coverSource(p)
	if !ok {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open cover for %s: %w", p.Slug, err)
	}
	defer f.Close()

	thumb, err := processImage(f, p.Slug)
	if err != nil {
		return fmt.Errorf("cover for %s: %w", p.Slug, err)
	}

	dir := filepath.Join(outDir, "public", coversSubdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create covers dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, thumb.Filename), thumb.Data, 0o644); err != nil {
		return fmt.Errorf("write cover: %w", err)
	}
	return nil
}
