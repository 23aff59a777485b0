package skygen

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/sixworlds/exosky/internal/domain"
	xdraw "golang.org/x/image/draw"
)

// DefaultWidth is the edge length of generated images in pixels.
const DefaultWidth = 1080

// Options controls image generation.
type Options struct {
	// Width is the edge length images are drawn at.
	Width int
	// Size, when positive and smaller than Width, is the edge length images
	// are scaled down to before encoding.
	Size int
}

func (o Options) width() int {
	if o.Width <= 0 {
		return DefaultWidth
	}
	return o.Width
}

// MagnitudeRange returns the brightest (min) and faintest (max) magnitude
// among points.
func MagnitudeRange(points []domain.SkyPoint) (minMag, maxMag float64) {
	if len(points) == 0 {
		return 0, 0
	}
	minMag, maxMag = math.Inf(1), math.Inf(-1)
	for _, pt := range points {
		minMag = math.Min(minMag, pt.Mag)
		maxMag = math.Max(maxMag, pt.Mag)
	}
	return minMag, maxMag
}

// StarShade maps a magnitude to a grey level. Faint stars are floored at
// 60% brightness and the brightest tenth saturate.
func StarShade(mag, minMag, maxMag float64) uint8 {
	rel := 1.0
	if diff := maxMag - minMag; diff != 0 {
		rel = math.Abs((mag - maxMag) / diff)
	}
	if rel > 0.9 {
		rel = 1
	}
	if rel < 0.5 {
		rel = 0.6
	}
	return uint8(math.Floor(255 * rel))
}

// RenderSkyMaps draws the north and south polar sky maps. Each star is a
// plus-shaped group of five pixels.
func RenderSkyMaps(points []domain.SkyPoint, opts Options) (north, south *image.Gray) {
	w := opts.width()
	north = image.NewGray(image.Rect(0, 0, w, w))
	south = image.NewGray(image.Rect(0, 0, w, w))

	scale := float64(w) / 180
	minMag, maxMag := MagnitudeRange(points)
	for _, pt := range points {
		img := north
		if pt.Hemisphere == domain.South {
			img = south
		}
		row := int(math.Floor(pt.X*scale + float64(w)/2))
		col := int(math.Floor(pt.Y*scale + float64(w)/2))
		shade := color.Gray{Y: StarShade(pt.Mag, minMag, maxMag)}

		plot(img, row, col, shade)
		plot(img, row-1, col, shade)
		plot(img, row+1, col, shade)
		plot(img, row, col-1, shade)
		plot(img, row, col+1, shade)
	}
	return north, south
}

// RenderSkyBox draws one image per cube face with each star as a single
// white pixel.
func RenderSkyBox(points []domain.SkyPoint, opts Options) map[domain.Face]*image.Gray {
	w := opts.width()
	faces := make(map[domain.Face]*image.Gray, len(domain.Faces))
	for _, f := range domain.Faces {
		faces[f] = image.NewGray(image.Rect(0, 0, w, w))
	}

	white := color.Gray{Y: 255}
	for _, pt := range points {
		img, ok := faces[pt.Face]
		if !ok {
			continue
		}
		x, y := FaceCoords(pt)
		row := int(math.Floor(x / 90 * float64(w)))
		col := int(math.Floor(y / 90 * float64(w)))
		plot(img, row, col, white)
	}
	return faces
}

// plot sets one pixel, addressed row-first, dropping points off the image.
func plot(img *image.Gray, row, col int, c color.Gray) {
	if !(image.Point{X: col, Y: row}).In(img.Rect) {
		return
	}
	img.SetGray(col, row, c)
}

// Downscale resizes img to size×size.
func Downscale(img image.Image, size int) *image.Gray {
	dst := image.NewGray(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}

// WritePNG encodes img to path, scaling it down first when opts asks for it.
func WritePNG(path string, img image.Image, opts Options) error {
	if opts.Size > 0 && opts.Size < img.Bounds().Dx() {
		img = Downscale(img, opts.Size)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

// AssetDir returns root/planet, creating it. Planet names that would escape
// root are rejected.
func AssetDir(root, planet string) (string, error) {
	if planet == "" || planet == "." || planet == ".." ||
		strings.ContainsAny(planet, `/\`) {
		return "", fmt.Errorf("planet name %q is not usable as a directory", planet)
	}
	dir := filepath.Join(root, planet)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating asset directory: %w", err)
	}
	return dir, nil
}

// SkyMapFile returns the file name of a sky map.
func SkyMapFile(h domain.Hemisphere) string {
	return "skymap_" + h.Suffix() + ".png"
}

// SkyBoxFile returns the file name of a skybox face.
func SkyBoxFile(f domain.Face) string {
	return "skybox_" + f.Suffix() + ".png"
}
