package scene

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// TextFace is the bitmap face used for the overlay.
var TextFace font.Face = basicfont.Face7x13

// RasterizeText draws s in white on a transparent image sized to fit it.
// Row 0 is the top of the text.
func RasterizeText(s string) *image.RGBA {
	m := TextFace.Metrics()
	w := font.MeasureString(TextFace, s).Ceil()
	if w < 1 {
		w = 1
	}
	h := m.Height.Ceil()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: TextFace,
		Dot:  fixed.P(0, m.Ascent.Ceil()),
	}
	d.DrawString(s)
	return img
}
