package scene

import "testing"

func TestRasterizeTextSize(t *testing.T) {
	img := RasterizeText("Time Step: 12")
	b := img.Bounds()
	if b.Dx() != 13*7 || b.Dy() != 13 {
		t.Fatalf("size = %dx%d, want %dx13", b.Dx(), b.Dy(), 13*7)
	}
	lit := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 0 {
			lit++
		}
	}
	if lit == 0 {
		t.Fatal("no glyph pixels drawn")
	}
}

func TestRasterizeEmpty(t *testing.T) {
	if b := RasterizeText("").Bounds(); b.Dx() != 1 {
		t.Fatalf("empty string width = %d, want 1", b.Dx())
	}
}
