package g3d

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestPixmapSetGet(t *testing.T) {
	pm := NewPixmap(4, 3)
	pm.SetPixel(1, 2, Red)
	if got := pm.GetPixel(1, 2); got != Red {
		t.Errorf("GetPixel(1,2) = %v, want %v", got, Red)
	}
	// Out of bounds is ignored.
	pm.SetPixel(-1, 0, Red)
	pm.SetPixel(4, 0, Red)
	if got := pm.GetPixel(9, 9); got != Transparent {
		t.Errorf("GetPixel(out of bounds) = %v, want transparent", got)
	}
}

func TestPixmapClear(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.Clear(Black)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := pm.At(x, y); got != (color.NRGBA{0, 0, 0, 255}) {
				t.Errorf("At(%d,%d) = %v, want opaque black", x, y, got)
			}
		}
	}
}

func TestPixmapResizeSameSizeKeepsBuffer(t *testing.T) {
	pm := NewPixmap(8, 8)
	before := &pm.Data()[0]
	pm.Resize(8, 8)
	if &pm.Data()[0] != before {
		t.Error("Resize() to the same size reallocated the buffer")
	}
	pm.Resize(4, 2)
	if pm.Width() != 4 || pm.Height() != 2 || len(pm.Data()) != 32 {
		t.Errorf("Resize(4,2) = %dx%d len %d", pm.Width(), pm.Height(), len(pm.Data()))
	}
}

func TestPixmapEmpty(t *testing.T) {
	if !NewPixmap(0, 10).Empty() {
		t.Error("NewPixmap(0,10).Empty() = false, want true")
	}
	if NewPixmap(-3, 2).Width() != 0 {
		t.Error("negative width not clamped to 0")
	}
}

func TestPixmapSavePNG(t *testing.T) {
	pm := NewPixmap(3, 3)
	pm.Clear(Blue)
	path := filepath.Join(t.TempDir(), "out.png")
	if err := pm.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if got := FromColor(img.At(1, 1)); got != Blue {
		t.Errorf("decoded pixel = %v, want %v", got, Blue)
	}
}
