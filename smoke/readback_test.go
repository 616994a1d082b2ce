package smoke

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var clearWant = [4]float32{0.2, 0.3, 0.3, 1.0}

// uniformPix fills a width*height frame with one RGBA value.
func uniformPix(width, height int, rgba [4]byte) []byte {
	pix := make([]byte, width*height*4)
	for i := 0; i < len(pix); i += 4 {
		copy(pix[i:i+4], rgba[:])
	}
	return pix
}

func TestVerifyClearMatch(t *testing.T) {
	// 0.2 and 0.3 quantize to 51 and 77 on an 8-bit channel.
	pix := uniformPix(2, 2, [4]byte{51, 77, 77, 255})
	require.NoError(t, verifyClear(pix, 2, clearWant))
}

func TestVerifyClearTolerance(t *testing.T) {
	// One quantization step per channel is how far drivers are allowed to land.
	pix := uniformPix(2, 2, [4]byte{52, 76, 78, 254})
	require.NoError(t, verifyClear(pix, 2, clearWant))
}

func TestVerifyClearMismatch(t *testing.T) {
	pix := uniformPix(2, 2, [4]byte{51, 77, 77, 255})
	pix[3*4] = 60 // pixel (1,1), red channel

	err := verifyClear(pix, 2, clearWant)
	require.Error(t, err)
	require.Contains(t, err.Error(), "clear color mismatch at (1,1)")
	require.Contains(t, err.Error(), "got [60 77 77 255]")
}

func TestFlipRows(t *testing.T) {
	pix := []byte{
		1, 2, 3, 4, // row 0 (bottom)
		5, 6, 7, 8,
		9, 10, 11, 12, // row 2 (top)
	}
	flipRows(pix, 1, 3)
	require.Equal(t, []byte{9, 10, 11, 12, 5, 6, 7, 8, 1, 2, 3, 4}, pix)
}

func TestWriteSnapshot(t *testing.T) {
	// Bottom row red, top row green in GL order. The file must come out
	// top-down, so the decoded image starts with green.
	pix := []byte{
		255, 0, 0, 255,
		0, 255, 0, 255,
	}
	path := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, writeSnapshot(path, pix, 1, 2))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	bounds := img.Bounds()
	require.Equal(t, 1, bounds.Dx())
	require.Equal(t, 2, bounds.Dy())
	require.Equal(t, color.RGBA{G: 255, A: 255}, color.RGBAModel.Convert(img.At(0, 0)))
	require.Equal(t, color.RGBA{R: 255, A: 255}, color.RGBAModel.Convert(img.At(0, 1)))
}
