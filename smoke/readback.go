package smoke

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"

	gl "github.com/go-gl/gl/v3.3-core/gl"
)

// readFramebuffer reads the back buffer (the frame just rendered, not yet
// presented) as tightly packed RGBA8, bottom row first.
func readFramebuffer(width, height int) []byte {
	pix := make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&pix[0]))
	return pix
}

// verifyClear checks every pixel against the requested clear color within a
// one-step-per-channel tolerance. Coordinates in the mismatch message use
// GL's bottom-left origin, matching the readback order.
func verifyClear(pix []byte, width int, want [4]float32) error {
	var wantBytes [4]byte
	for i, c := range want {
		wantBytes[i] = byte(math.Round(float64(c) * 255))
	}

	for i := 0; i+3 < len(pix); i += 4 {
		for ch := 0; ch < 4; ch++ {
			d := int(pix[i+ch]) - int(wantBytes[ch])
			if d < -1 || d > 1 {
				x := (i / 4) % width
				y := (i / 4) / width
				return fmt.Errorf("clear color mismatch at (%d,%d): got [%d %d %d %d], want [%d %d %d %d]",
					x, y,
					pix[i], pix[i+1], pix[i+2], pix[i+3],
					wantBytes[0], wantBytes[1], wantBytes[2], wantBytes[3])
			}
		}
	}
	return nil
}

// flipRows converts between GL's bottom-up row order and image-file top-down
// order, in place.
func flipRows(pix []byte, width, height int) {
	stride := width * 4
	tmp := make([]byte, stride)
	for y := 0; y < height/2; y++ {
		top := pix[y*stride : (y+1)*stride]
		bottom := pix[(height-1-y)*stride : (height-y)*stride]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}

// writeSnapshot writes the read-back frame to a PNG. pix is consumed in GL
// row order and flipped on the way out.
func writeSnapshot(path string, pix []byte, width, height int) error {
	flipRows(pix, width, height)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, pix)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return f.Close()
}
