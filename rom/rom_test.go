package rom

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// makeImage returns an image of size bytes with a valid header.
func makeImage(size int) []byte {
	img := make([]byte, size)
	for i := range img {
		img[i] = uint8(i >> 4)
	}
	hdr := img[size-headerOffset:]
	copy(hdr, "VBOY TEST CART      ")
	copy(hdr[25:], "01")
	copy(hdr[27:], "VTCE")
	hdr[31] = 2
	return img
}

func TestReadFrom(t *testing.T) {
	var rom Rom
	n, err := rom.ReadFrom(bytes.NewReader(makeImage(0x1000)))
	if err != nil {
		t.Fatal(err)
	}
	if n != 0x1000 {
		t.Errorf("ReadFrom() = %d, want %d", n, 0x1000)
	}

	want := Header{
		Title:   "VBOY TEST CART",
		Maker:   "01",
		GameID:  "VTCE",
		Version: 2,
	}
	if diff := cmp.Diff(want, rom.Header); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}

	// Power of 2 images are used as is.
	if img := rom.Image(); len(img) != 0x1000 || &img[0] != &rom.Data[0] {
		t.Errorf("Image() returned a copy of a power of 2 image")
	}
}

func TestReadFromErrors(t *testing.T) {
	var rom Rom
	if _, err := rom.ReadFrom(bytes.NewReader(make([]byte, 0x100))); !errors.Is(err, ErrTooSmall) {
		t.Errorf("ReadFrom(0x100 bytes) error = %v, want %v", err, ErrTooSmall)
	}
	if _, err := rom.ReadFrom(bytes.NewReader(make([]byte, MaxSize+1))); !errors.Is(err, ErrTooLarge) {
		t.Errorf("ReadFrom(%#x bytes) error = %v, want %v", MaxSize+1, err, ErrTooLarge)
	}
}

func TestImagePadding(t *testing.T) {
	tests := []struct {
		size, want int
	}{
		{0x600, 0x800},
		{0xA00, 0x1000},
		{0x1100, 0x2000},
	}
	for _, tt := range tests {
		var rom Rom
		data := makeImage(tt.size)
		if _, err := rom.ReadFrom(bytes.NewReader(data)); err != nil {
			t.Fatal(err)
		}

		img := rom.Image()
		if len(img) != tt.want {
			t.Fatalf("len(Image()) = %#x, want %#x", len(img), tt.want)
		}
		gap := tt.want - tt.size
		if !bytes.Equal(img[gap:], data) {
			t.Errorf("%#x: Image() doesn't end with the rom data", tt.size)
		}
		if !bytes.Equal(img[:gap], data[tt.size-gap:]) {
			t.Errorf("%#x: Image() padding doesn't repeat the rom data", tt.size)
		}

		// The header is still found at the end of the ROM window.
		var hdr Header
		hdr.decode(img[len(img)-headerOffset:])
		if hdr != rom.Header {
			t.Errorf("%#x: header at the end of Image() = %+v, want %+v", tt.size, hdr, rom.Header)
		}
	}
}

func TestOpenAndPrintInfos(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.vb")
	if err := os.WriteFile(path, makeImage(0x2000), 0644); err != nil {
		t.Fatal(err)
	}

	rom, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	rom.PrintInfos(&buf)
	for _, want := range []string{"VBOY TEST CART", "VTCE", "Version: 1.2", "8 KiB"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("PrintInfos() output misses %q:\n%s", want, buf.String())
		}
	}

	if _, err := Open(filepath.Join(t.TempDir(), "missing.vb")); err == nil {
		t.Error("Open() succeeded on a missing file")
	}
}
