// Package rom implements a reader for cartridge ROM images, as raw dumps of
// the cartridge ROM chip with the game header at a fixed offset from the end.
package rom

import (
	"bytes"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"math/bits"
	"os"
	"strings"
	"text/tabwriter"
)

const (
	MinSize = 0x400     // smallest image holding the header and vectors
	MaxSize = 0x1000000 // whole ROM window

	// The header sits 0x220 bytes before the end of the image, right below
	// the interrupt vectors.
	headerOffset = 0x220
	titleLen     = 20
	reservedLen  = 5
	makerLen     = 2
	gameIDLen    = 4
)

var (
	ErrTooSmall = errors.New("rom image too small")
	ErrTooLarge = errors.New("rom image too large")
)

type Rom struct {
	Header Header
	Data   []byte // image as read
}

type Header struct {
	Title   string
	Maker   string
	GameID  string
	Version uint8
}

// Open loads a rom from file.
func Open(path string) (*Rom, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rom := new(Rom)
	if _, err := rom.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rom, nil
}

// ReadFrom implements io.ReaderFrom interface
func (rom *Rom) ReadFrom(r io.Reader) (int64, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	switch {
	case len(buf) < MinSize:
		return 0, fmt.Errorf("%w: %d bytes, need at least %d", ErrTooSmall, len(buf), MinSize)
	case len(buf) > MaxSize:
		return 0, fmt.Errorf("%w: %d bytes, max %d", ErrTooLarge, len(buf), MaxSize)
	}

	rom.Data = buf
	rom.Header.decode(buf[len(buf)-headerOffset:])
	return int64(len(buf)), nil
}

// field returns the printable part of a fixed-size header field.
func field(p []byte) string {
	p = bytes.TrimRight(p, "\x00 ")
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7E {
			return '?'
		}
		return r
	}, string(p))
}

func (hdr *Header) decode(p []byte) {
	off := 0
	hdr.Title = field(p[off : off+titleLen])
	off += titleLen + reservedLen
	hdr.Maker = field(p[off : off+makerLen])
	off += makerLen
	hdr.GameID = field(p[off : off+gameIDLen])
	off += gameIDLen
	hdr.Version = p[off]
}

// Image returns the image to map in the ROM window. The CPU finds the header
// and the reset vector at the end of the window, so images whose size isn't
// a power of 2 are aligned to the end of the padded image, the gap in front
// being filled by repeating their content backwards.
func (rom *Rom) Image() []byte {
	n := len(rom.Data)
	if n&(n-1) == 0 {
		return rom.Data
	}

	img := make([]byte, 1<<bits.Len(uint(n)))
	for end := len(img); end > 0; end -= n {
		copy(img[max(end-n, 0):end], rom.Data[max(n-end, 0):])
	}
	return img
}

func (rom *Rom) CRC32() uint32 {
	return crc32.ChecksumIEEE(rom.Data)
}

// PrintInfos writes a summary of the rom header to w.
func (rom *Rom) PrintInfos(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "Title:\t%s\n", rom.Header.Title)
	fmt.Fprintf(tw, "Maker:\t%s\n", rom.Header.Maker)
	fmt.Fprintf(tw, "Game ID:\t%s\n", rom.Header.GameID)
	fmt.Fprintf(tw, "Version:\t1.%d\n", rom.Header.Version)
	fmt.Fprintf(tw, "Size:\t%d KiB\n", len(rom.Data)/1024)
	fmt.Fprintf(tw, "CRC32:\t%08x\n", rom.CRC32())
	tw.Flush()
}
