package vm

// loader.go reads a raw LC-3 image and places it in memory. Images are
// big-endian on the wire regardless of host byte order; there is no
// header magic, no checksum, no symbol table; just an origin followed by
// a sequence of words.

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Loader copies image bytes into a machine's memory.
type Loader struct {
	vm *LC3
}

// NewLoader creates a loader that writes into vm's memory.
func NewLoader(vm *LC3) *Loader {
	return &Loader{vm: vm}
}

// Load reads one image from r: a big-endian origin followed by big-endian
// words, placed consecutively starting at origin. A short read (including
// zero words of code after the origin) is valid and simply stops loading;
// only a read error or a too-short origin is reported. Loading a second
// image at an overlapping origin overwrites the first.
func (l *Loader) Load(r io.Reader) (origin Word, count int, err error) {
	var originBuf [2]byte

	if _, err := io.ReadFull(r, originBuf[:]); err != nil {
		return 0, 0, fmt.Errorf("%w: reading origin: %w", ErrLoader, err)
	}

	origin = Word(binary.BigEndian.Uint16(originBuf[:]))
	max := AddrSpace - int(origin) // words remaining before the address space wraps.

	var wordBuf [2]byte

	for count < max {
		n, err := io.ReadFull(r, wordBuf[:])
		if err == io.EOF {
			break
		} else if err == io.ErrUnexpectedEOF {
			// A single trailing byte is not a valid word; stop without it.
			break
		} else if err != nil {
			return origin, count, fmt.Errorf("%w: reading word: %w", ErrLoader, err)
		}

		if n == 0 {
			break
		}

		l.vm.Mem.Write(origin+Word(count), Word(binary.BigEndian.Uint16(wordBuf[:])))
		count++
	}

	return origin, count, nil
}
