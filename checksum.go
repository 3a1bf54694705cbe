package tabgo

import (
	"encoding/binary"
	"fmt"
	"hash"
	"hash/crc32"
	"io"
	"math"

	"github.com/hupe1980/tabgo/matrix"
)

// Checksum utilities for table change detection.
//
// Uses CRC32 (IEEE polynomial) for:
// - Fast computation (hardware-accelerated on modern CPUs)
// - Good error detection
// - Standard algorithm (well-tested, widely used)
//
// Note: CRC32 is NOT cryptographically secure. Use only for equality and
// change detection, never for tamper detection.

// CRC32Table is the IEEE polynomial table for checksum computation.
var CRC32Table = crc32.MakeTable(crc32.IEEE)

// ChecksumWriter wraps an io.Writer and computes a running CRC32 checksum.
type ChecksumWriter struct {
	w    io.Writer
	hash hash.Hash32
}

// NewChecksumWriter creates a new checksumming writer.
func NewChecksumWriter(w io.Writer) *ChecksumWriter {
	return &ChecksumWriter{
		w:    w,
		hash: crc32.New(CRC32Table),
	}
}

// Write implements io.Writer.
func (cw *ChecksumWriter) Write(p []byte) (int, error) {
	if _, err := cw.hash.Write(p); err != nil {
		return 0, err
	}
	return cw.w.Write(p)
}

// Sum returns the current checksum value.
func (cw *ChecksumWriter) Sum() uint32 {
	return cw.hash.Sum32()
}

// Reset resets the checksum to initial state.
func (cw *ChecksumWriter) Reset() {
	cw.hash.Reset()
}

// Checksum returns a digest of the table's container contents, in the
// fixed order features, targets, metadata (optionally), weights. Intended
// for equality and change detection only.
func (t *Table) Checksum(includeMetas bool) uint32 {
	h := crc32.New(CRC32Table)
	writeFloatContainer(h, t.x)
	writeFloatContainer(h, t.y)
	if includeMetas {
		writeValueContainer(h, t.metas)
	}
	writeFloatContainer(h, t.w)
	return h.Sum32()
}

func writeFloatContainer(h io.Writer, m *matrix.Dense[float64]) {
	var buf [8]byte
	for c := 0; c < m.Cols(); c++ {
		col, _ := m.Column(c)
		for _, v := range col {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			h.Write(buf[:]) //nolint errcheck
		}
	}
}

func writeValueContainer(h io.Writer, m *matrix.Dense[any]) {
	var buf [8]byte
	for c := 0; c < m.Cols(); c++ {
		col, _ := m.Column(c)
		for _, v := range col {
			switch x := v.(type) {
			case nil:
				h.Write([]byte{0}) //nolint errcheck
			case float64:
				buf[0] = 1
				h.Write(buf[:1]) //nolint errcheck
				binary.LittleEndian.PutUint64(buf[:], math.Float64bits(x))
				h.Write(buf[:]) //nolint errcheck
			case string:
				buf[0] = 2
				h.Write(buf[:1]) //nolint errcheck
				io.WriteString(h, x) //nolint errcheck
				h.Write([]byte{0}) //nolint errcheck
			default:
				buf[0] = 3
				h.Write(buf[:1]) //nolint errcheck
				fmt.Fprintf(h, "%v", x)
				h.Write([]byte{0}) //nolint errcheck
			}
		}
	}
}
