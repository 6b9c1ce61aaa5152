// Package snapshot encodes a types.State for storage. The raw state is
// brotli compressed and followed by an 8 byte little-endian xxhash64 of
// the uncompressed data, which Decode verifies.
package snapshot

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/cespare/xxhash"
	"github.com/thelolagemann/lr35902/internal/types"
)

const checksumSize = 8

var (
	// ErrTruncated is returned when the data is too short to hold a checksum.
	ErrTruncated = errors.New("snapshot: truncated")
	// ErrChecksum is returned when the decoded state does not match its checksum.
	ErrChecksum = errors.New("snapshot: checksum mismatch")
)

// Encode compresses s and appends its checksum.
func Encode(s *types.State) ([]byte, error) {
	raw := s.Bytes()

	var buf bytes.Buffer
	w := brotli.NewWriterLevel(&buf, brotli.BestCompression)
	if _, err := w.Write(raw); err != nil {
		return nil, fmt.Errorf("snapshot: compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("snapshot: compress: %w", err)
	}

	return binary.LittleEndian.AppendUint64(buf.Bytes(), xxhash.Sum64(raw)), nil
}

// Decode reverses Encode, returning a State positioned at its start.
func Decode(b []byte) (*types.State, error) {
	if len(b) < checksumSize {
		return nil, ErrTruncated
	}
	body, sum := b[:len(b)-checksumSize], binary.LittleEndian.Uint64(b[len(b)-checksumSize:])

	raw, err := io.ReadAll(brotli.NewReader(bytes.NewReader(body)))
	if err != nil {
		return nil, fmt.Errorf("snapshot: decompress: %w", err)
	}
	if xxhash.Sum64(raw) != sum {
		return nil, ErrChecksum
	}

	return types.StateFromBytes(raw), nil
}

// Checksum returns the xxhash64 of the raw state, useful for comparing
// two machines without encoding them.
func Checksum(s *types.State) uint64 {
	return xxhash.Sum64(s.Bytes())
}
