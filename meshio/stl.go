// Package meshio reads triangulated-surface files and writes the
// per-component results.
package meshio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/gregorjerse/poroznost/geom"
)

// RawTriangle is one record of the input file: three corner points with no
// shared-vertex or adjacency information.
type RawTriangle [3]geom.Point

// ReadSTL reads a triangle-mesh file in binary or ASCII STL format,
// autodetected, and returns the raw triangle records in file order.
// Normals and attribute bytes are ignored; connectivity is derived later
// by interning.
func ReadSTL(path string) ([]RawTriangle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading mesh file: %w", err)
	}
	if isBinarySTL(data) {
		return decodeBinarySTL(data)
	}
	return decodeASCIISTL(data)
}

// isBinarySTL detects the binary format: an 80-byte header followed by a
// uint32 triangle count and 50-byte records. ASCII files start with
// "solid", but so can a binary header, so the size check decides.
func isBinarySTL(data []byte) bool {
	if len(data) < 84 {
		return false
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if bytes.HasPrefix(trimmed, []byte("solid")) {
		n := binary.LittleEndian.Uint32(data[80:84])
		return uint64(len(data)) == 84+uint64(n)*50
	}
	return true
}

func readFloat32LE(data []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(data))
}

func decodeBinarySTL(data []byte) ([]RawTriangle, error) {
	n := binary.LittleEndian.Uint32(data[80:84])
	if want := 84 + uint64(n)*50; uint64(len(data)) < want {
		return nil, fmt.Errorf("binary STL truncated: want %d bytes, have %d", want, len(data))
	}

	tris := make([]RawTriangle, 0, n)
	offset := 84
	for i := uint32(0); i < n; i++ {
		offset += 12 // skip the stored normal
		var t RawTriangle
		for j := 0; j < 3; j++ {
			t[j] = geom.Point{
				X: readFloat32LE(data[offset:]),
				Y: readFloat32LE(data[offset+4:]),
				Z: readFloat32LE(data[offset+8:]),
			}
			offset += 12
		}
		offset += 2 // attribute byte count
		tris = append(tris, t)
	}
	return tris, nil
}

func decodeASCIISTL(data []byte) ([]RawTriangle, error) {
	var tris []RawTriangle
	var corners []geom.Point

	for lineno, line := range strings.Split(string(data), "\n") {
		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}
		switch words[0] {
		case "vertex":
			if len(words) != 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates", lineno+1)
			}
			var p geom.Point
			for j, dst := range []*float32{&p.X, &p.Y, &p.Z} {
				v, err := strconv.ParseFloat(words[j+1], 32)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineno+1, err)
				}
				*dst = float32(v)
			}
			corners = append(corners, p)
		case "endfacet":
			if len(corners) != 3 {
				return nil, fmt.Errorf("line %d: facet has %d vertices, want 3", lineno+1, len(corners))
			}
			tris = append(tris, RawTriangle{corners[0], corners[1], corners[2]})
			corners = corners[:0]
		}
	}
	if len(corners) != 0 {
		return nil, fmt.Errorf("unterminated facet with %d vertices", len(corners))
	}
	return tris, nil
}
