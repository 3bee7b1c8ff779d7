// Package protocol holds the wire-format primitives the network layer
// (not implemented by this module; see world.Listener/world.Viewer for the
// seam) would use to encode packets for the classic Minecraft Beta
// protocol: UTF-16BE strings, compressed chunk payloads and item-stack
// encoding.
package protocol

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
	"golang.org/x/text/encoding/unicode"

	"github.com/beta173/core/server/world"
)

var utf16be = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// WriteString writes s as a length-prefixed (uint16 count of UTF-16 code
// units) big-endian UTF-16 string, the original protocol's string form.
func WriteString(w io.Writer, s string) error {
	encoded, err := utf16be.NewEncoder().String(s)
	if err != nil {
		return fmt.Errorf("protocol: encode string: %w", err)
	}
	if err := binary.Write(w, binary.BigEndian, uint16(len(encoded)/2)); err != nil {
		return err
	}
	_, err = w.Write([]byte(encoded))
	return err
}

// ReadString reads a string previously written by WriteString.
func ReadString(r io.Reader) (string, error) {
	var units uint16
	if err := binary.Read(r, binary.BigEndian, &units); err != nil {
		return "", err
	}
	buf := make([]byte, int(units)*2)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	decoded, err := utf16be.NewDecoder().Bytes(buf)
	if err != nil {
		return "", fmt.Errorf("protocol: decode string: %w", err)
	}
	return string(decoded), nil
}

// CompressChunkPayload zlib-compresses a chunk's raw ids/metadata/light
// arrays for the chunk-data packet, matching the original protocol's
// per-chunk deflate framing.
func CompressChunkPayload(ids []byte, meta, blockLight, skyLight []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	for _, part := range [][]byte{ids, meta, blockLight, skyLight} {
		if _, err := zw.Write(part); err != nil {
			return nil, fmt.Errorf("protocol: compress chunk: %w", err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("protocol: compress chunk: %w", err)
	}
	return buf.Bytes(), nil
}

// DecompressChunkPayload reverses CompressChunkPayload into a single
// concatenated byte slice of length size.
func DecompressChunkPayload(data []byte, size int) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("protocol: decompress chunk: %w", err)
	}
	defer zr.Close()
	out := make([]byte, size)
	if _, err := io.ReadFull(zr, out); err != nil {
		return nil, fmt.Errorf("protocol: decompress chunk: %w", err)
	}
	return out, nil
}

// WriteItemStack writes an item-stack slot in the original's wire form: a
// signed 16-bit id (-1 for empty, which short-circuits count/damage), an
// unsigned count byte and a signed 16-bit damage/metadata value.
func WriteItemStack(w io.Writer, stack world.ItemStack) error {
	if stack.Empty() {
		return binary.Write(w, binary.BigEndian, int16(-1))
	}
	if err := binary.Write(w, binary.BigEndian, stack.ID); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, stack.Count); err != nil {
		return err
	}
	return binary.Write(w, binary.BigEndian, stack.Damage)
}

// ReadItemStack reads a slot written by WriteItemStack.
func ReadItemStack(r io.Reader) (world.ItemStack, error) {
	var id int16
	if err := binary.Read(r, binary.BigEndian, &id); err != nil {
		return world.ItemStack{}, err
	}
	if id < 0 {
		return world.ItemStack{}, nil
	}
	var count byte
	var damage int16
	if err := binary.Read(r, binary.BigEndian, &count); err != nil {
		return world.ItemStack{}, err
	}
	if err := binary.Read(r, binary.BigEndian, &damage); err != nil {
		return world.ItemStack{}, err
	}
	return world.ItemStack{ID: id, Count: count, Damage: damage}, nil
}
