package libio

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
)

// An asset pack bundles a scene's converted textures into one
// distributable file: a little-endian header followed by an lz4 frame
// holding the entries. The frame uses the fast compression level; the
// payload is already block-compressed texture data, so extra effort buys
// nothing.

const MagicNumberPack = 0xb157a9ac

type PackVersion uint32

const (
	PackVersion1_000_000 = PackVersion(1_000_000)
)

type PackHeader struct {
	Check   uint32
	Version PackVersion
	Count   uint32
}

// PackEntry is one file of an asset pack. Name is a slash-separated path
// relative to the scene descriptor.
type PackEntry struct {
	Name string
	Data []byte
}

func EncodePack(w io.Writer, entries []PackEntry) (err error) {
	bw := &BinaryWriter{
		Dst:   w,
		Order: binary.LittleEndian,
	}

	header := PackHeader{
		Check:   MagicNumberPack,
		Version: PackVersion1_000_000,
		Count:   uint32(len(entries)),
	}
	if !bw.WriteRef(header) {
		return fmt.Errorf("could not write pack header: %w", bw.Err)
	}

	lzw := lz4.NewWriter(bw)
	lzw.Apply(lz4.CompressionLevelOption(lz4.Fast))
	zw := &BinaryWriter{
		Dst:   lzw,
		Order: binary.LittleEndian,
	}

	for _, entry := range entries {
		zw.WriteString(entry.Name)
		zw.WriteRef(uint32(len(entry.Data)))
		zw.WriteBytes(entry.Data)
		if zw.Err != nil {
			return fmt.Errorf("could not write pack entry %q: %w", entry.Name, zw.Err)
		}
	}

	if err := lzw.Close(); err != nil {
		return fmt.Errorf("could not finish pack: %w", err)
	}
	return nil
}

func DecodePack(r io.Reader) (entries []PackEntry, err error) {
	br := &BinaryReader{
		Src:   r,
		Order: binary.LittleEndian,
	}

	header := PackHeader{}
	if !br.ReadRef(&header) {
		return nil, fmt.Errorf("expected pack header; byte 0x%08x", br.LastIndex)
	}
	if header.Check != MagicNumberPack {
		return nil, fmt.Errorf("pack header is corrupt; byte 0x%08x", br.LastIndex)
	}
	if header.Version != PackVersion1_000_000 {
		return nil, fmt.Errorf("pack version %d unsupported; byte 0x%08x", header.Version, br.LastIndex)
	}

	zr := &BinaryReader{
		Src:   lz4.NewReader(br.Src),
		Order: binary.LittleEndian,
	}

	entries = make([]PackEntry, 0, header.Count)
	for i := uint32(0); i < header.Count; i++ {
		var entry PackEntry
		var size uint32
		if !zr.ReadString(&entry.Name) || !zr.ReadRef(&size) {
			return nil, fmt.Errorf("expected pack entry %d; byte 0x%08x", i, zr.LastIndex)
		}
		entry.Data = make([]byte, size)
		if !zr.ReadFull(entry.Data) {
			return nil, fmt.Errorf("expected %d bytes for pack entry %q; byte 0x%08x", size, entry.Name, zr.LastIndex)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
