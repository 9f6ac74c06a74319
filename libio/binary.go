package libio

import (
	"encoding/binary"
	"fmt"
	"io"
)

// BinaryReader latches the first error and turns every later call into a
// no-op, so codecs can run a straight-line sequence of reads and check
// Err once.
type BinaryReader struct {
	Order     binary.ByteOrder
	Src       io.Reader
	Index     int
	LastIndex int
	Err       error
}

func (br *BinaryReader) Read(p []byte) (n int, err error) {
	return br.Src.Read(p)
}

func (br *BinaryReader) ReadRef(data any) (ok bool) {
	if br.Err != nil {
		return false
	}
	err := binary.Read(br.Src, br.Order, data)
	br.Err = err
	br.LastIndex = br.Index
	if err == nil {
		br.Index += binary.Size(data)
	}
	return err == nil
}

func (br *BinaryReader) ReadFull(p []byte) (ok bool) {
	if br.Err != nil {
		return false
	}
	n, err := io.ReadFull(br.Src, p)
	br.LastIndex = br.Index
	br.Index += n
	br.Err = err
	return err == nil
}

// ReadString reads a uint16 length-prefixed string.
func (br *BinaryReader) ReadString(s *string) (ok bool) {
	var length uint16
	if !br.ReadRef(&length) {
		return false
	}
	buf := make([]byte, length)
	if !br.ReadFull(buf) {
		return false
	}
	*s = string(buf)
	return true
}

type BinaryWriter struct {
	Order binary.ByteOrder
	Dst   io.Writer
	Err   error
}

func (bw *BinaryWriter) Write(p []byte) (n int, err error) {
	return bw.Dst.Write(p)
}

func (bw *BinaryWriter) WriteBytes(p []byte) (ok bool) {
	if bw.Err != nil {
		return false
	}
	_, err := bw.Dst.Write(p)
	if err != nil {
		bw.Err = err
		return false
	}
	return true
}

func (bw *BinaryWriter) WriteRef(data any) (ok bool) {
	if bw.Err != nil {
		return false
	}
	err := binary.Write(bw.Dst, bw.Order, data)
	bw.Err = err
	return err == nil
}

// WriteString writes a uint16 length-prefixed string.
func (bw *BinaryWriter) WriteString(s string) (ok bool) {
	if len(s) > 0xffff {
		bw.Err = fmt.Errorf("string of %d bytes does not fit a uint16 length", len(s))
		return false
	}
	if !bw.WriteRef(uint16(len(s))) {
		return false
	}
	return bw.WriteBytes([]byte(s))
}
