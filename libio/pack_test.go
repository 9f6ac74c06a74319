package libio_test

import (
	"bytes"
	"math/rand"
	"testing"

	"bistro-demo/libio"
)

func randomBytes(n int) []byte {
	data := make([]byte, n)
	rand.Read(data)
	return data
}

func TestPackRoundtrip(t *testing.T) {
	entries := []libio.PackEntry{
		{Name: "textures/Albedo.ktx2", Data: randomBytes(4096)},
		{Name: "textures/Normal.ktx2", Data: randomBytes(100)},
		{Name: "empty.ktx2", Data: []byte{}},
	}

	buf := bytes.NewBuffer(nil)
	if err := libio.EncodePack(buf, entries); err != nil {
		t.Fatal(err)
	}

	decoded, err := libio.DecodePack(buf)
	if err != nil {
		t.Fatal(err)
	}

	if len(decoded) != len(entries) {
		t.Fatalf("expected %d entries, got %d", len(entries), len(decoded))
	}
	for i, entry := range entries {
		if decoded[i].Name != entry.Name {
			t.Errorf("entry %d name should be %q but was %q", i, entry.Name, decoded[i].Name)
		}
		if !bytes.Equal(decoded[i].Data, entry.Data) {
			t.Errorf("entry %d data does not survive the roundtrip", i)
		}
	}
}

func TestPackEmpty(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := libio.EncodePack(buf, nil); err != nil {
		t.Fatal(err)
	}
	decoded, err := libio.DecodePack(buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(decoded) != 0 {
		t.Errorf("expected no entries, got %d", len(decoded))
	}
}

func TestPackCorruptHeader(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := libio.EncodePack(buf, []libio.PackEntry{{Name: "a", Data: []byte{1}}}); err != nil {
		t.Fatal(err)
	}

	data := buf.Bytes()
	data[0] ^= 0xff
	if _, err := libio.DecodePack(bytes.NewReader(data)); err == nil {
		t.Errorf("expected an error for a corrupt header")
	}
}

func TestPackTruncated(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := libio.EncodePack(buf, []libio.PackEntry{{Name: "a", Data: randomBytes(1000)}}); err != nil {
		t.Fatal(err)
	}

	data := buf.Bytes()
	if _, err := libio.DecodePack(bytes.NewReader(data[:len(data)/2])); err == nil {
		t.Errorf("expected an error for truncated input")
	}
}
