package libscn

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Descriptor is a scene description file (glTF JSON) that can be loaded,
// have its image references retargeted, and be written back. The decoder
// keeps every value and every separator raw, so a rewrite re-emits the
// file byte-for-byte except for the image objects it actually changed;
// geometry, node and material content is never disturbed, whitespace
// included.
type Descriptor struct {
	Path  string
	Scene *Gltf

	head     []byte
	members  []member
	tail     []byte
	modified bool
}

// member is one key/value pair of a JSON object. pre holds the raw bytes
// between the end of the previous value and the start of this one, which
// covers the separating comma, whitespace, the quoted key and the colon.
type member struct {
	pre []byte
	key string
	raw json.RawMessage
}

// element is one value of a JSON array, with its leading separator raw.
type element struct {
	pre []byte
	raw json.RawMessage
}

func LoadDescriptor(name string) (*Descriptor, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("could not read scene descriptor %q: %w", name, err)
	}
	d, err := DecodeDescriptor(data)
	if err != nil {
		return nil, fmt.Errorf("could not parse scene descriptor %q: %w", name, err)
	}
	d.Path = name
	return d, nil
}

func DecodeDescriptor(data []byte) (*Descriptor, error) {
	head, members, tail, err := decodeMembers(data)
	if err != nil {
		return nil, err
	}

	scene := &Gltf{}
	if err := json.Unmarshal(data, scene); err != nil {
		return nil, err
	}

	return &Descriptor{Scene: scene, head: head, members: members, tail: tail}, nil
}

// Dir is the directory image URIs resolve against.
func (d *Descriptor) Dir() string {
	return filepath.Dir(d.Path)
}

// TextureRefs lists the descriptor's external image references.
func (d *Descriptor) TextureRefs() []TextureRef {
	return d.Scene.TextureRefs()
}

func (d *Descriptor) Modified() bool {
	return d.modified
}

// RetargetImages rewrites the uri of every image for which retarget
// returns a replacement. A retargeted image loses its mimeType member;
// the converted container is not one of the core glTF media types and
// loaders sniff it from the file instead. Returns the number of images
// rewritten.
func (d *Descriptor) RetargetImages(retarget func(index int, uri string) (string, bool)) (int, error) {
	sec := d.member("images")
	if sec == nil {
		return 0, nil
	}

	arrHead, images, arrTail, err := decodeElements(sec.raw)
	if err != nil {
		return 0, fmt.Errorf("could not parse images of %q: %w", d.Path, err)
	}

	changed := 0
	for i := range images {
		_, fields, _, err := decodeMembers(images[i].raw)
		if err != nil {
			return changed, fmt.Errorf("could not parse image %d of %q: %w", i, d.Path, err)
		}

		var uri string
		uriAt := -1
		for f := range fields {
			if fields[f].key == "uri" {
				if err := json.Unmarshal(fields[f].raw, &uri); err != nil {
					return changed, fmt.Errorf("could not parse uri of image %d of %q: %w", i, d.Path, err)
				}
				uriAt = f
				break
			}
		}
		if uriAt < 0 {
			continue
		}

		newURI, ok := retarget(i, uri)
		if !ok || newURI == uri {
			continue
		}

		raw, err := json.Marshal(newURI)
		if err != nil {
			return changed, err
		}
		fields[uriAt].raw = raw

		kept := fields[:0]
		for f := range fields {
			if fields[f].key == "mimeType" {
				continue
			}
			kept = append(kept, fields[f])
		}

		images[i].raw = encodeObject(kept)
		if i < len(d.Scene.Images) {
			d.Scene.Images[i].URI = newURI
			d.Scene.Images[i].MimeType = ""
		}
		changed++
	}

	if changed > 0 {
		sec.raw = encodeArray(arrHead, images, arrTail)
		d.modified = true
	}
	return changed, nil
}

// Save writes the descriptor back to its original path. Callers are
// expected to skip unmodified descriptors so untouched files stay
// byte-identical on disk.
func (d *Descriptor) Save() error {
	if err := os.WriteFile(d.Path, d.Encode(), 0666); err != nil {
		return fmt.Errorf("could not write scene descriptor %q: %w", d.Path, err)
	}
	return nil
}

// Encode serializes the descriptor. Everything comes out byte-for-byte
// as it was read, separators and indentation included; only rewritten
// image objects are re-encoded in compact form.
func (d *Descriptor) Encode() []byte {
	buf := bytes.NewBuffer(nil)
	buf.Write(d.head)
	for i := range d.members {
		buf.Write(d.members[i].pre)
		buf.Write(d.members[i].raw)
	}
	buf.Write(d.tail)
	return buf.Bytes()
}

func (d *Descriptor) member(key string) *member {
	for i := range d.members {
		if d.members[i].key == key {
			return &d.members[i]
		}
	}
	return nil
}

// decodeMembers splits a JSON object into its ordered key/value pairs.
// Values and the text around them are kept raw: head runs up to and
// including the opening brace, each member's pre covers its separator,
// key and colon, and tail runs from the last value to the end of the
// input. Input past the closing brace is rejected.
func decodeMembers(data []byte) (head []byte, members []member, tail []byte, err error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, nil, fmt.Errorf("expected a JSON object, got %v", tok)
	}
	head = data[:dec.InputOffset()]
	prev := dec.InputOffset()

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, nil, nil, fmt.Errorf("expected an object key, got %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, nil, nil, fmt.Errorf("could not read value of %q: %w", key, err)
		}
		end := dec.InputOffset()
		members = append(members, member{
			pre: data[prev : end-int64(len(raw))],
			key: key,
			raw: raw,
		})
		prev = end
	}

	if _, err := dec.Token(); err != nil {
		return nil, nil, nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = fmt.Errorf("unexpected data after the closing brace")
		}
		return nil, nil, nil, err
	}
	return head, members, data[prev:], nil
}

// decodeElements splits a JSON array the same way decodeMembers splits
// an object.
func decodeElements(data []byte) (head []byte, elements []element, tail []byte, err error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, nil, nil, fmt.Errorf("expected a JSON array, got %v", tok)
	}
	head = data[:dec.InputOffset()]
	prev := dec.InputOffset()

	for dec.More() {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, nil, nil, err
		}
		end := dec.InputOffset()
		elements = append(elements, element{
			pre: data[prev : end-int64(len(raw))],
			raw: raw,
		})
		prev = end
	}

	if _, err := dec.Token(); err != nil {
		return nil, nil, nil, err
	}
	return head, elements, data[prev:], nil
}

func encodeObject(members []member) []byte {
	buf := bytes.NewBuffer(nil)
	buf.WriteByte('{')
	for i := range members {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(members[i].key)
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(members[i].raw)
	}
	buf.WriteByte('}')
	return buf.Bytes()
}

func encodeArray(head []byte, elements []element, tail []byte) []byte {
	buf := bytes.NewBuffer(nil)
	buf.Write(head)
	for i := range elements {
		buf.Write(elements[i].pre)
		buf.Write(elements[i].raw)
	}
	buf.Write(tail)
	return buf.Bytes()
}
