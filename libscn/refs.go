package libscn

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

type TextureRole int

const (
	RoleUnknown TextureRole = iota
	RoleBaseColor
	RoleMetallicRoughness
	RoleNormal
	RoleOcclusion
	RoleEmissive
)

func (r TextureRole) String() string {
	switch r {
	case RoleBaseColor:
		return "base-color"
	case RoleMetallicRoughness:
		return "metallic-roughness"
	case RoleNormal:
		return "normal"
	case RoleOcclusion:
		return "occlusion"
	case RoleEmissive:
		return "emissive"
	}
	return "unknown"
}

// TextureRef is one external image referenced by a scene descriptor.
// Image is the index into the descriptor's images array, URI the
// descriptor-relative, slash-separated reference as written in the file.
type TextureRef struct {
	Image int
	URI   string
	Role  TextureRole
}

// TextureRefs collects the descriptor's external image references in image
// order. The role comes from the first material slot that samples the
// image; an image no material references keeps RoleUnknown.
func (g *Gltf) TextureRefs() []TextureRef {
	roles := make([]TextureRole, len(g.Images))

	assign := func(info *TextureInfo, role TextureRole) {
		if info == nil {
			return
		}
		t := int(info.Index)
		if t < 0 || t >= len(g.Textures) || g.Textures[t].Source == nil {
			return
		}
		img := int(*g.Textures[t].Source)
		if img < 0 || img >= len(roles) {
			return
		}
		if roles[img] == RoleUnknown {
			roles[img] = role
		}
	}

	for i := range g.Materials {
		mat := &g.Materials[i]
		if pbr := mat.PbrMetallicRoughness; pbr != nil {
			assign(pbr.BaseColorTexture, RoleBaseColor)
			assign(pbr.MetallicRoughnessTexture, RoleMetallicRoughness)
		}
		assign(mat.NormalTexture, RoleNormal)
		assign(mat.OcclusionTexture, RoleOcclusion)
		assign(mat.EmissiveTexture, RoleEmissive)
	}

	refs := make([]TextureRef, 0, len(g.Images))
	for i, img := range g.Images {
		if img.URI == "" || !IsFileURI(img.URI) {
			continue
		}
		refs = append(refs, TextureRef{Image: i, URI: img.URI, Role: roles[i]})
	}
	return refs
}

// IsFileURI reports whether an image URI points at a plain file next to
// the descriptor, as opposed to an embedded data: URI or a remote scheme.
func IsFileURI(uri string) bool {
	if strings.Contains(uri, ":") {
		return false
	}
	return uri != ""
}

// ResolveURI resolves a descriptor-relative image URI against the
// descriptor's directory into an absolute filesystem path. glTF URIs are
// slash-separated and may be percent-escaped.
func ResolveURI(dir, uri string) (string, error) {
	u, err := url.PathUnescape(uri)
	if err != nil {
		return "", fmt.Errorf("could not unescape image uri %q: %w", uri, err)
	}
	p := filepath.Join(dir, filepath.FromSlash(path.Clean(u)))
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("could not resolve image uri %q: %w", uri, err)
	}
	return abs, nil
}

// RetargetURI swaps the extension of an image URI, keeping the relative
// directory part and any percent-escapes intact.
func RetargetURI(uri, ext string) string {
	return strings.TrimSuffix(uri, path.Ext(uri)) + ext
}
