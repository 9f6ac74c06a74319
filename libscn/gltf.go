package libscn

// Schema subset of glTF 2.0, just enough to locate the texture references
// of a scene. Everything the pipeline does not touch stays raw, see
// descriptor.go.
type Gltf struct {
	Asset     Asset      `json:"asset"`
	Scenes    []Scene    `json:"scenes,omitempty"`
	Nodes     []Node     `json:"nodes,omitempty"`
	Meshes    []Mesh     `json:"meshes,omitempty"`
	Images    []Image    `json:"images,omitempty"`
	Textures  []Texture  `json:"textures,omitempty"`
	Materials []Material `json:"materials,omitempty"`
}

type Asset struct {
	Version   string `json:"version"`
	Generator string `json:"generator,omitempty"`
}

type Scene struct {
	Name  string  `json:"name,omitempty"`
	Nodes []int64 `json:"nodes,omitempty"`
}

type Node struct {
	Name string `json:"name,omitempty"`
}

type Mesh struct {
	Name string `json:"name,omitempty"`
}

// glTF.images' element. An image is backed either by a URI (external file
// or data: URI) or by a bufferView into the binary payload.
type Image struct {
	URI        string `json:"uri,omitempty"`
	MimeType   string `json:"mimeType,omitempty"`
	BufferView *int64 `json:"bufferView,omitempty"`
	Name       string `json:"name,omitempty"`
}

// image.mimeType values.
const (
	MimePng  = "image/png"
	MimeJpeg = "image/jpeg"
	MimeKtx2 = "image/ktx2"
)

// glTF.textures' element.
type Texture struct {
	Sampler *int64 `json:"sampler,omitempty"`
	Source  *int64 `json:"source,omitempty"`
	Name    string `json:"name,omitempty"`
}

// textureInfo, shared by all five material texture slots. The slots carry
// extra members (scale, strength) that the pipeline has no use for.
type TextureInfo struct {
	Index    int64 `json:"index"`
	TexCoord int64 `json:"texCoord,omitempty"`
}

// glTF.materials' element.
type Material struct {
	Name                 string                `json:"name,omitempty"`
	PbrMetallicRoughness *PbrMetallicRoughness `json:"pbrMetallicRoughness,omitempty"`
	NormalTexture        *TextureInfo          `json:"normalTexture,omitempty"`
	OcclusionTexture     *TextureInfo          `json:"occlusionTexture,omitempty"`
	EmissiveTexture      *TextureInfo          `json:"emissiveTexture,omitempty"`
}

// material.pbrMetallicRoughness.
type PbrMetallicRoughness struct {
	BaseColorTexture         *TextureInfo `json:"baseColorTexture,omitempty"`
	MetallicRoughnessTexture *TextureInfo `json:"metallicRoughnessTexture,omitempty"`
}
