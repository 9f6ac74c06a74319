package libtex

import (
	"bistro-demo/libscn"
)

// Job is one pending texture conversion. Jobs are unique per resolved
// source path; a texture shared by several materials or descriptors is
// converted exactly once. Each job's Err slot is written by the single
// worker that ran it, nothing else touches it until the pool has joined.
type Job struct {
	Source string
	Dest   string
	Role   libscn.TextureRole

	Err error
}

func (j *Job) Ok() bool {
	return j.Err == nil
}

// Params selects the converter's output encoding. The pipeline targets
// BC7 pixels in a KTX2 container with zero-effort lossless wrapping.
type Params struct {
	// Block-compressed pixel format passed to the converter.
	Format string
	// Zstd supercompression effort, 0 is fastest.
	Zstd int
	// Encode color data as sRGB. Data textures (normal, occlusion,
	// metallic-roughness) are always kept linear.
	SRGB bool
}

func DefaultParams() Params {
	return Params{
		Format: "bc7",
		Zstd:   0,
		SRGB:   true,
	}
}

// DestExt is the extension of converted texture files.
const DestExt = ".ktx2"
