package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"bistro-demo/libscn"
	"bistro-demo/libtex"
	"bistro-demo/view"
)

// The two Bistro scenes the demo ships with.
var scenes = []string{
	"assets/bistro_exterior/BistroExterior.gltf",
	"assets/bistro_interior_wine/BistroInterior_Wine.gltf",
}

var Arguments struct {
	Convert bool
	Jobs    int
	Quiet   bool
}

func main() {
	flag.BoolVar(&Arguments.Convert, "convert", Arguments.Convert, "convert the scene textures to ktx2 and rewrite the descriptors")
	flag.IntVar(&Arguments.Jobs, "jobs", Arguments.Jobs, "the conversion worker count, 0 uses one worker per logical cpu")
	flag.BoolVar(&Arguments.Quiet, "quiet", Arguments.Quiet, "disables informational logging")
	flag.Parse()

	if Arguments.Convert {
		fmt.Println("This will take a few minutes")
		convertScenes()
	}

	describeScenes()
}

func convertScenes() {
	conv, err := libtex.NewKramConverter(libtex.DefaultParams())
	check(err)
	defer conv.Release()

	batch := libtex.NewBatch()
	batch.Workers = Arguments.Jobs
	if !Arguments.Quiet {
		batch.Logf = log.Printf
	}
	batch.Warnf = log.Printf
	batch.Discover(scenes)

	sum := batch.Run(conv)
	log.Printf("Converted %d/%d textures, rewrote %d reference(s)", sum.Converted, sum.Jobs, sum.Rewritten)
	if sum.Jobs > 0 && sum.Converted == 0 {
		log.Fatalf("no textures converted, %d job(s) failed", sum.Failed)
	}
}

// describeScenes is the demo's headless display path: it loads the scene
// descriptors the way the host engine will and reports what it finds,
// together with the camera presets the engine binds to the number keys.
func describeScenes() {
	for _, name := range scenes {
		d, err := libscn.LoadDescriptor(name)
		if err != nil {
			log.Printf("skipping %v", err)
			continue
		}

		refs := d.TextureRefs()
		converted := 0
		for _, ref := range refs {
			if strings.EqualFold(filepath.Ext(ref.URI), libtex.DestExt) {
				converted++
			}
		}

		fmt.Printf("%s (glTF %s)\n", filepath.ToSlash(name), d.Scene.Asset.Version)
		fmt.Printf("    nodes %d, meshes %d, materials %d\n",
			len(d.Scene.Nodes), len(d.Scene.Meshes), len(d.Scene.Materials))
		fmt.Printf("    textures %d, converted %d\n", len(refs), converted)
	}

	rig := view.Rig{}
	fmt.Println("Camera presets:")
	for i, p := range view.Presets() {
		rig.Select(p)
		t := rig.Transform()
		fmt.Printf("    [%d] %-9s at (%.1f, %.1f, %.1f)\n", i+1, p, t.Position.X(), t.Position.Y(), t.Position.Z())
	}
}

func check(err error) {
	if err != nil {
		log.Fatalln(err)
	}
}
