package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"bistro-demo/libio"
	"bistro-demo/libscn"
	"bistro-demo/libtex"
)

type packArgs struct {
	commonArgs
	out string
}

func createPackCommand() *command {
	args := packArgs{
		out: "bistro.bistropack",
	}

	flags := flag.NewFlagSet("pack", flag.ExitOnError)

	registerCommonFlags(flags, &args.commonArgs)
	flags.StringVar(&args.out, "out", args.out, "the output pack file")
	flags.StringVar(&args.out, "o", args.out, "shorthand for out")

	return &command{
		Name: "pack",
		Help: "bundle the converted textures of gltf scenes into one pack file",
		Run: func(self *command) {
			if self.Flags.NArg() < 1 {
				printCommandUsage(self, " scene-glob...")
			}
			setCommonArgs(&args.commonArgs)

			runPack(args, gatherInputFiles(self.Flags.Args()))
		},
		Flags: flags,
	}
}

func runPack(args packArgs, inputFiles []string) {
	if len(inputFiles) == 0 {
		harderr(fmt.Errorf("no scene descriptors matched"))
	}

	entries := []libio.PackEntry{}
	seen := map[string]bool{}

	for _, p := range inputFiles {
		d, err := libscn.LoadDescriptor(p)
		if err != nil {
			softerr(err)
			continue
		}

		for _, ref := range d.TextureRefs() {
			if !strings.EqualFold(filepath.Ext(ref.URI), libtex.DestExt) {
				continue
			}
			src, err := libscn.ResolveURI(d.Dir(), ref.URI)
			if err != nil {
				softerr(err)
				continue
			}
			if seen[src] {
				continue
			}
			seen[src] = true

			data, err := os.ReadFile(src)
			if err != nil {
				softerr(fmt.Errorf("could not read converted texture %q: %w", src, err))
				continue
			}
			entries = append(entries, libio.PackEntry{Name: ref.URI, Data: data})
		}
	}

	if len(entries) == 0 {
		harderr(fmt.Errorf("no converted textures referenced; run convert first"))
	}

	outFile, err := os.OpenFile(args.out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	harderr(err)
	defer outFile.Close()

	start := time.Now()
	err = libio.EncodePack(outFile, entries)
	if err != nil {
		outFile.Close()
		os.Remove(args.out)
		harderr(err)
	}

	took := float32(time.Since(start).Milliseconds()) / 1000
	infof("Packed %d texture(s) into %q in %.3f seconds", len(entries), filepath.ToSlash(args.out), took)
}
