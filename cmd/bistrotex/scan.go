package main

import (
	"flag"
	"fmt"
	"path/filepath"

	"bistro-demo/libscn"
)

type scanArgs struct {
	commonArgs
}

func createScanCommand() *command {
	args := scanArgs{}

	flags := flag.NewFlagSet("scan", flag.ExitOnError)

	registerCommonFlags(flags, &args.commonArgs)

	return &command{
		Name: "scan",
		Help: "list the texture references of gltf scenes without touching anything",
		Run: func(self *command) {
			if self.Flags.NArg() < 1 {
				printCommandUsage(self, " scene-glob...")
			}
			setCommonArgs(&args.commonArgs)

			runScan(args, gatherInputFiles(self.Flags.Args()))
		},
		Flags: flags,
	}
}

func runScan(args scanArgs, inputFiles []string) {
	for _, p := range inputFiles {
		d, err := libscn.LoadDescriptor(p)
		if err != nil {
			softerr(err)
			continue
		}

		refs := d.TextureRefs()
		fmt.Printf("%s: %d texture reference(s)\n", filepath.ToSlash(filepath.Clean(p)), len(refs))
		for _, ref := range refs {
			fmt.Printf("    %3d  %-18s  %s\n", ref.Image, ref.Role, ref.URI)
		}
	}
}
