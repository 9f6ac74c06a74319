package main

import (
	"flag"
	"fmt"
	"time"

	"bistro-demo/libtex"
)

type convertArgs struct {
	commonArgs
	jobs int
}

func createConvertCommand() *command {
	args := convertArgs{}

	flags := flag.NewFlagSet("convert", flag.ExitOnError)

	registerCommonFlags(flags, &args.commonArgs)
	flags.IntVar(&args.jobs, "jobs", args.jobs, "the worker count, 0 uses one worker per logical cpu")
	flags.IntVar(&args.jobs, "j", args.jobs, "shorthand for jobs")

	return &command{
		Name: "convert",
		Help: "convert the textures of gltf scenes to ktx2 and rewrite the scenes",
		Run: func(self *command) {
			if self.Flags.NArg() < 1 {
				printCommandUsage(self, " scene-glob...")
			}
			setCommonArgs(&args.commonArgs)

			runConvert(args, gatherInputFiles(self.Flags.Args()))
		},
		Flags: flags,
	}
}

func runConvert(args convertArgs, inputFiles []string) {
	if len(inputFiles) == 0 {
		harderr(fmt.Errorf("no scene descriptors matched"))
	}

	// Resolve the converter before any work is scheduled; a missing tool
	// must not leave a half-converted scene behind.
	conv, err := libtex.NewKramConverter(libtex.DefaultParams())
	harderr(err)
	defer conv.Release()

	batch := libtex.NewBatch()
	batch.Workers = args.jobs
	batch.Logf = infof
	batch.Warnf = warnf
	batch.Discover(inputFiles)

	start := time.Now()
	sum := batch.Run(conv)
	took := float32(time.Since(start).Milliseconds()) / 1000

	infof("Converted %d/%d textures and rewrote %d reference(s) in %.3f seconds",
		sum.Converted, sum.Jobs, sum.Rewritten, took)
	if sum.Skipped > 0 {
		infof("Skipped %d unparseable descriptor(s)", sum.Skipped)
	}

	if sum.Jobs > 0 && sum.Converted == 0 {
		harderr(fmt.Errorf("no textures converted, %d job(s) failed", sum.Failed))
	}
}
