package main

import (
	"flag"
	"fmt"

	"bistro-demo/libtex"
)

type rewriteArgs struct {
	commonArgs
}

func createRewriteCommand() *command {
	args := rewriteArgs{}

	flags := flag.NewFlagSet("rewrite", flag.ExitOnError)

	registerCommonFlags(flags, &args.commonArgs)

	return &command{
		Name: "rewrite",
		Help: "retarget scene texture references at already converted ktx2 files",
		Run: func(self *command) {
			if self.Flags.NArg() < 1 {
				printCommandUsage(self, " scene-glob...")
			}
			setCommonArgs(&args.commonArgs)

			runRewrite(args, gatherInputFiles(self.Flags.Args()))
		},
		Flags: flags,
	}
}

func runRewrite(args rewriteArgs, inputFiles []string) {
	if len(inputFiles) == 0 {
		harderr(fmt.Errorf("no scene descriptors matched"))
	}

	batch := libtex.NewBatch()
	batch.Logf = infof
	batch.Warnf = warnf
	batch.Discover(inputFiles)

	sum := batch.RewriteOnly()

	infof("Rewrote %d reference(s), %d converted texture(s) present, %d missing",
		sum.Rewritten, sum.Converted, sum.Failed)
	if sum.Skipped > 0 {
		infof("Skipped %d unparseable descriptor(s)", sum.Skipped)
	}
}
