package libtex

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"bistro-demo/libscn"
)

// Batch converts every unique texture referenced by a set of scene
// descriptors, then retargets the descriptors at the converted files.
// Conversion runs on a fixed worker pool; the rewrite phase is
// sequential and only starts after every worker has drained the queue,
// because it needs the complete outcome set.
type Batch struct {
	// Workers overrides the pool size; 0 or less means one worker per
	// logical CPU, decided once when Run starts.
	Workers int
	// Logf receives progress lines, Warnf soft diagnostics. Both may be
	// nil.
	Logf  func(format string, args ...any)
	Warnf func(format string, args ...any)

	descriptors []*libscn.Descriptor
	jobs        []*Job
	bySource    map[string]*Job
	byDest      map[string]*Job
	skipped     int
}

// Summary is the outcome of one batch run.
type Summary struct {
	Descriptors int // descriptors parsed and processed
	Skipped     int // descriptors skipped as unparseable
	Jobs        int // unique textures scheduled
	Converted   int
	Failed      int
	Rewritten   int // image references retargeted
	WriteErrors int // descriptors that could not be written back
}

func NewBatch() *Batch {
	return &Batch{
		bySource: map[string]*Job{},
		byDest:   map[string]*Job{},
	}
}

// Discover parses the given descriptor files and queues a job for every
// distinct convertible texture they reference. An unparseable descriptor
// is skipped with a diagnostic; the others still process.
func (b *Batch) Discover(names []string) {
	for _, name := range names {
		d, err := libscn.LoadDescriptor(name)
		if err != nil {
			b.skipped++
			b.warnf("%v", err)
			continue
		}
		n := b.AddDescriptor(d)
		b.logf("Found %d texture reference(s) in %q", n, filepath.ToSlash(filepath.Clean(name)))
	}
}

// AddDescriptor queues the descriptor's convertible texture references,
// deduplicating against everything queued so far. Returns the number of
// references that map onto a job of this batch.
func (b *Batch) AddDescriptor(d *libscn.Descriptor) int {
	b.descriptors = append(b.descriptors, d)

	n := 0
	for _, ref := range d.TextureRefs() {
		src, err := libscn.ResolveURI(d.Dir(), ref.URI)
		if err != nil {
			b.warnf("%v", err)
			continue
		}
		if !convertible(src) {
			continue
		}
		n++
		if _, ok := b.bySource[src]; ok {
			continue
		}
		dest := strings.TrimSuffix(src, filepath.Ext(src)) + DestExt
		if other, ok := b.byDest[dest]; ok {
			// Two sources differing only in extension would race on the
			// same output file. The first one queued wins; the loser's
			// references stay untouched.
			n--
			b.warnf("not converting %q: output %q is already produced from %q",
				filepath.ToSlash(src), filepath.ToSlash(dest), filepath.ToSlash(other.Source))
			continue
		}
		job := &Job{
			Source: src,
			Dest:   dest,
			Role:   ref.Role,
		}
		b.bySource[src] = job
		b.byDest[dest] = job
		b.jobs = append(b.jobs, job)
	}
	return n
}

// Jobs returns the queued jobs in discovery order.
func (b *Batch) Jobs() []*Job {
	return b.jobs
}

// Run converts every queued job on the worker pool, joins, and rewrites
// the descriptors. A failed job leaves its references untouched and
// never aborts its siblings.
func (b *Batch) Run(conv Converter) Summary {
	workers := b.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(b.jobs) {
		workers = len(b.jobs)
	}

	queue := make(chan *Job)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range queue {
				job.Err = conv.Convert(job)
				if job.Err == nil {
					b.logf("Converted %q", filepath.ToSlash(job.Source))
				}
			}
		}()
	}

	for _, job := range b.jobs {
		queue <- job
	}
	close(queue)
	wg.Wait()

	return b.rewrite()
}

// RewriteOnly retargets references whose destination file already exists
// and is non-empty, without invoking a converter. This resumes a batch
// that was interrupted after some textures were already converted.
func (b *Batch) RewriteOnly() Summary {
	for _, job := range b.jobs {
		info, err := os.Stat(job.Dest)
		switch {
		case err != nil:
			job.Err = fmt.Errorf("converted texture %q missing: %w", job.Dest, err)
		case info.Size() == 0:
			job.Err = fmt.Errorf("converted texture %q is empty", job.Dest)
		}
	}
	return b.rewrite()
}

func (b *Batch) rewrite() Summary {
	sum := Summary{
		Descriptors: len(b.descriptors),
		Skipped:     b.skipped,
		Jobs:        len(b.jobs),
	}
	for _, job := range b.jobs {
		if job.Ok() {
			sum.Converted++
		} else {
			sum.Failed++
			b.warnf("%v", job.Err)
		}
	}

	for _, d := range b.descriptors {
		n, err := d.RetargetImages(func(index int, uri string) (string, bool) {
			src, err := libscn.ResolveURI(d.Dir(), uri)
			if err != nil {
				return "", false
			}
			job, ok := b.bySource[src]
			if !ok || !job.Ok() {
				return "", false
			}
			return libscn.RetargetURI(uri, DestExt), true
		})
		if err != nil {
			sum.WriteErrors++
			b.warnf("%v", err)
			continue
		}
		if n == 0 {
			// Nothing converted for this descriptor, leave the file
			// byte-identical.
			continue
		}
		if err := d.Save(); err != nil {
			sum.WriteErrors++
			b.warnf("%v", err)
			continue
		}
		sum.Rewritten += n
		b.logf("Rewrote %d reference(s) in %q", n, filepath.ToSlash(d.Path))
	}
	return sum
}

func (b *Batch) logf(format string, args ...any) {
	if b.Logf != nil {
		b.Logf(format, args...)
	}
}

func (b *Batch) warnf(format string, args ...any) {
	if b.Warnf != nil {
		b.Warnf(format, args...)
	}
}

// convertible reports whether the pipeline knows how to convert the
// source file. Files already in the destination container are left
// alone, which makes a second run over rewritten descriptors a no-op.
func convertible(src string) bool {
	switch strings.ToLower(filepath.Ext(src)) {
	case ".png", ".jpg", ".jpeg":
		return true
	}
	return false
}
