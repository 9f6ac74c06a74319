package libtex

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"bistro-demo/libscn"
)

// Converter turns one source texture into its compressed destination
// file. Convert blocks until the job is done and reports failure through
// the returned error; the job's destination must exist and be non-empty
// on success.
type Converter interface {
	Convert(job *Job) error
	Release()
}

// KramConverter shells out to the kram texture encoder, one process per
// job. The executable is resolved once at construction so a missing tool
// fails the whole batch before any work is scheduled.
type KramConverter struct {
	exe    string
	params Params
}

const kramExe = "kram"

func NewKramConverter(params Params) (*KramConverter, error) {
	exe, err := exec.LookPath(kramExe)
	if err != nil {
		return nil, fmt.Errorf("could not find texture converter %q on PATH: %w", kramExe, err)
	}
	return &KramConverter{exe: exe, params: params}, nil
}

func (c *KramConverter) Convert(job *Job) error {
	// Encode into a temporary file and rename on success so a crashed or
	// failed conversion never leaves a partial destination behind. The
	// temporary name keeps the destination extension because kram picks
	// the container format from it.
	dir, base := filepath.Split(job.Dest)
	tmp := filepath.Join(dir, "~"+base)

	cmd := exec.Command(c.exe, c.args(job, tmp)...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		os.Remove(tmp)
		if msg := firstLine(out); msg != "" {
			return fmt.Errorf("could not convert %q: %w: %s", job.Source, err, msg)
		}
		return fmt.Errorf("could not convert %q: %w", job.Source, err)
	}

	info, err := os.Stat(tmp)
	if err != nil {
		return fmt.Errorf("converter produced no output for %q: %w", job.Source, err)
	}
	if info.Size() == 0 {
		os.Remove(tmp)
		return fmt.Errorf("converter produced empty output for %q", job.Source)
	}

	if err := os.Rename(tmp, job.Dest); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("could not publish %q: %w", job.Dest, err)
	}
	return nil
}

func (c *KramConverter) Release() {}

func (c *KramConverter) args(job *Job, dest string) []string {
	args := []string{"encode", "-f", c.params.Format}
	if job.Role == libscn.RoleNormal {
		args = append(args, "-normal")
	}
	args = append(args, "-type", "2d")
	if c.params.SRGB && colorRole(job.Role) {
		args = append(args, "-srgb")
	}
	args = append(args,
		"-zstd", strconv.Itoa(c.params.Zstd),
		"-i", job.Source,
		"-o", dest,
	)
	return args
}

// colorRole reports whether a texture holds color values, as opposed to
// vectors or scalar masks that must stay linear.
func colorRole(role libscn.TextureRole) bool {
	switch role {
	case libscn.RoleNormal, libscn.RoleMetallicRoughness, libscn.RoleOcclusion:
		return false
	}
	return true
}

func firstLine(out []byte) string {
	s := strings.TrimSpace(string(out))
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return s
}
