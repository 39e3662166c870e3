// Package padimage grows disk image files to a sector-aligned size that is
// large enough to hold every region of the disk layout.
//
// Existing bytes are never modified: the image is only ever extended by
// appending zero bytes.
package padimage

import (
	"errors"
	"fmt"
	"os"

	"github.com/lukasfend/lux-kernel/disklayout"
	"github.com/lukasfend/lux-kernel/humanize"
)

// ErrUsage is returned when the tool is not invoked with exactly one path.
var ErrUsage = errors.New("usage: pad_image <file>")

// ErrNotRegular is wrapped in an IOError when the path does not refer to a
// regular file.
var ErrNotRegular = errors.New("not a regular file")

// IOError records a failed file system operation on the image.
type IOError struct {
	Op   string // stat, open, write or close
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error { return e.Err }

// TargetSize returns the size an image of the given size is padded to:
// the smallest multiple of disklayout.SectorSize which is at least
// max(size, minSize).
func TargetSize(size, minSize int64) int64 {
	return disklayout.AlignUp(max(size, minSize), disklayout.SectorSize)
}

// Plan describes how a specific image file will be padded.
type Plan struct {
	Path   string
	Size   int64 // size before padding
	Target int64 // size after padding
}

// Pad returns the number of zero bytes Apply appends.
func (p Plan) Pad() int64 { return p.Target - p.Size }

// PlanFile stats the image at path and computes its target size.
func PlanFile(path string, minSize int64) (Plan, error) {
	st, err := os.Stat(path)
	if err != nil {
		return Plan{}, &IOError{Op: "stat", Path: path, Err: unwrapPathError(err)}
	}
	if !st.Mode().IsRegular() {
		return Plan{}, &IOError{
			Op:   "stat",
			Path: path,
			Err:  fmt.Errorf("%w (mode %v)", ErrNotRegular, st.Mode().Type()),
		}
	}
	return Plan{
		Path:   path,
		Size:   st.Size(),
		Target: TargetSize(st.Size(), minSize),
	}, nil
}

// Apply appends p.Pad() zero bytes to the image. The file is not opened
// at all when no padding is needed. A failing write may leave the file
// longer than p.Size but shorter than p.Target.
func (p Plan) Apply() error {
	pad := p.Pad()
	if pad <= 0 {
		return nil
	}
	f, err := os.OpenFile(p.Path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return &IOError{Op: "open", Path: p.Path, Err: unwrapPathError(err)}
	}
	defer f.Close()
	if _, err := f.Write(make([]byte, pad)); err != nil {
		return &IOError{
			Op:   "write",
			Path: p.Path,
			Err:  fmt.Errorf("appending %s of padding: %w", humanize.Bytes(pad), unwrapPathError(err)),
		}
	}
	if err := f.Close(); err != nil {
		return &IOError{Op: "close", Path: p.Path, Err: unwrapPathError(err)}
	}
	return nil
}

// Pad grows the image at path to the minimum size of the default disk
// layout, aligned to the sector size.
func Pad(path string) (Plan, error) {
	plan, err := PlanFile(path, disklayout.MinDiskSize())
	if err != nil {
		return Plan{}, err
	}
	return plan, plan.Apply()
}

// unwrapPathError strips the *os.PathError an os function returned, since
// IOError already carries the operation and path.
func unwrapPathError(err error) error {
	var pe *os.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}
