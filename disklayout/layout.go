// Package disklayout describes where the kernel expects data on its boot
// disk, and therefore how large a disk image has to be.
package disklayout

import "fmt"

// SectorSize is the ATA sector size the kernel reads and writes in.
const SectorSize = 512

const (
	// LuxFSStartLBA is the first sector of the LuxFS region; the
	// superblock lives there.
	LuxFSStartLBA = 2048
	// LuxFSTotalSectors is the number of sectors LuxFS manages, including
	// its metadata blocks.
	LuxFSTotalSectors = 4096
)

// Region represents a range of sectors reserved on the disk.
type Region struct {
	// Name is only used in error messages.
	Name string
	// StartLBA is the first sector of the region.
	StartLBA int64
	// Sectors is the length of the region in sectors.
	Sectors int64
}

// Offset returns the byte offset at which the region starts.
func (r Region) Offset() int64 { return r.StartLBA * SectorSize }

// End returns the byte offset just past the region.
func (r Region) End() int64 { return (r.StartLBA + r.Sectors) * SectorSize }

// Layout is a list of regions, sorted by StartLBA.
type Layout []Region

// Default is the layout of a bootable lux-kernel disk image.
var Default = Layout{
	{"boot sector", 0, 1},                       // sector 0
	{"luxfs", LuxFSStartLBA, LuxFSTotalSectors}, // sectors 2048 - 6143
}

// MinDiskSize returns the number of bytes an image needs so that every
// region of l lies within it.
func (l Layout) MinDiskSize() int64 {
	var size int64
	for _, r := range l {
		size = max(size, r.End())
	}
	return size
}

// Validate returns an error if l is unsorted, contains empty regions or
// regions overlapping one another.
func (l Layout) Validate() error {
	var startIncl, endExcl int64
	for _, r := range l {
		if r.StartLBA < 0 || r.Sectors <= 0 {
			return fmt.Errorf("region %s: invalid range [%d, +%d)", r.Name, r.StartLBA, r.Sectors)
		}
		if r.StartLBA < startIncl {
			return fmt.Errorf("region %s: unsorted (starts at LBA %d, previous at %d)", r.Name, r.StartLBA, startIncl)
		}
		if r.Offset() < endExcl {
			return fmt.Errorf("region %s: overlaps previous region (offset = %d, end offset of previous = %d)",
				r.Name, r.Offset(), endExcl)
		}
		startIncl = r.StartLBA
		endExcl = r.End()
	}
	return nil
}

// MinDiskSize returns the minimum size of an image using the Default layout.
func MinDiskSize() int64 { return Default.MinDiskSize() }

// AlignUp returns n rounded up to the next multiple of alignment. Values
// that already are a multiple are returned unchanged.
func AlignUp(n, alignment int64) int64 {
	if rem := n % alignment; rem != 0 {
		return n + alignment - rem
	}
	return n
}
