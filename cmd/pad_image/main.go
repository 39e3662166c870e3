// pad_image pads a disk image with zero bytes so that it is a multiple of
// the sector size and covers the whole LuxFS region.
//
// Usage:
//
//	pad_image <file>
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lukasfend/lux-kernel/disklayout"
	"github.com/lukasfend/lux-kernel/humanize"
	"github.com/lukasfend/lux-kernel/padimage"
	"github.com/spf13/pflag"
)

func usage(w io.Writer) {
	fmt.Fprintf(w, "%v\n\n", padimage.ErrUsage)
	fmt.Fprintf(w, "Appends zero bytes to <file> until its size is a multiple of %d bytes\n", disklayout.SectorSize)
	fmt.Fprintf(w, "and at least %s.\n", humanize.Sectors(disklayout.MinDiskSize(), disklayout.SectorSize))
}

func run(args []string) error {
	if len(args) != 1 {
		return padimage.ErrUsage
	}
	// No flags are defined: the single argument is always the image path,
	// even when it starts with a dash.
	fs := pflag.NewFlagSet("pad_image", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if err := fs.Parse(append([]string{"--"}, args...)); err != nil {
		return fmt.Errorf("%w: %v", padimage.ErrUsage, err)
	}
	if fs.NArg() != 1 {
		return padimage.ErrUsage
	}
	_, err := padimage.Pad(fs.Arg(0))
	return err
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("pad_image: ")
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, padimage.ErrUsage) {
			usage(os.Stderr)
			os.Exit(2)
		}
		log.Fatal(err)
	}
}
