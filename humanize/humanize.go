// Package humanize formats byte counts for error messages.
package humanize

import "fmt"

// Bytes formats n using the largest binary unit it reaches. Sizes that are
// not a whole number of units are printed with one decimal.
func Bytes(n int64) string {
	switch {
	case n >= 1024*1024:
		return unit(n, 1024*1024, "MiB")
	case n >= 1024:
		return unit(n, 1024, "KiB")
	default:
		return fmt.Sprintf("%d B", n)
	}
}

// Sectors formats n as a number of sectors of sectorSize bytes, followed
// by the byte count in parentheses, e.g. "6144 sectors (3 MiB)".
func Sectors(n, sectorSize int64) string {
	return fmt.Sprintf("%d sectors (%s)", n/sectorSize, Bytes(n))
}

func unit(n, size int64, name string) string {
	if n%size == 0 {
		return fmt.Sprintf("%d %s", n/size, name)
	}
	return fmt.Sprintf("%.1f %s", float64(n)/float64(size), name)
}
