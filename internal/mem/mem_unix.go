//go:build unix

package mem

import "golang.org/x/sys/unix"

// allocRaw maps an anonymous private region. Anonymous pages arrive zeroed
// and page-aligned, and the Go runtime never moves or reclaims them.
func allocRaw(size int) (Region, error) {
	buf, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return Region{}, err
	}
	return Region{buf: buf, mapped: true}, nil
}

func freeRaw(r Region) error {
	if !r.mapped || r.buf == nil {
		return nil
	}
	return unix.Munmap(r.buf)
}
