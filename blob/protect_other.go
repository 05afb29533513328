//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package blob

import "errors"

// protectWritable is not supported on this platform; blobs fall back to
// duplication.
func protectWritable([]byte) error {
	return errors.New("in-place promotion not supported")
}
