// Package scanner provides the barcode scan-to-add flow.
//
// The camera hardware sits behind the Scanner interface; this package
// owns the session lifecycle and the barcode-to-product resolution.
package scanner

import "context"

// Scanner abstracts a barcode capture device.
//
// A session is a single-owner scoped resource: whoever calls Start is
// responsible for calling Stop on every exit path, or the camera handle
// leaks.
type Scanner interface {
	// Start opens a capture session. Returns an error if the device is
	// unavailable or already in use.
	Start(ctx context.Context) error

	// Read blocks until one barcode is decoded or ctx is done.
	Read(ctx context.Context) (string, error)

	// Stop closes the session. Safe to call on a stopped session.
	Stop() error
}
