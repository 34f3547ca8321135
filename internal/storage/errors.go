package storage

import (
	"fmt"

	"github.com/containerd/errdefs"
)

// Failure taxonomy of the gateway, expressed through errdefs sentinels so
// callers can classify without depending on error strings:
//
//   - unavailable: the data directory cannot be resolved or created
//   - io: read/write failure on an otherwise reachable path
//   - corrupt: the persisted content does not parse as a document
//   - unencodable: the document cannot be serialized
//
// The single designed non-error is a missing file on load, which yields
// DefaultDocument.

func unavailableErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, errdefs.ErrUnavailable, err)
}

func ioErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, errdefs.ErrInternal, err)
}

func corruptErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, errdefs.ErrDataLoss, err)
}

func unencodableErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, errdefs.ErrInvalidArgument, err)
}

// IsUnavailable reports whether err means the data directory could not be
// resolved or created.
func IsUnavailable(err error) bool { return errdefs.IsUnavailable(err) }

// IsIO reports whether err is a read/write failure.
func IsIO(err error) bool { return errdefs.IsInternal(err) }

// IsCorrupt reports whether err means the persisted file is not a valid
// document.
func IsCorrupt(err error) bool { return errdefs.IsDataLoss(err) }

// IsUnencodable reports whether err means the document could not be
// serialized.
func IsUnencodable(err error) bool { return errdefs.IsInvalidArgument(err) }
