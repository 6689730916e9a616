package grove

import "errors"

var (
	// Builder contract violations. These indicate misuse of the
	// construction surface and are detected before the offending record is
	// written: a wrong subtree size would corrupt navigation for every
	// ancestor of the record with no later signal.
	ErrMarkerInvalid  = errors.New("grove: marker is inconsistent with the buffer")
	ErrSealOutOfOrder = errors.New("grove: seal does not match the deepest open subtree")
	ErrNotEnoughRoots = errors.New("grove: fewer completed subtrees than requested children")
	ErrUnsealedFrames = errors.New("grove: open subtrees remain unsealed")

	// Navigation errors. Recoverable by the immediate caller.
	ErrIndexOutOfRange = errors.New("grove: node index out of range")
	ErrNoSuchRoot      = errors.New("grove: root ordinal exceeds root count")
)
