package domain

import (
	"errors"
	"fmt"
)

// ErrMalformedRange is returned when an exposure or frame attribute does not
// follow the "N" or "A-B" integer grammar.
var ErrMalformedRange = errors.New("malformed range")

// ErrReferenceNotFound is returned when an identifier used by a placement,
// edge or lookup has no matching node in its container.
var ErrReferenceNotFound = errors.New("reference not found")

// ErrAssetNotFound is returned when a (category, element) pair is not declared
// by the project library.
var ErrAssetNotFound = errors.New("asset not found")

// ErrStructuralPrecondition is returned when an operation is invoked on an
// entity that structurally cannot satisfy it.
var ErrStructuralPrecondition = errors.New("structural precondition violated")

// ErrDocumentNotFound is returned by document sources when no document is
// stored under the requested name.
var ErrDocumentNotFound = errors.New("document not found")

// RangeError reports an exposure string that could not be parsed.
type RangeError struct {
	Text   string // the offending text
	Reason string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("malformed range %q: %s", e.Text, e.Reason)
}

func (e *RangeError) Unwrap() error { return ErrMalformedRange }

// ReferenceError reports an identifier missing from its container.
type ReferenceError struct {
	Container string // e.g. "scenes", "track columns", "layer modules"
	ID        string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("reference %q not found in %s", e.ID, e.Container)
}

func (e *ReferenceError) Unwrap() error { return ErrReferenceNotFound }

// AssetError reports a library lookup miss.
type AssetError struct {
	Ref ElementRef
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("asset %q not found in category %q", e.Ref.Name, e.Ref.CategoryID)
}

func (e *AssetError) Unwrap() error { return ErrAssetNotFound }

// PreconditionError reports a contract violation by the caller.
type PreconditionError struct {
	Op     string
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func (e *PreconditionError) Unwrap() error { return ErrStructuralPrecondition }
