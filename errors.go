package md2post

import "errors"

// Sentinel errors for library operations.
var (
	// ErrUnknownTarget is returned by ApplyPreset for an unrecognized target
	// selector. This is the only configuration error the pipeline can raise;
	// every stage below the dispatch is total over arbitrary text.
	ErrUnknownTarget = errors.New("unknown preset target")

	// ErrRender indicates the markdown renderer collaborator failed.
	ErrRender = errors.New("markdown rendering failed")
)
