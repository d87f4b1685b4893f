package youtube

import "fmt"

// ResolutionError reports a channel or video reference that could not be
// resolved against the YouTube API. The message is safe to surface to users.
type ResolutionError struct {
	Ref    string
	Reason string
	Err    error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("could not resolve %q: %s", e.Ref, e.Reason)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

func resolutionErr(ref, reason string, err error) *ResolutionError {
	return &ResolutionError{Ref: ref, Reason: reason, Err: err}
}
