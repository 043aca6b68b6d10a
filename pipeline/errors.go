package pipeline

import "errors"

// ErrMissingTenderText is returned by Run when no tender document text is
// supplied. This is the only input error fatal to a whole run: every other
// failure degrades into findings per the containment policy.
var ErrMissingTenderText = errors.New("tender text is empty")
