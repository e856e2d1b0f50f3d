package async

import "errors"

// ErrNilFunc is held by the Future when Async is given a nil function.
var ErrNilFunc = errors.New("async: nil function")
