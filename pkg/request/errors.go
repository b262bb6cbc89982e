package request

import "errors"

// ErrInternalServer is the error that is returned to the client when an
// unexpected error occurs while handling a request.
var ErrInternalServer = errors.New("internal server error")
