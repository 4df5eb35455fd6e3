package mentorship

import "errors"

// ErrRequestNotFound возникает когда запрос на менторство не найден
var ErrRequestNotFound = errors.New("mentorship request not found")
