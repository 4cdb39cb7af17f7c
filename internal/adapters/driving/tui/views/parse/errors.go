package parse

import "errors"

// ErrNoParseService indicates that no parse service was provided.
var ErrNoParseService = errors.New("parse service is required")
