package model

import "errors"

// ErrNotFound reports a lookup for a node, element or girder id that is not
// part of the fixed model.
var ErrNotFound = errors.New("not found in model")
