package gmodutils

import "errors"

// ErrRecordValidation tells that record does not match its schema.
var ErrRecordValidation = errors.New("record does not match its schema")

// ErrManifest tells that addon manifest does not match its schema.
var ErrManifest = errors.New("invalid addon manifest")

// ErrOutdatedVersion tells that remote endpoint publishes newer version than the running one.
var ErrOutdatedVersion = errors.New("newer version is available")
