package services

import "errors"

// ErrAnalysisNotFound is returned when an analysis ID does not exist.
var ErrAnalysisNotFound = errors.New("analysis not found")
