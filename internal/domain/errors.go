package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound      = errors.New("resource not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrDuplicate     = errors.New("duplicate resource")
	ErrConflict      = errors.New("conflict with current state")
	ErrPropertyInUse = errors.New("property is assigned to a tenant")
	ErrEmptyFile     = errors.New("file is empty")
	ErrMissingHeader = errors.New("csv header row is missing")
)
