package tasks

import "errors"

var (
	ErrTaskNotFound   = errors.New("task not found")
	ErrInvalidPerPage = errors.New("per_page must be greater than zero")
	ErrInvalidPage    = errors.New("page is out of range")
)
