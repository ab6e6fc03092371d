package services

import "errors"

var (
	ErrParentNotFound = errors.New("parent not found")
	ErrChildNotFound  = errors.New("child not found")
	ErrForbidden      = errors.New("forbidden")
)

const (
	UserTypeParent   = "parent"
	UserTypeEducator = "educator"
	UserTypeChild    = "child"
)
