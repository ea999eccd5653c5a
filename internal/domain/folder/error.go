package folder

import "errors"

var (
	ErrNotFound      = errors.New("folder not found")
	ErrInvalidName   = errors.New("invalid folder name")
	ErrInvalidColor  = errors.New("invalid folder color")
	ErrDuplicateName = errors.New("folder with this name already exists")
	ErrNoUpdates     = errors.New("no updates provided")
)
