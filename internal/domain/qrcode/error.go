package qrcode

import "errors"

var (
	ErrNotFound            = errors.New("qr code not found")
	ErrInvalidKind         = errors.New("type must be static or dynamic")
	ErrInvalidName         = errors.New("invalid name")
	ErrMissingDestination  = errors.New("dynamic qr codes need a destination url")
	ErrNotDynamic          = errors.New("only dynamic qr codes have a destination")
	ErrShortCodeTaken      = errors.New("short code already in use")
	ErrShortCodesExhausted = errors.New("could not allocate a unique short code")
	ErrFolderNotFound      = errors.New("folder not found")
)
