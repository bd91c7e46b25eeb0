package errors

import "errors"

var (
	ErrInvalidTransfer  = errors.New("invalid payment transfer")
	ErrTransferRejected = errors.New("payment transfer rejected")
)
