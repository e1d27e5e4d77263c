package domain

import "errors"

var (
	ErrDealNotFound   = errors.New("deal not found locally")
	ErrDealIDMismatch = errors.New("remote deal id does not match the requested id")
	ErrInvalidDealID  = errors.New("deal id must be a positive integer")
	ErrRemoteNotFound = errors.New("remote entity not found")
)
