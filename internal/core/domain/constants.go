package domain

import "errors"

var (
	ErrSendingReplyFailed = errors.New("failed to send reply")
	ErrIntervalOutOfRange = errors.New("reminder interval out of range")
	ErrStoreUnavailable   = errors.New("store unavailable")
	ErrDeliveryFailed     = errors.New("failed to deliver direct message")
	ErrAwaitTimeout       = errors.New("timed out waiting for response")
)
