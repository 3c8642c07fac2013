package model

import "errors"

// Common errors used across the application
var (
	// Match errors
	ErrMatchEnded  = errors.New("match has already ended")
	ErrInvalidWord = errors.New("invalid word")
	ErrInputClosed = errors.New("console input closed")

	// Timer errors
	ErrTimerAlreadyStarted = errors.New("timer has already been started")
	ErrTimerNotRunning     = errors.New("timer is not running")
)
