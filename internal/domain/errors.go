package domain

import "errors"

var (
	ErrAlreadyRunning   = errors.New("timer is already running")
	ErrBlankSpeakerName = errors.New("please enter a speaker name")
	ErrNotRunning       = errors.New("timer is not running")
)
