package launcher

import "errors"

var (
	// ErrStart is returned when the server process cannot be spawned.
	ErrStart = errors.New("error starting appium server process")
	// ErrStop is returned when the server process cannot be signalled.
	ErrStop = errors.New("error stopping appium server process")
)
