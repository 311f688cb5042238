package app

const (
	// progressStep is added to the gauge every tick; it wraps past 1.0.
	progressStep = 0.001
	// maxRecordedErrors bounds the error record shown to the user.
	maxRecordedErrors = 16
)
