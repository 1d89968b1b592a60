package sample

import "fmt"

// Error kinds shared by every stage of the analysis. Call sites wrap these
// with fmt.Errorf("...: %w", Err...) so callers can match with errors.Is.
var (
	// ErrInvalidInput indicates the upstream matrix held no usable
	// observations after missing values were dropped.
	ErrInvalidInput error = fmt.Errorf("sample: input holds no finite observations")

	// ErrInsufficientData indicates the sample is too small for the
	// requested statistic.
	ErrInsufficientData error = fmt.Errorf("sample: not enough observations")

	// ErrSampleSizeOutOfRange indicates the sample size falls outside the
	// validated range of a hypothesis test.
	ErrSampleSizeOutOfRange error = fmt.Errorf("sample: size outside the validated range of the test")

	// ErrDegenerateSample indicates every observation is identical, so any
	// statistic that divides by sigma is undefined.
	ErrDegenerateSample error = fmt.Errorf("sample: zero variance")
)
