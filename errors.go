package main

// Messages returned to API clients. The underlying cause is only logged.
const (
	msgFetchFailed    = "Failed to fetch RSS feed"
	msgGenerateFailed = "Failed to generate puzzle"
	msgVerifyFailed   = "Failed to verify puzzle"
)

// FetchError reports that the news feed could not be retrieved or parsed.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string { return msgFetchFailed }
func (e *FetchError) Unwrap() error { return e.Err }

// GenerationError reports that the first completion call failed or did not
// return a JSON object.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string { return msgGenerateFailed }
func (e *GenerationError) Unwrap() error { return e.Err }

// VerificationError reports that the correction call failed or did not
// return a JSON object.
type VerificationError struct {
	Err error
}

func (e *VerificationError) Error() string { return msgVerifyFailed }
func (e *VerificationError) Unwrap() error { return e.Err }
