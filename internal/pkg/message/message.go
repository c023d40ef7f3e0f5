package message

const (
	InvalidUser     = "Invalid username/password."
	InvalidInput    = "Invalid input."
	EnvErrFmt       = "environment variable is not set: %s"
	NotFound        = "Resource not found."
	TimedOut        = "The solver ran out of time."
	TooManyRequests = "Too many requests. Please try again later."
	Cancelled       = "Request cancelled or timeout."
)
