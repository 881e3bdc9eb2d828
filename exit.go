package optmatch

// ExitError is a custom error type that includes a specific exit code. It
// lets a program's run function report a parse failure without calling
// os.Exit itself; the entrypoint translates the code at the boundary.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}
