package exitcode

const (
	Success         = 0
	UsageError      = 1
	ValidationError = 2
	InputError      = 3
	RenderError     = 4
	WriteError      = 5
)
