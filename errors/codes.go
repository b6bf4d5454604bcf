package errors

// ErrorCode identifies the kind of application error
type ErrorCode int

const (
	ErrorCode_UNKNOWN ErrorCode = iota
	ErrorCode_INTERNAL
	ErrorCode_VALIDATION
	ErrorCode_UNAUTHENTICATED
	ErrorCode_PERMISSION_DENIED
	ErrorCode_NOT_FOUND
	ErrorCode_ALREADY_EXISTS
	ErrorCode_MAIL_FAILED
)

var codeNames = map[ErrorCode]string{
	ErrorCode_UNKNOWN:           "UNKNOWN",
	ErrorCode_INTERNAL:          "INTERNAL",
	ErrorCode_VALIDATION:        "VALIDATION",
	ErrorCode_UNAUTHENTICATED:   "UNAUTHENTICATED",
	ErrorCode_PERMISSION_DENIED: "PERMISSION_DENIED",
	ErrorCode_NOT_FOUND:         "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:    "ALREADY_EXISTS",
	ErrorCode_MAIL_FAILED:       "MAIL_FAILED",
}

// String returns the name of the error code
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
