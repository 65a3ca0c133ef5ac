package errors

// ErrorCode is the machine-readable code carried in error responses
type ErrorCode int

//nolint:revive,stylecheck
const (
	ErrorCode_INTERNAL ErrorCode = 1000

	ErrorCode_INVALID_PAYLOAD   ErrorCode = 2000
	ErrorCode_VALIDATION_FAILED ErrorCode = 2001

	ErrorCode_STORE_WRITE_FAILED ErrorCode = 4000
	ErrorCode_STORE_READ_FAILED  ErrorCode = 4001
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_INTERNAL:           "INTERNAL",
	ErrorCode_INVALID_PAYLOAD:    "INVALID_PAYLOAD",
	ErrorCode_VALIDATION_FAILED:  "VALIDATION_FAILED",
	ErrorCode_STORE_WRITE_FAILED: "STORE_WRITE_FAILED",
	ErrorCode_STORE_READ_FAILED:  "STORE_READ_FAILED",
}

// String returns the code name
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
