package errors

// ErrorCode identifies an application error category on the wire.
type ErrorCode int32

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1003

	// Agent analysis
	ErrorCode_MISSING_TRANSCRIPT  ErrorCode = 2000
	ErrorCode_INVALID_CONTEXT     ErrorCode = 2001
	ErrorCode_ANALYSIS_FAILED     ErrorCode = 2002
	ErrorCode_EXTRACTION_FAILED   ErrorCode = 2003
	ErrorCode_LLM_UNAVAILABLE     ErrorCode = 2004
	ErrorCode_INTERACTION_MISSING ErrorCode = 2005

	// Infrastructure
	ErrorCode_DB_QUERY_FAILED ErrorCode = 3000
	ErrorCode_CACHE_FAILED    ErrorCode = 3001
)

var codeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:             "HTTP_OK",
	ErrorCode_INTERNAL:            "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:    "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:           "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:     "INVALID_PAYLOAD",
	ErrorCode_MISSING_TRANSCRIPT:  "MISSING_TRANSCRIPT",
	ErrorCode_INVALID_CONTEXT:     "INVALID_CONTEXT",
	ErrorCode_ANALYSIS_FAILED:     "ANALYSIS_FAILED",
	ErrorCode_EXTRACTION_FAILED:   "EXTRACTION_FAILED",
	ErrorCode_LLM_UNAVAILABLE:     "LLM_UNAVAILABLE",
	ErrorCode_INTERACTION_MISSING: "INTERACTION_MISSING",
	ErrorCode_DB_QUERY_FAILED:     "DB_QUERY_FAILED",
	ErrorCode_CACHE_FAILED:        "CACHE_FAILED",
}

// String returns the symbolic name of the code.
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
