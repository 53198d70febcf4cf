package errors

import (
	"net/http"
	"strings"
)

// ErrorCode is a string representation of a specific error condition.
// Codes follow the MODULE_NNN convention so the owning module can be read
// straight off the code.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common Error Codes
const (
	ErrCodeInternal           ErrorCode = "COMMON_001"
	ErrCodeBadRequest         ErrorCode = "COMMON_002"
	ErrCodeNotFound           ErrorCode = "COMMON_005"
	ErrCodeConflict           ErrorCode = "COMMON_006"
	ErrCodeTooManyRequests    ErrorCode = "COMMON_007"
	ErrCodeServiceUnavailable ErrorCode = "COMMON_008"
	ErrCodeTimeout            ErrorCode = "COMMON_009"
	ErrCodeValidation         ErrorCode = "COMMON_010"
	ErrCodeSerialization      ErrorCode = "COMMON_011"
	ErrCodeCacheError         ErrorCode = "COMMON_013"
	ErrCodeExternalService    ErrorCode = "COMMON_014"
	ErrCodeNotImplemented     ErrorCode = "COMMON_016"
)

// Aliases kept short for call sites.
const (
	CodeInternal     = ErrCodeInternal
	CodeInvalidParam = ErrCodeBadRequest
	CodeNotFound     = ErrCodeNotFound
	CodeConflict     = ErrCodeConflict
	CodeCacheError   = ErrCodeCacheError
	CodeOK           = ErrorCode("OK")
	CodeUnknown      = ErrorCode("UNKNOWN")
)

// Catalog Module Error Codes
const (
	ErrCodeMachineNotFound    ErrorCode = "CAT_001"
	ErrCodeScenarioInvalid    ErrorCode = "CAT_002"
	ErrCodeSortKeyInvalid     ErrorCode = "CAT_003"
	ErrCodeEstimateInputError ErrorCode = "CAT_004"
)

// Compare Module Error Codes
const (
	ErrCodeCompareIncomplete ErrorCode = "CMP_001"
	ErrCodeCompareDuplicate  ErrorCode = "CMP_002"
)

// Dataset Error Codes
const (
	ErrCodeDatasetInvalid     ErrorCode = "DAT_001"
	ErrCodeDatasetUnreadable  ErrorCode = "DAT_002"
	ErrCodeDatasetUnsupported ErrorCode = "DAT_003"
)

// Advisor Module Error Codes
const (
	ErrCodeAdvisorUnavailable   ErrorCode = "ADV_001"
	ErrCodeAdvisorBadResponse   ErrorCode = "ADV_002"
	ErrCodeAdvisorQueryRequired ErrorCode = "ADV_003"
	ErrCodeAdvisorNotConfigured ErrorCode = "ADV_004"
)

// Preference Module Error Codes
const (
	ErrCodePreferenceInvalid ErrorCode = "PRF_001"
	ErrCodePreferenceStore   ErrorCode = "PRF_002"
)

// ErrorCodeHTTPStatus maps ErrorCodes to HTTP status codes.
var ErrorCodeHTTPStatus = map[ErrorCode]int{
	ErrCodeInternal:           http.StatusInternalServerError,
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeConflict:           http.StatusConflict,
	ErrCodeTooManyRequests:    http.StatusTooManyRequests,
	ErrCodeServiceUnavailable: http.StatusServiceUnavailable,
	ErrCodeTimeout:            http.StatusGatewayTimeout,
	ErrCodeValidation:         http.StatusUnprocessableEntity,
	ErrCodeSerialization:      http.StatusInternalServerError,
	ErrCodeCacheError:         http.StatusInternalServerError,
	ErrCodeExternalService:    http.StatusBadGateway,
	ErrCodeNotImplemented:     http.StatusNotImplemented,

	ErrCodeMachineNotFound:    http.StatusNotFound,
	ErrCodeScenarioInvalid:    http.StatusBadRequest,
	ErrCodeSortKeyInvalid:     http.StatusBadRequest,
	ErrCodeEstimateInputError: http.StatusBadRequest,

	ErrCodeCompareIncomplete: http.StatusBadRequest,
	ErrCodeCompareDuplicate:  http.StatusBadRequest,

	ErrCodeDatasetInvalid:     http.StatusInternalServerError,
	ErrCodeDatasetUnreadable:  http.StatusInternalServerError,
	ErrCodeDatasetUnsupported: http.StatusInternalServerError,

	ErrCodeAdvisorUnavailable:   http.StatusServiceUnavailable,
	ErrCodeAdvisorBadResponse:   http.StatusBadGateway,
	ErrCodeAdvisorQueryRequired: http.StatusBadRequest,
	ErrCodeAdvisorNotConfigured: http.StatusServiceUnavailable,

	ErrCodePreferenceInvalid: http.StatusBadRequest,
	ErrCodePreferenceStore:   http.StatusInternalServerError,
}

// ErrorCodeMessage maps ErrorCodes to default messages.
var ErrorCodeMessage = map[ErrorCode]string{
	ErrCodeInternal:           "internal server error",
	ErrCodeBadRequest:         "bad request",
	ErrCodeNotFound:           "resource not found",
	ErrCodeConflict:           "resource conflict",
	ErrCodeTooManyRequests:    "too many requests",
	ErrCodeServiceUnavailable: "service unavailable",
	ErrCodeTimeout:            "request timeout",
	ErrCodeValidation:         "validation failed",
	ErrCodeSerialization:      "serialization failed",
	ErrCodeCacheError:         "cache error",
	ErrCodeExternalService:    "external service error",
	ErrCodeNotImplemented:     "not implemented",

	ErrCodeMachineNotFound:    "machine not found",
	ErrCodeScenarioInvalid:    "unknown scenario",
	ErrCodeSortKeyInvalid:     "unknown sort key",
	ErrCodeEstimateInputError: "invalid estimate input",

	ErrCodeCompareIncomplete: "comparison needs exactly two machines",
	ErrCodeCompareDuplicate:  "comparison needs two different machines",

	ErrCodeDatasetInvalid:     "dataset failed validation",
	ErrCodeDatasetUnreadable:  "dataset could not be read",
	ErrCodeDatasetUnsupported: "unsupported dataset format",

	ErrCodeAdvisorUnavailable:   "advisor service unavailable",
	ErrCodeAdvisorBadResponse:   "malformed advisor response",
	ErrCodeAdvisorQueryRequired: "advisor query is required",
	ErrCodeAdvisorNotConfigured: "advisor backend not configured",

	ErrCodePreferenceInvalid: "invalid preference value",
	ErrCodePreferenceStore:   "preference store error",
}

// HTTPStatusForCode returns the HTTP status code for an ErrorCode.
func HTTPStatusForCode(code ErrorCode) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DefaultMessageForCode returns the default message for an ErrorCode.
func DefaultMessageForCode(code ErrorCode) string {
	if msg, ok := ErrorCodeMessage[code]; ok {
		return msg
	}
	return "unknown error"
}

// IsClientError returns true if the ErrorCode corresponds to a 4xx HTTP status.
func IsClientError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 400 && status < 500
}

// IsServerError returns true if the ErrorCode corresponds to a 5xx HTTP status.
func IsServerError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 500 && status < 600
}

// ModuleForCode returns the module prefix of an ErrorCode.
func ModuleForCode(code ErrorCode) string {
	parts := strings.Split(string(code), "_")
	if len(parts) > 1 && parts[0] != "" {
		return parts[0]
	}
	return "UNKNOWN"
}

//Personal.AI order the ending
