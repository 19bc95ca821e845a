package errors

import "fmt"

// Error codes
const (
	CodePipeline   = "PIPELINE_ERROR"
	CodeAPIError   = "API_ERROR"
	CodeQuota      = "QUOTA_ERROR"
	CodeCredential = "CREDENTIAL_ERROR"
	CodeMalformed  = "MALFORMED_RESPONSE"
	CodeValidation = "VALIDATION_ERROR"
	CodeCache      = "CACHE_ERROR"
	CodeService    = "SERVICE_ERROR"
)

type PipelineError struct {
	Message    string
	Code       string
	StatusCode int
	Context    map[string]any
	Cause      error
}

func (e *PipelineError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *PipelineError) Unwrap() error {
	return e.Cause
}

// Pipeline returns the error itself. Promoted through the embedded pointer,
// it lets AsPipelineError reach the base error inside any typed wrapper.
func (e *PipelineError) Pipeline() *PipelineError {
	return e
}

// AsPipelineError walks the error chain and returns the first
// *PipelineError it finds, whether bare or embedded in one of the typed
// errors of this package.
func AsPipelineError(err error) (*PipelineError, bool) {
	for err != nil {
		if pe, ok := err.(*PipelineError); ok {
			return pe, true
		}
		if carrier, ok := err.(interface{ Pipeline() *PipelineError }); ok {
			return carrier.Pipeline(), true
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil, false
		}
		err = unwrapper.Unwrap()
	}
	return nil, false
}

func NewPipelineError(message, code string, statusCode int, context map[string]any) *PipelineError {
	return &PipelineError{
		Message:    message,
		Code:       code,
		StatusCode: statusCode,
		Context:    context,
	}
}

func (e *PipelineError) WithCause(cause error) *PipelineError {
	e.Cause = cause
	return e
}

type APIError struct {
	*PipelineError
}

func NewAPIError(message string, statusCode int, context map[string]any) *APIError {
	return &APIError{
		PipelineError: &PipelineError{
			Message:    message,
			Code:       CodeAPIError,
			StatusCode: statusCode,
			Context:    context,
		},
	}
}

// QuotaError marks provider rate-limit exhaustion. Handlers map it to 503.
type QuotaError struct {
	*PipelineError
	Provider string
}

func NewQuotaError(message, provider string, cause error) *QuotaError {
	return &QuotaError{
		PipelineError: &PipelineError{
			Message:    message,
			Code:       CodeQuota,
			StatusCode: 503,
			Context:    map[string]any{"provider": provider},
			Cause:      cause,
		},
		Provider: provider,
	}
}

type CredentialError struct {
	*PipelineError
	Provider string
}

func NewCredentialError(message, provider string, cause error) *CredentialError {
	return &CredentialError{
		PipelineError: &PipelineError{
			Message:    message,
			Code:       CodeCredential,
			StatusCode: 500,
			Context:    map[string]any{"provider": provider},
			Cause:      cause,
		},
		Provider: provider,
	}
}

// MalformedResponseError marks model output that failed schema decoding.
type MalformedResponseError struct {
	*PipelineError
	Raw string
}

func NewMalformedResponseError(message, raw string, cause error) *MalformedResponseError {
	return &MalformedResponseError{
		PipelineError: &PipelineError{
			Message:    message,
			Code:       CodeMalformed,
			StatusCode: 500,
			Context:    map[string]any{"raw": raw},
			Cause:      cause,
		},
		Raw: raw,
	}
}

type ValidationError struct {
	*PipelineError
	Field string
	Value interface{}
}

func NewValidationError(message, field string, value interface{}) *ValidationError {
	return &ValidationError{
		PipelineError: &PipelineError{
			Message:    message,
			Code:       CodeValidation,
			StatusCode: 400,
			Context: map[string]any{
				"field": field,
				"value": value,
			},
		},
		Field: field,
		Value: value,
	}
}

type CacheError struct {
	*PipelineError
	Operation string
	Key       string
}

func NewCacheError(message, operation, key string, cause error) *CacheError {
	return &CacheError{
		PipelineError: &PipelineError{
			Message:    message,
			Code:       CodeCache,
			StatusCode: 500,
			Context: map[string]any{
				"operation": operation,
				"key":       key,
			},
			Cause: cause,
		},
		Operation: operation,
		Key:       key,
	}
}

type ServiceError struct {
	*PipelineError
	Service   string
	Operation string
}

func NewServiceError(message, service, operation string, cause error) *ServiceError {
	return &ServiceError{
		PipelineError: &PipelineError{
			Message:    message,
			Code:       CodeService,
			StatusCode: 500,
			Context: map[string]any{
				"service":   service,
				"operation": operation,
			},
			Cause: cause,
		},
		Service:   service,
		Operation: operation,
	}
}
