package types

// SuccessEnvelope wraps every 2xx JSON body.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// APIError is the wire form of a typed store or transport error.
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Details   any    `json:"details,omitempty"`
	Retryable bool   `json:"retryable,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// StoreErrors reports the last failure recorded for each collection.
// A nil entry means the collection's most recent operation succeeded.
type StoreErrors struct {
	Version  uint64    `json:"version"`
	Users    *APIError `json:"users"`
	Invoices *APIError `json:"invoices"`
}
