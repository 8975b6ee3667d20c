// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package d42

// Failure tells the different kinds of failed API calls apart. It is not part
// of the rendered envelope, but allows callers to react differently to, say,
// missing credentials versus the API rejecting a request.
type Failure int

const (
	// NoFailure is the zero value for successful calls.
	NoFailure Failure = iota
	// FailureNoQuery signals that no API query path was given.
	FailureNoQuery
	// FailureNoCredentials signals missing user name and/or password.
	FailureNoCredentials
	// FailureRequest signals that the HTTP request could not be built.
	FailureRequest
	// FailureTLS signals a TLS handshake or certificate failure.
	FailureTLS
	// FailureConnect signals any other transport-level failure.
	FailureConnect
	// FailureStatus signals a non-success HTTP status from the API.
	FailureStatus
	// FailureDecode signals a success HTTP status with an undecodable body.
	FailureDecode
)

// Result is the uniform envelope for all outcomes of an API call.
type Result struct {
	// OK is true only for successful calls.
	OK bool `json:"ok" yaml:"ok"`
	// Data is either the decoded (and normalized) JSON response of a
	// successful call, or the failure detail: a message string for failures
	// that happened before or while contacting the API, or an error object
	// with "error_message" and optional "server_response" for non-success
	// HTTP status codes.
	Data any `json:"data" yaml:"data"`
	// StatusCode is the HTTP status code, present only if OK.
	StatusCode int `json:"status_code,omitempty" yaml:"status_code,omitempty"`
	// Failure gives the kind of failure, or NoFailure.
	Failure Failure `json:"-" yaml:"-"`
}

// failed returns a failure envelope with the specified kind and detail.
func failed(kind Failure, data any) Result {
	return Result{Data: data, Failure: kind}
}

// Message returns a short description of a failed call: either the failure
// message itself or the "error_message" of the API error detail.
func (r Result) Message() string {
	switch data := r.Data.(type) {
	case string:
		return data
	case map[string]any:
		if msg, ok := data["error_message"].(string); ok {
			return msg
		}
	}
	if r.OK {
		return ""
	}
	return "API call failed."
}
