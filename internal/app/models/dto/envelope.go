package dto

// Envelope is the uniform response body for API endpoints. Success and failure
// share the same shape and are told apart by the internal code: codes below 999
// are success variants, 999 and above are failures. It is returned through
// normal control flow, never raised.
type Envelope struct {
	Msg    string      `json:"msg" example:"Ok"`
	Status int         `json:"code" example:"201"`        // HTTP-style status code
	Code   int         `json:"error_code" example:"0"`    // Internal result code
	Data   interface{} `json:"data,omitempty"`
}

// Internal result codes
const (
	CodeOk               = 0
	CodeDeleteOk         = 1
	CodeUpdateOk         = 2
	CodeServerError      = 999
	CodeInvalidParameter = 1000
	CodeNotFound         = 1001
	CodeForbidden        = 1004
	CodeAuthFailed       = 1005
)

// Ok is the generic success envelope (201/0)
func Ok(data interface{}) Envelope {
	return Envelope{Msg: "Ok", Status: 201, Code: CodeOk, Data: data}
}

// DeleteOk acknowledges a successful delete (202/1)
func DeleteOk() Envelope {
	return Envelope{Msg: "delete ok", Status: 202, Code: CodeDeleteOk}
}

// UpdateOk acknowledges a successful update (203/2)
func UpdateOk() Envelope {
	return Envelope{Msg: "update ok", Status: 203, Code: CodeUpdateOk}
}

// ServerError is the default failure envelope (500/999)
func ServerError() Envelope {
	return Envelope{Msg: "Sorry, server made a mistake", Status: 500, Code: CodeServerError}
}

// InvalidParameter reports a malformed or rejected input (400/1000)
func InvalidParameter(msg string) Envelope {
	if msg == "" {
		msg = "Invalid parameter"
	}
	return Envelope{Msg: msg, Status: 400, Code: CodeInvalidParameter}
}

// NotFound reports a missing resource (404/1001)
func NotFound(msg string) Envelope {
	if msg == "" {
		msg = "Resource not found"
	}
	return Envelope{Msg: msg, Status: 404, Code: CodeNotFound}
}

// Forbidden reports an authorization failure (403/1004)
func Forbidden() Envelope {
	return Envelope{Msg: "forbidden", Status: 403, Code: CodeForbidden}
}

// AuthFailed reports an authentication failure (401/1005)
func AuthFailed() Envelope {
	return Envelope{Msg: "authorization failed", Status: 401, Code: CodeAuthFailed}
}

// IsSuccess reports whether the envelope carries a success variant
func (e Envelope) IsSuccess() bool {
	return e.Code < CodeServerError
}
