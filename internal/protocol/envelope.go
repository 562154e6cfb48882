package protocol

import (
	"encoding/json"

	"github.com/rescuegate/rescuegate/internal/errs"
)

var nullID = json.RawMessage("null")

// ParseRequest decodes one JSON-RPC frame, validating the required
// envelope fields before the protocol core ever sees a typed Request.
// A malformed frame yields a ParseError response keyed to id=null, per the
// stdio transport's contract for unparseable input.
func ParseRequest(raw []byte) (*Request, *errs.Error) {
	if !json.Valid(raw) {
		return nil, errs.Parse("invalid JSON")
	}

	var req Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, errs.Parse("request must be a JSON object: %v", err)
	}
	if req.JSONRPC != "2.0" {
		return nil, errs.Parse(`missing or invalid "jsonrpc" version, must be "2.0"`)
	}
	if req.Method == "" {
		return nil, errs.Parse(`missing "method"`)
	}
	return &req, nil
}

// Result builds a success response for the given request id.
func Result(id json.RawMessage, result any) *Response {
	return &Response{JSONRPC: "2.0", ID: normalizeID(id), Result: result}
}

// Fault builds an error response for the given request id.
func Fault(id json.RawMessage, err *errs.Error) *Response {
	return &Response{
		JSONRPC: "2.0",
		ID:      normalizeID(id),
		Error: &RPCError{
			Code:    err.Code(),
			Message: err.Message,
			Data:    err.Data(),
		},
	}
}

// normalizeID ensures a response always carries a valid JSON id token, even
// when the inbound request's id could not be parsed (e.g. a top-level parse
// failure, where id is unknowable and must echo as null).
func normalizeID(id json.RawMessage) json.RawMessage {
	if len(id) == 0 {
		return nullID
	}
	return id
}
