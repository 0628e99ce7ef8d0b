package gateway

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

// Envelope is the backend response wrapper.
type Envelope[T any] struct {
	Data       T      `json:"data"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// Page is the data block of a paginated envelope.
type Page[T any] struct {
	Data      []T `json:"data"`
	Total     int `json:"total"`
	Page      int `json:"page"`
	Limit     int `json:"limit"`
	PageCount int `json:"pageCount"`
}

// PaginatedEnvelope is the envelope returned by list endpoints.
type PaginatedEnvelope[T any] struct {
	StatusCode int     `json:"statusCode"`
	Message    string  `json:"message"`
	Data       Page[T] `json:"data"`
}

// Some backends spell the status field differently; the first present wins.
var statusCodePaths = []string{"statusCode", "status_code", "code"}

// envelopeStatus reads the envelope status code from body.
func envelopeStatus(body []byte) int {
	for _, path := range statusCodePaths {
		if result := gjson.GetBytes(body, path); result.Exists() {
			return int(result.Int())
		}
	}
	return 0
}

// IsSuccess reports whether an envelope status counts as success.
func IsSuccess(statusCode int) bool {
	return statusCode == http.StatusOK || statusCode == http.StatusCreated
}

// decodeEnvelope classifies body and decodes its data when accept(status)
// holds. Messages on failure come from the envelope itself.
func decodeEnvelope[T any](resp *Response, accept func(int) bool) (Envelope[T], error) {
	if !gjson.ValidBytes(resp.Body) {
		return Envelope[T]{}, &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("response is not JSON")}
	}
	status := envelopeStatus(resp.Body)
	if !accept(status) {
		return Envelope[T]{}, &ApplicationError{StatusCode: status, Messages: firstMessages(resp.Body, envelopeMessagePaths)}
	}
	var out Envelope[T]
	var data struct {
		Data T `json:"data"`
	}
	if err := json.Unmarshal(resp.Body, &data); err != nil {
		return Envelope[T]{}, &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("decode envelope: %w", err)}
	}
	out.Data = data.Data
	out.StatusCode = status
	if message := gjson.GetBytes(resp.Body, "message"); message.Type == gjson.String {
		out.Message = message.Str
	}
	return out, nil
}

// decodePaginated accepts only statusCode 200 with a data block.
func decodePaginated[T any](resp *Response) (PaginatedEnvelope[T], error) {
	env, err := decodeEnvelope[Page[T]](resp, func(status int) bool { return status == http.StatusOK })
	if err != nil {
		return PaginatedEnvelope[T]{}, err
	}
	if !gjson.GetBytes(resp.Body, "data.data").IsArray() {
		return PaginatedEnvelope[T]{}, &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("paginated response has no data list")}
	}
	return PaginatedEnvelope[T]{StatusCode: env.StatusCode, Message: env.Message, Data: env.Data}, nil
}
