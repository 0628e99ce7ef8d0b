package gateway

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// TransportError covers network failures, non-2xx HTTP responses, and bodies
// that are not a decodable envelope.
type TransportError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
	case e.StatusCode > 0:
		return fmt.Sprintf("%s %s: %s", e.Method, e.URL, statusMessage(e.StatusCode))
	default:
		return fmt.Sprintf("%s %s: transport failure", e.Method, e.URL)
	}
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ApplicationError is an envelope whose statusCode is not a success code,
// even though the HTTP exchange itself succeeded.
type ApplicationError struct {
	StatusCode int
	Messages   []string
}

func (e *ApplicationError) Error() string {
	if len(e.Messages) > 0 {
		return fmt.Sprintf("backend status %d: %s", e.StatusCode, strings.Join(e.Messages, "; "))
	}
	return fmt.Sprintf("backend status %d", e.StatusCode)
}

// ValidationError lists required fields that were missing before dispatch.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, " ")
}

// Paths searched, in order, for a human-readable message in an error body.
var (
	envelopeMessagePaths = []string{"response.data.message", "data.message", "message"}
	bodyMessagePaths     = []string{"message", "data.message"}
)

// ErrorMessages returns the user-facing messages for err. It always returns
// at least one message for a non-nil err.
func ErrorMessages(err error) []string {
	if err == nil {
		return nil
	}

	var validation *ValidationError
	if errors.As(err, &validation) && len(validation.Messages) > 0 {
		return validation.Messages
	}

	var application *ApplicationError
	if errors.As(err, &application) {
		if len(application.Messages) > 0 {
			return application.Messages
		}
		return []string{statusMessage(application.StatusCode)}
	}

	var transport *TransportError
	if errors.As(err, &transport) {
		if messages := firstMessages(transport.Body, bodyMessagePaths); len(messages) > 0 {
			return messages
		}
		if transport.Err != nil {
			return []string{transport.Err.Error()}
		}
		if transport.StatusCode > 0 {
			return []string{statusMessage(transport.StatusCode)}
		}
	}
	return []string{err.Error()}
}

// firstMessages returns the first non-empty message found at paths. A path
// may hold a string or an array of strings.
func firstMessages(body []byte, paths []string) []string {
	if len(body) == 0 || !gjson.ValidBytes(body) {
		return nil
	}
	for _, path := range paths {
		result := gjson.GetBytes(body, path)
		if result.IsArray() {
			var out []string
			for _, item := range result.Array() {
				if text := strings.TrimSpace(item.String()); text != "" {
					out = append(out, text)
				}
			}
			if len(out) > 0 {
				return out
			}
			continue
		}
		if result.Type == gjson.String {
			if text := strings.TrimSpace(result.Str); text != "" {
				return []string{text}
			}
		}
	}
	return nil
}

func statusMessage(code int) string {
	return fmt.Sprintf("Request failed with status code %d", code)
}
