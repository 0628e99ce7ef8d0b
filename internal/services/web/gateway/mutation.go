package gateway

import (
	"context"
	"fmt"
	"strings"
)

// Method selects how a mutation body is sent.
type Method string

const defaultSuccessMessage = "Request completed successfully."

// Mutation methods. Form variants send multipart bodies.
const (
	MethodPost      Method = "POST"
	MethodPatch     Method = "PATCH"
	MethodPostForm  Method = "POST_FORM"
	MethodPatchForm Method = "PATCH_FORM"
)

// MutationRequest describes one write call.
type MutationRequest struct {
	Method         Method
	URL            string
	Body           map[string]any
	RequiredFields []RequiredField
	// InvalidateKeys are cache key prefixes invalidated after success.
	InvalidateKeys []string
	QuietSuccess   bool
	QuietError     bool
}

// DeleteRequest describes one DELETE call.
type DeleteRequest struct {
	URL            string
	InvalidateKeys []string
	QuietSuccess   bool
}

// MutationResult is the outcome of HandleMutation or HandleDelete.
type MutationResult[T any] struct {
	Success    bool
	Data       T
	StatusCode int
	Message    string
	Err        error
}

// HandleMutation validates req, sends it, and classifies the envelope.
// Validation failures never reach the network.
func HandleMutation[T any](ctx context.Context, c *Client, req MutationRequest) MutationResult[T] {
	body := req.Body
	if body == nil {
		body = map[string]any{}
	}
	if err := Validate(body, req.RequiredFields); err != nil {
		c.notifyError(err)
		return MutationResult[T]{Err: err}
	}

	var resp *Response
	var err error
	switch req.Method {
	case MethodPost, "":
		resp, err = c.Post(ctx, req.URL, body)
	case MethodPatch:
		resp, err = c.Patch(ctx, req.URL, body)
	case MethodPostForm:
		resp, err = c.PostForm(ctx, req.URL, body)
	case MethodPatchForm:
		resp, err = c.PatchForm(ctx, req.URL, body)
	default:
		err = &TransportError{Method: string(req.Method), URL: req.URL, Err: fmt.Errorf("unsupported method %q", req.Method)}
	}
	return finishMutation[T](ctx, c, resp, err, req.InvalidateKeys, req.QuietSuccess, req.QuietError)
}

// HandleDelete issues a DELETE with the same classification and
// invalidation as HandleMutation.
func HandleDelete[T any](ctx context.Context, c *Client, req DeleteRequest) MutationResult[T] {
	resp, err := c.Delete(ctx, req.URL)
	return finishMutation[T](ctx, c, resp, err, req.InvalidateKeys, req.QuietSuccess, false)
}

func finishMutation[T any](ctx context.Context, c *Client, resp *Response, err error, invalidate []string, quietSuccess, quietError bool) MutationResult[T] {
	var env Envelope[T]
	if err == nil {
		env, err = decodeEnvelope[T](resp, IsSuccess)
	}
	if err != nil {
		if !quietError {
			c.notifyError(err)
		}
		return MutationResult[T]{Err: err}
	}

	if !quietSuccess {
		message := strings.TrimSpace(env.Message)
		if message == "" {
			message = defaultSuccessMessage
		}
		c.notifier.NotifySuccess(message)
	}
	c.Invalidate(ctx, invalidate...)
	return MutationResult[T]{Success: true, Data: env.Data, StatusCode: env.StatusCode, Message: env.Message}
}

// Invalidate marks each distinct key prefix stale once.
func (c *Client) Invalidate(ctx context.Context, keys ...string) {
	seen := make(map[string]struct{}, len(keys))
	now := c.now()
	for _, key := range keys {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		if err := c.cache.Invalidate(ctx, key, now); err != nil {
			c.logger.Warn().Err(err).Str("key", key).Msg("cache invalidation failed")
		}
	}
}

