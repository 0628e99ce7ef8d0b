package gateway

import (
	"context"
	"errors"
	"time"
)

// QueryOptions configures a cached, key-addressed GET.
type QueryOptions struct {
	Key []string
	URL string
	// Disabled skips the query. Queries also skip when no token is set.
	Disabled bool
	// RefetchOnMount refetches cached entries older than StaleTime.
	RefetchOnMount bool
	// RefetchInterval, when positive, forces a refetch once an entry is that old.
	RefetchInterval time.Duration
	StaleTime       time.Duration
	// Silent routes errors to the log instead of user notices.
	Silent bool
	// Public lets the query run without a token.
	Public bool
}

// QueryResult is the outcome of Query.
type QueryResult[T any] struct {
	Data      T
	OK        bool
	FromCache bool
	Err       error
}

// PageResult is the outcome of PaginatedQuery. Failed or skipped queries
// carry an empty Data list, zero TotalItems and a PageCount of 1.
type PageResult[T any] struct {
	Data       []T
	TotalItems int
	PageCount  int
	Page       int
	Limit      int
	FromCache  bool
	Skipped    bool
	Err        error
}

// FetchData issues an uncached GET and returns the envelope data on success.
// On failure it emits one error notice per extracted message and reports
// false.
func FetchData[T any](ctx context.Context, c *Client, endpoint string) (T, bool) {
	var zero T
	resp, err := c.Get(ctx, endpoint)
	if err == nil {
		var env Envelope[T]
		env, err = decodeEnvelope[T](resp, IsSuccess)
		if err == nil {
			return env.Data, true
		}
	}
	c.notifyError(err)
	return zero, false
}

// Query is the cached single-resource form of FetchData.
func Query[T any](ctx context.Context, c *Client, opts QueryOptions) QueryResult[T] {
	if !c.enabled(opts) {
		return QueryResult[T]{}
	}
	resp, fromCache, err := c.cachedGet(ctx, opts, func(resp *Response) error {
		_, err := decodeEnvelope[T](resp, IsSuccess)
		return err
	})
	if err != nil {
		c.reportQueryError(opts, err)
		return QueryResult[T]{Err: err}
	}
	env, err := decodeEnvelope[T](resp, IsSuccess)
	if err != nil {
		c.reportQueryError(opts, err)
		return QueryResult[T]{Err: err}
	}
	return QueryResult[T]{Data: env.Data, OK: true, FromCache: fromCache}
}

// PaginatedQuery reads one page of a list endpoint through the query cache.
func PaginatedQuery[T any](ctx context.Context, c *Client, opts QueryOptions) PageResult[T] {
	empty := PageResult[T]{Data: []T{}, PageCount: 1}
	if !c.enabled(opts) {
		empty.Skipped = true
		return empty
	}
	resp, fromCache, err := c.cachedGet(ctx, opts, func(resp *Response) error {
		_, err := decodePaginated[T](resp)
		return err
	})
	var env PaginatedEnvelope[T]
	if err == nil {
		env, err = decodePaginated[T](resp)
	}
	if err != nil {
		c.reportQueryError(opts, err)
		empty.Err = err
		return empty
	}

	out := PageResult[T]{
		Data:       env.Data.Data,
		TotalItems: env.Data.Total,
		PageCount:  env.Data.PageCount,
		Page:       env.Data.Page,
		Limit:      env.Data.Limit,
		FromCache:  fromCache,
	}
	if out.Data == nil {
		out.Data = []T{}
	}
	if out.PageCount < 1 {
		out.PageCount = 1
	}
	return out
}

func (c *Client) enabled(opts QueryOptions) bool {
	if opts.Disabled || opts.URL == "" {
		return false
	}
	return opts.Public || c.token != ""
}

// cacheKey addresses opts in the shared query cache. Entries fetched with a
// token are scoped to that token so one caller never reads another's data.
func (c *Client) cacheKey(opts QueryOptions) string {
	key := CacheKey(opts.Key)
	if key == "" || opts.Public || c.token == "" {
		return key
	}
	return key + ":" + ownerSegment(c.token)
}

// cachedGet serves a fresh cache entry or fetches opts.URL. Fetched bodies
// are cached only when validate accepts them.
func (c *Client) cachedGet(ctx context.Context, opts QueryOptions, validate func(*Response) error) (*Response, bool, error) {
	key := c.cacheKey(opts)
	now := c.now()
	if entry, ok := c.cache.load(ctx, key); ok && fresh(entry, opts, now) {
		return &Response{StatusCode: 200, Body: entry.PayloadBytes}, true, nil
	}

	resp, err := c.Get(ctx, opts.URL)
	if err != nil {
		return nil, false, err
	}
	if err := validate(resp); err != nil {
		return nil, false, err
	}
	if err := c.cache.save(ctx, key, resp.Body, c.now()); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("query cache write failed")
	}
	return resp, false, nil
}

func (c *Client) reportQueryError(opts QueryOptions, err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	if opts.Silent {
		c.logError(err)
		return
	}
	c.notifyError(err)
}
