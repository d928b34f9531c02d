// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf16"

	"github.com/MKhiriev/remote-mirror/internal/config"
	"github.com/MKhiriev/remote-mirror/internal/logger"
	"github.com/MKhiriev/remote-mirror/internal/utils"
	"github.com/MKhiriev/remote-mirror/models"
	"github.com/go-resty/resty/v2"
	"github.com/sethvargo/go-retry"
	"golang.org/x/oauth2"
)

const (
	listFolderEndpoint         = "/2/files/list_folder"
	listFolderContinueEndpoint = "/2/files/list_folder/continue"
	downloadEndpoint           = "/2/files/download"

	// errorBodyLimit caps how much of a failed streamed response is read
	// into the error message.
	errorBodyLimit = 64 << 10
)

type dropboxAdapter struct {
	api     *utils.HTTPClient
	content *utils.HTTPClient

	// requestTimeout bounds a whole listing call, body included. Downloads
	// are bounded only up to the response headers.
	requestTimeout time.Duration

	maxRetries  uint64
	retryBase   time.Duration
	retryCapped time.Duration

	logger *logger.Logger
}

// NewDropboxAdapter constructs the Dropbox HTTP implementation of
// [RemoteAdapter].
//
// Authentication uses the OAuth2 refresh token flow when cfg.RefreshToken is
// set (access tokens are refreshed transparently), or the static
// cfg.AccessToken otherwise. Rate-limited (429) and 5xx responses are retried
// with exponential backoff up to cfg.MaxRetries times; nil takes
// config.DefaultMaxRetries and 0 disables retrying.
func NewDropboxAdapter(cfg config.Dropbox, log *logger.Logger) (RemoteAdapter, error) {
	tokens, err := newDropboxTokenSource(cfg)
	if err != nil {
		return nil, err
	}

	authorize := func(_ *resty.Client, r *resty.Request) error {
		token, err := tokens.Token()
		if err != nil {
			return fmt.Errorf("%w: obtain access token: %v", ErrUnauthorized, err)
		}
		r.SetAuthToken(token.AccessToken)
		return nil
	}

	api := utils.NewHTTPClient(cfg.RequestTimeout)
	api.SetBaseURL(strings.TrimRight(cfg.APIURL, "/")).OnBeforeRequest(authorize)

	content := utils.NewHTTPClient(cfg.RequestTimeout)
	content.SetBaseURL(strings.TrimRight(cfg.ContentURL, "/")).OnBeforeRequest(authorize)

	maxRetries := config.DefaultMaxRetries
	if cfg.MaxRetries != nil {
		maxRetries = max(*cfg.MaxRetries, 0)
	}

	return &dropboxAdapter{
		api:            api,
		content:        content,
		requestTimeout: cfg.RequestTimeout,
		maxRetries:     uint64(maxRetries),
		retryBase:      500 * time.Millisecond,
		retryCapped:    30 * time.Second,
		logger:         log,
	}, nil
}

func newDropboxTokenSource(cfg config.Dropbox) (oauth2.TokenSource, error) {
	if cfg.RefreshToken != "" && cfg.AppKey != "" {
		oauthCfg := &oauth2.Config{
			ClientID:     cfg.AppKey,
			ClientSecret: cfg.AppSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		}
		return oauthCfg.TokenSource(context.Background(), &oauth2.Token{RefreshToken: cfg.RefreshToken}), nil
	}

	if cfg.AccessToken != "" {
		return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.AccessToken}), nil
	}

	return nil, fmt.Errorf("%w: no dropbox credentials", ErrUnauthorized)
}

// ListFolder implements [RemoteAdapter]. The root folder is addressed by an
// empty path as the Dropbox API requires.
func (d *dropboxAdapter) ListFolder(ctx context.Context, path string) (models.ListingPage, error) {
	return d.list(ctx, listFolderEndpoint, listFolderRequest{Path: dropboxPath(path)})
}

// ListFolderContinue implements [RemoteAdapter].
func (d *dropboxAdapter) ListFolderContinue(ctx context.Context, cursor string) (models.ListingPage, error) {
	return d.list(ctx, listFolderContinueEndpoint, listFolderContinueRequest{Cursor: cursor})
}

func (d *dropboxAdapter) list(ctx context.Context, endpoint string, body any) (models.ListingPage, error) {
	var result listFolderResponse

	err := d.withRetry(ctx, endpoint, func(ctx context.Context) error {
		ctx, cancel := withRequestTimeout(ctx, d.requestTimeout)
		defer cancel()

		resp, err := d.api.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetBody(body).
			Post(endpoint)
		if err != nil {
			return fmt.Errorf("%s request: %w", endpoint, err)
		}
		if err = mapHTTPError(resp, resp.Body()); err != nil {
			return err
		}

		if err = json.Unmarshal(resp.Body(), &result); err != nil {
			return fmt.Errorf("decode %s response: %w", endpoint, err)
		}
		return nil
	})
	if err != nil {
		return models.ListingPage{}, err
	}

	return result.toPage(), nil
}

// Download implements [RemoteAdapter]. The response body is streamed under
// ctx alone; only establishing the stream is retried.
func (d *dropboxAdapter) Download(ctx context.Context, path string) (io.ReadCloser, error) {
	arg, err := headerSafeJSON(downloadArg{Path: path})
	if err != nil {
		return nil, fmt.Errorf("encode download argument: %w", err)
	}

	var stream io.ReadCloser
	err = d.withRetry(ctx, downloadEndpoint, func(ctx context.Context) error {
		resp, err := d.content.R().
			SetContext(ctx).
			SetHeader("Dropbox-API-Arg", arg).
			SetDoNotParseResponse(true).
			Post(downloadEndpoint)
		if err != nil {
			return fmt.Errorf("download request: %w", err)
		}

		if !resp.IsSuccess() {
			raw := resp.RawBody()
			defer raw.Close()

			body, _ := io.ReadAll(io.LimitReader(raw, errorBodyLimit))
			return mapHTTPError(resp, body)
		}

		stream = resp.RawBody()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return stream, nil
}

// withRetry runs fn until it succeeds, fails with a non-retryable error or
// the retry budget is spent.
func (d *dropboxAdapter) withRetry(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	backoff := retry.NewExponential(d.retryBase)
	backoff = retry.WithCappedDuration(d.retryCapped, backoff)
	backoff = retry.WithMaxRetries(d.maxRetries, backoff)

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := fn(ctx)
		if err != nil && isRetryable(err) && !errors.Is(err, context.Canceled) {
			d.logger.Warn().
				Err(err).
				Str("operation", operation).
				Int("attempt", attempt).
				Msg("retrying remote call")
			return retry.RetryableError(err)
		}
		return err
	})
}

// withRequestTimeout derives the context of one bounded call.
func withRequestTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// dropboxPath converts a normalized path into the form Dropbox expects.
func dropboxPath(path string) string {
	if path == utils.RootPath {
		return ""
	}
	return path
}

// headerSafeJSON encodes v as JSON with every non-ASCII character escaped,
// which is required for JSON carried in HTTP headers.
func headerSafeJSON(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, r := range string(raw) {
		switch {
		case r < 0x7f:
			b.WriteRune(r)
		case r > 0xffff:
			r1, r2 := utf16.EncodeRune(r)
			fmt.Fprintf(&b, `\u%04x\u%04x`, r1, r2)
		default:
			fmt.Fprintf(&b, `\u%04x`, r)
		}
	}
	return b.String(), nil
}
