package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-2xx Dropbox response into a sentinel error.
// body is passed explicitly because streamed responses are not buffered by
// resty.
func mapHTTPError(resp *resty.Response, body []byte) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	text := strings.TrimSpace(string(body))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, text)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, text)
	case http.StatusConflict:
		return mapEndpointError(body)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrRateLimited, text)
	}

	if resp.StatusCode() >= http.StatusInternalServerError {
		return fmt.Errorf("%w: http %d: %s", ErrUnavailable, resp.StatusCode(), text)
	}

	if text == "" {
		text = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), text)
}

// mapEndpointError decodes a Dropbox 409 body. Summaries look like
// "path/not_found/..." or "path/malformed_path/...".
func mapEndpointError(body []byte) error {
	var apiErr dropboxError
	if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.ErrorSummary == "" {
		return fmt.Errorf("%w: %s", ErrListingFailed, strings.TrimSpace(string(body)))
	}

	if strings.Contains(apiErr.ErrorSummary, "not_found") {
		return fmt.Errorf("%w: %s", ErrNotFound, apiErr.ErrorSummary)
	}
	return fmt.Errorf("%w: %s", ErrListingFailed, apiErr.ErrorSummary)
}

// isRetryable reports whether a mapped error is worth another attempt.
func isRetryable(err error) bool {
	return errors.Is(err, ErrRateLimited) || errors.Is(err, ErrUnavailable)
}

// mapS3Error converts an SDK error. Service errors with an unrecognised code
// are endpoint errors like a Dropbox 409; anything without a service
// response is a transport failure.
func mapS3Error(err error) error {
	if err == nil {
		return nil
	}

	var noSuchKey *types.NoSuchKey
	var noSuchBucket *types.NoSuchBucket
	if errors.As(err, &noSuchKey) || errors.As(err, &noSuchBucket) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NotFound", "NoSuchKey", "NoSuchBucket":
			return fmt.Errorf("%w: %v", ErrNotFound, err)
		case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch":
			return fmt.Errorf("%w: %v", ErrUnauthorized, err)
		case "SlowDown":
			return fmt.Errorf("%w: %v", ErrRateLimited, err)
		case "InternalError", "ServiceUnavailable":
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return fmt.Errorf("%w: %v", ErrListingFailed, err)
	}

	// Transport failures and cancellation; the cause stays matchable.
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}
