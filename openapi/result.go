package openapi

import (
	"encoding/json"

	"github.com/skillsenselab/openapi-client/httpclient"
)

// tryParseJSON attempts to decode body as JSON. It returns the decoded
// value and true on success, or nil and false otherwise. Branching on the
// result keeps non-JSON bodies out of the error path: a plain-text 200 is
// not a failure.
func tryParseJSON(body []byte) (any, bool) {
	var value any
	if err := json.Unmarshal(body, &value); err != nil {
		return nil, false
	}
	return value, true
}

// coerceResponse maps a transport result to the caller-facing value:
// status errors and transport errors pass through; otherwise the decoded
// JSON value, or the raw body text when the body is not JSON.
func coerceResponse(resp *httpclient.Response, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	if value, ok := tryParseJSON(resp.Body); ok {
		return value, nil
	}
	return resp.Text(), nil
}
