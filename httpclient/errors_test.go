package httpclient

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassifyStatusCode(t *testing.T) {
	tests := []struct {
		status  int
		wantErr bool
	}{
		{200, false},
		{201, false},
		{301, false},
		{399, false},
		{400, true},
		{404, true},
		{500, true},
	}

	for _, tt := range tests {
		err := ClassifyStatusCode(tt.status, []byte("body"))
		if (err != nil) != tt.wantErr {
			t.Errorf("status %d: wantErr=%v, got %v", tt.status, tt.wantErr, err)
		}
		if err != nil {
			if err.StatusCode != tt.status {
				t.Errorf("status %d: error carries %d", tt.status, err.StatusCode)
			}
			if string(err.Body) != "body" {
				t.Errorf("status %d: raw body not preserved", tt.status)
			}
		}
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("dial tcp: connection refused")
	err := NewTransportError(cause)

	if !errors.Is(err, cause) {
		t.Error("transport error must unwrap to the original cause")
	}
	if !IsTransport(err) {
		t.Error("expected IsTransport=true")
	}
}

func TestErrorCode_String(t *testing.T) {
	codes := map[ErrorCode]string{
		ErrCodeTransport:     "transport",
		ErrCodeTimeout:       "timeout",
		ErrCodeStatus:        "status",
		ErrCodeSerialization: "serialization",
	}
	for code, want := range codes {
		if got := code.String(); got != want {
			t.Errorf("code %d: expected %q, got %q", code, want, got)
		}
	}
}

func TestIsHelpers(t *testing.T) {
	if !IsAuth(NewStatusError(401, nil)) || !IsAuth(NewStatusError(403, nil)) {
		t.Error("401/403 must classify as auth")
	}
	if IsAuth(NewStatusError(404, nil)) {
		t.Error("404 must not classify as auth")
	}
	if !IsServerError(NewStatusError(503, nil)) {
		t.Error("503 must classify as server error")
	}
	if code, ok := IsStatus(NewStatusError(418, nil)); !ok || code != 418 {
		t.Errorf("IsStatus: expected (418,true), got (%d,%v)", code, ok)
	}
}
