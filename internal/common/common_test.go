package common

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
)

type sampleRequest struct {
	ID string `validate:"required"`
}

func TestGenericEchoValidator(t *testing.T) {
	v := NewGenericEchoValidator()

	if err := v.Validate(&sampleRequest{ID: "abc"}); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}

	err := v.Validate(&sampleRequest{})
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", httpErr.Code)
	}
}

func TestGenericEchoValidator_ConcurrentUse(t *testing.T) {
	for name, v := range map[string]*GenericEchoValidator{
		"constructed": NewGenericEchoValidator(),
		"zero value":  {},
	} {
		t.Run(name, func(t *testing.T) {
			const workers = 16
			var wg sync.WaitGroup
			errs := make(chan error, workers*2)
			for w := 0; w < workers; w++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					if err := v.Validate(&sampleRequest{ID: "x"}); err != nil {
						errs <- err
					}
					if err := v.Validate(&sampleRequest{}); err == nil {
						errs <- errors.New("expected validation error for empty ID")
					}
				}()
			}
			wg.Wait()
			close(errs)
			for err := range errs {
				t.Error(err)
			}
		})
	}
}

func TestJSONErrorHandler(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "http error keeps message",
			err:         echo.NewHTTPError(http.StatusBadRequest, "bad input"),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "bad input",
		},
		{
			name:        "http error without string message",
			err:         echo.ErrNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: "Not Found",
		},
		{
			name:        "plain error is hidden",
			err:         errors.New("disk on fire"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			JSONErrorHandler(tt.err, ctx)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			var body ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode body %q: %v", rec.Body.String(), err)
			}
			if body.Error != tt.wantMessage {
				t.Errorf("expected message %q, got %q", tt.wantMessage, body.Error)
			}
		})
	}
}
