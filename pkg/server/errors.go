// Copyright (c) 2025, The RecipeHub Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	rherrors "github.com/recipehub/recipehub/pkg/errors"
	"github.com/recipehub/recipehub/pkg/serializer"
)

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// WriteError writes an ErrorResponse with the given status.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code rherrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID := RequestID(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	serializer.RespondJSON(w, statusCode, ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	})
}

// WriteErrorFromErr maps err to a status and error code. Structured errors
// contribute their code, message and context; anything else is reported as
// an internal error with fallbackMessage. The underlying cause is returned
// to the client only for 4xx responses; server-side causes are logged.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string, extraDetails map[string]any) {
	var se *rherrors.StructuredError
	if errors.As(err, &se) {
		status := HTTPStatusFromCode(se.Code)
		details := mergeDetails(se.Context, extraDetails)
		if se.Cause != nil {
			if status < http.StatusInternalServerError {
				details = mergeDetails(details, map[string]any{"error": se.Cause.Error()})
			} else {
				slog.ErrorContext(r.Context(), "request failed",
					"code", se.Code, "error", se.Cause, "requestID", RequestID(r.Context()))
			}
		}
		WriteError(w, r, status, se.Code, se.Message, retryableFromCode(se.Code), details)
		return
	}

	if err != nil {
		slog.ErrorContext(r.Context(), "request failed", "error", err, "requestID", RequestID(r.Context()))
	}
	WriteError(w, r, http.StatusInternalServerError, rherrors.ErrCodeInternal, fallbackMessage, true,
		mergeDetails(extraDetails, nil))
}

// HTTPStatusFromCode maps an error code to an HTTP status.
func HTTPStatusFromCode(code rherrors.ErrorCode) int {
	switch code {
	case rherrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case rherrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case rherrors.ErrCodeNotFound:
		return http.StatusNotFound
	case rherrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case rherrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case rherrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case rherrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func retryableFromCode(code rherrors.ErrorCode) bool {
	switch code {
	case rherrors.ErrCodeTimeout, rherrors.ErrCodeUnavailable,
		rherrors.ErrCodeRateLimitExceeded, rherrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
