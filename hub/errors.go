// Copyright 2026 Hearthside Labs
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


package hub

import (
	"errors"
	"fmt"
)

// Sentinel errors for hub operations.
var (
	// ErrServiceNotFound indicates a call naming an unregistered service.
	ErrServiceNotFound = errors.New("service not found")

	// ErrDuplicateService indicates a second registration under the
	// same domain and service name.
	ErrDuplicateService = errors.New("service already registered")

	// ErrEntryNotLoaded indicates an operation referencing a config
	// entry the hub has no provider for.
	ErrEntryNotLoaded = errors.New("config entry is not loaded")

	// ErrEntryNotReady indicates entry setup failed transiently and
	// should be retried later.
	ErrEntryNotReady = errors.New("config entry is not ready")

	// ErrEntryFailed indicates entry setup failed permanently, for
	// example due to rejected credentials.
	ErrEntryFailed = errors.New("config entry setup failed")

	// ErrHubClosed indicates an operation on a closed hub.
	ErrHubClosed = errors.New("hub is closed")
)

// ValidationError reports invalid caller input: an unknown target, a
// missing field, or an out-of-range value. The caller can fix the
// request and retry.
type ValidationError struct {
	Message string
	Cause   error
}

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// ServiceError reports a failure inside a service handler, usually an
// upstream provider error. It preserves the cause for errors.Is/As.
type ServiceError struct {
	Domain  string
	Service string
	Cause   error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("service %s.%s failed: %v", e.Domain, e.Service, e.Cause)
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}
