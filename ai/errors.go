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


package ai

import "errors"

// Sentinel errors returned by provider implementations. Callers
// distinguish configuration mistakes (caller-fixable) from upstream
// failures with errors.Is.
var (
	// ErrInvalidConfig indicates the provider configuration failed validation.
	ErrInvalidConfig = errors.New("invalid provider configuration")

	// ErrInvalidImageRequest indicates an image request with a missing
	// prompt or an out-of-range option value.
	ErrInvalidImageRequest = errors.New("invalid image request")

	// ErrMissingAssistantID indicates a text generation call on a provider
	// configured without an assistant.
	ErrMissingAssistantID = errors.New("assistant id is not configured")

	// ErrAuthentication indicates the provider rejected the API key.
	ErrAuthentication = errors.New("authentication failed")

	// ErrRunTimeout indicates an assistant run did not reach a terminal
	// status within the configured run timeout.
	ErrRunTimeout = errors.New("assistant run timed out")

	// ErrRunFailed indicates an assistant run ended in a non-completed
	// terminal status.
	ErrRunFailed = errors.New("assistant run failed")

	// ErrNoAssistantMessage indicates a completed run produced no
	// assistant message to return.
	ErrNoAssistantMessage = errors.New("run produced no assistant message")

	// ErrNoImage indicates the provider returned no usable image URL.
	ErrNoImage = errors.New("no image returned")
)
