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


// Package openai implements the ai package interfaces against the
// OpenAI API using the official Go SDK.
//
// The Agent drives the Assistants (threads) API: it creates a thread,
// posts the conversation as user messages, starts a run and polls the
// run status until it reaches a terminal state. Polling is always
// bounded by the configured run timeout and the caller's context, so a
// run that never settles cannot block a caller forever.
//
// The ImageGenerator wraps the synchronous images endpoint and returns
// URL descriptors only; inline image payloads are never requested.
//
// Run and image logic is written against the narrow interfaces in
// sdk.go rather than the SDK client directly, which keeps the vendor
// surface in one file and lets tests substitute fakes.
package openai
