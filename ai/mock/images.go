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


package mock

import (
	"context"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/hearthside/conduit/ai"
)

// MockImageGenerator is a test double for ai.ImageGenerator.
// It allows custom behavior injection via function fields.
type MockImageGenerator struct {
	// GenerateFunc is called by Generate if set.
	// If nil, uses default deterministic behavior.
	GenerateFunc func(ctx context.Context, req *ai.ImageRequest) (*ai.Image, error)

	// LastRequest records the request of the most recent call.
	LastRequest *ai.ImageRequest

	callCount int
}

// NewMockImageGenerator creates a mock image generator with default
// deterministic behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockImageGenerator() *MockImageGenerator {
	return &MockImageGenerator{}
}

// Generate returns a deterministic URL derived from the prompt hash
// unless GenerateFunc is set. The request is validated like the real
// implementation so tests exercise the same input contract.
func (m *MockImageGenerator) Generate(ctx context.Context, req *ai.ImageRequest) (*ai.Image, error) {
	m.callCount++
	m.LastRequest = req

	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, req)
	}

	if req == nil {
		return nil, fmt.Errorf("%w: nil request", ai.ErrInvalidImageRequest)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	h := fnv.New32a()
	h.Write([]byte(req.Prompt))
	return &ai.Image{
		URL:           fmt.Sprintf("https://images.invalid/%08x.png", h.Sum32()),
		RevisedPrompt: req.Prompt,
		Created:       time.Unix(1700000000, 0).UTC(),
	}, nil
}

// CallCount returns the number of times Generate was called.
func (m *MockImageGenerator) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockImageGenerator) Reset() {
	m.callCount = 0
	m.LastRequest = nil
	m.GenerateFunc = nil
}
