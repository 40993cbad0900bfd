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

	"github.com/hearthside/conduit/core"
)

// MockAgent is a test double for ai.Agent.
// It allows custom behavior injection via function fields.
type MockAgent struct {
	// GenerateFunc is called by Generate if set.
	// If nil, uses default echo behavior.
	GenerateFunc func(ctx context.Context, turns []core.Turn) (string, error)

	// LastTurns records the turns of the most recent call.
	LastTurns []core.Turn

	callCount int
}

// NewMockAgent creates a mock agent with default echo behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockAgent() *MockAgent {
	return &MockAgent{}
}

// Generate echoes the content of the last turn unless GenerateFunc is set.
func (m *MockAgent) Generate(ctx context.Context, turns []core.Turn) (string, error) {
	m.callCount++
	m.LastTurns = turns

	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, turns)
	}

	if len(turns) == 0 {
		return "", fmt.Errorf("mock agent: no turns")
	}
	return "echo: " + turns[len(turns)-1].Content, nil
}

// CallCount returns the number of times Generate was called.
func (m *MockAgent) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockAgent) Reset() {
	m.callCount = 0
	m.LastTurns = nil
	m.GenerateFunc = nil
}
