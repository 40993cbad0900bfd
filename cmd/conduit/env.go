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


package main

import (
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Settings are environment defaults for flags that are inconvenient to
// pass on every invocation. Flags take precedence when set.
type Settings struct {
	// APIKey seeds the "entry add" command when --api-key is omitted.
	APIKey string `env:"OPENAI_API_KEY"`

	// AssistantID seeds the "entry add" command when --assistant is omitted.
	AssistantID string `env:"OPENAI_ASSISTANT_ID"`

	// DBPath is the default database directory.
	DBPath string `env:"CONDUIT_DB" envDefault:"./conduit-data"`

	// Listen is the default serve address.
	Listen string `env:"CONDUIT_LISTEN" envDefault:":8099"`
}

// loadSettings reads .env (if present) and the process environment.
func loadSettings() (*Settings, error) {
	_ = godotenv.Load()

	s := &Settings{}
	if err := env.Parse(s); err != nil {
		return nil, err
	}
	return s, nil
}
