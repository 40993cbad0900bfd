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
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
)

// ServiceCall is one invocation of a registered service. Data carries
// the caller's loosely typed payload; handlers bind it to a typed
// request struct with BindCallData.
type ServiceCall struct {
	Domain  string
	Service string
	Data    map[string]any
}

// Name returns the qualified "domain.service" name of the call.
func (c *ServiceCall) Name() string {
	return c.Domain + "." + c.Service
}

// ServiceResponse is the loosely typed result of a service call.
type ServiceResponse map[string]any

// ServiceHandler executes one service call.
type ServiceHandler func(ctx context.Context, call *ServiceCall) (ServiceResponse, error)

var callValidator = validator.New()

// BindCallData decodes a call's Data payload into target and validates
// it against the struct's validate tags. Unknown payload keys are
// rejected so typos fail loudly. All failures are *ValidationError.
func BindCallData(data map[string]any, target any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return &ValidationError{Message: "invalid service data", Cause: err}
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		return &ValidationError{Message: "invalid service data", Cause: err}
	}

	if err := callValidator.Struct(target); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return NewValidationError("invalid field %q: failed %q constraint", fe.Field(), fe.Tag())
		}
		return &ValidationError{Message: "invalid service data", Cause: err}
	}
	return nil
}
