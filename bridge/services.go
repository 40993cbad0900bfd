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


package bridge

import (
	"context"
	"errors"

	"github.com/hearthside/conduit/ai"
	"github.com/hearthside/conduit/core"
	"github.com/hearthside/conduit/hub"
)

type generateContentRequest struct {
	ConfigEntry string   `json:"config_entry" validate:"required"`
	Prompt      string   `json:"prompt" validate:"required"`
	Filenames   []string `json:"filenames" validate:"omitempty,dive,required"`
}

type generateImageRequest struct {
	ConfigEntry string `json:"config_entry" validate:"required"`
	Prompt      string `json:"prompt" validate:"required"`
	Size        string `json:"size" validate:"omitempty,oneof=1024x1024 1024x1792 1792x1024"`
	Quality     string `json:"quality" validate:"omitempty,oneof=standard hd"`
	Style       string `json:"style" validate:"omitempty,oneof=vivid natural"`
}

func (i *Integration) registerServices() error {
	if err := i.hub.RegisterService(Domain, ServiceGenerateContent, i.handleGenerateContent); err != nil {
		return err
	}
	return i.hub.RegisterService(Domain, ServiceGenerateImage, i.handleGenerateImage)
}

// handleGenerateContent runs the entry's assistant over a prompt plus
// optional local image files and returns the reply text.
func (i *Integration) handleGenerateContent(ctx context.Context, call *hub.ServiceCall) (hub.ServiceResponse, error) {
	var req generateContentRequest
	if err := hub.BindCallData(call.Data, &req); err != nil {
		return nil, err
	}

	provider, err := i.hub.ResolveProvider(req.ConfigEntry)
	if err != nil {
		return nil, err
	}

	attachments := make([]string, 0, len(req.Filenames))
	for _, name := range req.Filenames {
		dataURL, err := EncodeFileDataURL(name)
		if err != nil {
			return nil, &hub.ValidationError{Message: "cannot read file " + name, Cause: err}
		}
		attachments = append(attachments, dataURL)
	}

	turns := []core.Turn{{
		Role:        core.RoleUser,
		Content:     req.Prompt,
		Attachments: attachments,
	}}

	text, err := provider.Agent().Generate(ctx, turns)
	if err != nil {
		return nil, i.mapAgentError(call, err)
	}
	return hub.ServiceResponse{"text": text}, nil
}

// handleGenerateImage generates one image and returns its descriptor.
// Inline image data never appears in the response.
func (i *Integration) handleGenerateImage(ctx context.Context, call *hub.ServiceCall) (hub.ServiceResponse, error) {
	var req generateImageRequest
	if err := hub.BindCallData(call.Data, &req); err != nil {
		return nil, err
	}

	provider, err := i.hub.ResolveProvider(req.ConfigEntry)
	if err != nil {
		return nil, err
	}

	img, err := provider.Images().Generate(ctx, &ai.ImageRequest{
		Prompt:  req.Prompt,
		Size:    req.Size,
		Quality: req.Quality,
		Style:   req.Style,
	})
	if err != nil {
		if errors.Is(err, ai.ErrInvalidImageRequest) {
			return nil, &hub.ValidationError{Message: "invalid image request", Cause: err}
		}
		return nil, &hub.ServiceError{Domain: Domain, Service: ServiceGenerateImage, Cause: err}
	}

	return hub.ServiceResponse{
		"url":            img.URL,
		"revised_prompt": img.RevisedPrompt,
		"created":        img.Created.Unix(),
	}, nil
}

// mapAgentError splits assistant failures into caller mistakes and
// upstream failures. A missing assistant id is a configuration problem
// the caller can fix on the entry.
func (i *Integration) mapAgentError(call *hub.ServiceCall, err error) error {
	switch {
	case errors.Is(err, ai.ErrMissingAssistantID):
		return &hub.ValidationError{Message: "entry has no assistant configured", Cause: err}
	case errors.Is(err, core.ErrInvalidTurn):
		return &hub.ValidationError{Message: "invalid conversation", Cause: err}
	default:
		return &hub.ServiceError{Domain: call.Domain, Service: call.Service, Cause: err}
	}
}
