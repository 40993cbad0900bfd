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


package openai

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hearthside/conduit/ai"
)

// ImageGenerator implements ai.ImageGenerator over the images endpoint.
type ImageGenerator struct {
	api    imageAPI
	logger *slog.Logger
}

// newImageGenerator is an internal constructor that returns the
// concrete type. Used by Provider to manage the instance.
func newImageGenerator(api imageAPI) *ImageGenerator {
	return &ImageGenerator{
		api:    api,
		logger: slog.Default().With("component", "openai-images"),
	}
}

// Generate performs one synchronous image generation call. The request
// is validated (and defaulted) before any remote call is made.
func (g *ImageGenerator) Generate(ctx context.Context, req *ai.ImageRequest) (*ai.Image, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: nil request", ai.ErrInvalidImageRequest)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	g.logger.Debug("generating image", "size", req.Size, "quality", req.Quality, "style", req.Style)

	img, err := g.api.Generate(ctx, req)
	if err != nil {
		g.logger.Error("image generation failed", "err", err)
		return nil, err
	}
	if img == nil || img.URL == "" {
		return nil, ai.ErrNoImage
	}
	return img, nil
}
