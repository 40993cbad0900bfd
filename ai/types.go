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

import (
	"fmt"
	"slices"
	"time"
)

// Image size, quality and style values accepted by the image service.
// These mirror the provider's enumerations for the dall-e-3 model.
var (
	ImageSizes     = []string{"1024x1024", "1024x1792", "1792x1024"}
	ImageQualities = []string{"standard", "hd"}
	ImageStyles    = []string{"vivid", "natural"}
)

// Defaults applied by ImageRequest.Normalize.
const (
	DefaultImageSize    = "1024x1024"
	DefaultImageQuality = "standard"
	DefaultImageStyle   = "vivid"
)

// DefaultImageModel is applied by Config.Normalize when no model is set.
const DefaultImageModel = "dall-e-3"

// ImageRequest describes one image generation call.
type ImageRequest struct {
	Prompt  string
	Size    string // one of ImageSizes
	Quality string // one of ImageQualities
	Style   string // one of ImageStyles
}

// Normalize fills unset option fields with their defaults.
func (r *ImageRequest) Normalize() {
	if r.Size == "" {
		r.Size = DefaultImageSize
	}
	if r.Quality == "" {
		r.Quality = DefaultImageQuality
	}
	if r.Style == "" {
		r.Style = DefaultImageStyle
	}
}

// Validate checks the request against the provider's enumerations.
// It normalizes the request first.
func (r *ImageRequest) Validate() error {
	r.Normalize()

	if r.Prompt == "" {
		return fmt.Errorf("%w: prompt is required", ErrInvalidImageRequest)
	}
	if !slices.Contains(ImageSizes, r.Size) {
		return fmt.Errorf("%w: size %q", ErrInvalidImageRequest, r.Size)
	}
	if !slices.Contains(ImageQualities, r.Quality) {
		return fmt.Errorf("%w: quality %q", ErrInvalidImageRequest, r.Quality)
	}
	if !slices.Contains(ImageStyles, r.Style) {
		return fmt.Errorf("%w: style %q", ErrInvalidImageRequest, r.Style)
	}
	return nil
}

// Image is the provider's image descriptor with inline data excluded.
type Image struct {
	URL           string
	RevisedPrompt string
	Created       time.Time
}
