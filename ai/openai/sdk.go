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
	"errors"
	"fmt"
	"net/http"
	"time"

	oai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/hearthside/conduit/ai"
)

// runStatus mirrors the assistant run lifecycle reported by the API.
type runStatus string

const (
	runStatusQueued     runStatus = "queued"
	runStatusInProgress runStatus = "in_progress"
	runStatusCompleted  runStatus = "completed"
	runStatusFailed     runStatus = "failed"
	runStatusCancelled  runStatus = "cancelled"
	runStatusExpired    runStatus = "expired"
)

// terminal reports whether polling should stop. Anything other than
// queued or in_progress ends the run: the API also reports statuses
// like requires_action and incomplete, which this agent cannot
// advance and treats as failure.
func (s runStatus) terminal() bool {
	switch s {
	case runStatusQueued, runStatusInProgress:
		return false
	}
	return true
}

// threadMessage is the slice of a thread message the agent cares about.
// Segments holds the text-typed content parts in their original order;
// non-text parts (images, refusals) are dropped at the SDK boundary.
type threadMessage struct {
	Role     string
	Segments []string
}

// threadAPI is the assistant surface of the vendor SDK. Messages
// returned by ListMessages are ordered newest first, matching the API.
type threadAPI interface {
	CreateThread(ctx context.Context) (string, error)
	AddUserMessage(ctx context.Context, threadID, text string, imageURLs []string) error
	StartRun(ctx context.Context, threadID, assistantID string) (string, error)
	GetRunStatus(ctx context.Context, threadID, runID string) (runStatus, error)
	ListMessages(ctx context.Context, threadID string) ([]threadMessage, error)
}

// imageAPI is the image generation surface of the vendor SDK.
type imageAPI interface {
	Generate(ctx context.Context, req *ai.ImageRequest) (*ai.Image, error)
}

// sdkClient adapts the official SDK client to the narrow interfaces
// above. It is the only type in the package that touches vendor types.
type sdkClient struct {
	client     oai.Client
	imageModel string
}

func newSDKClient(cfg *ai.Config) *sdkClient {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &sdkClient{
		client:     oai.NewClient(opts...),
		imageModel: cfg.Model,
	}
}

func (s *sdkClient) CreateThread(ctx context.Context) (string, error) {
	th, err := s.client.Beta.Threads.New(ctx, oai.BetaThreadNewParams{})
	if err != nil {
		return "", mapAuthError(err)
	}
	return th.ID, nil
}

func (s *sdkClient) AddUserMessage(ctx context.Context, threadID, text string, imageURLs []string) error {
	parts := make([]oai.MessageContentPartParamUnion, 0, 1+len(imageURLs))
	if text != "" {
		parts = append(parts, oai.MessageContentPartParamUnion{
			OfText: &oai.TextContentBlockParam{Text: text},
		})
	}
	for _, url := range imageURLs {
		parts = append(parts, oai.MessageContentPartParamUnion{
			OfImageURL: &oai.ImageURLContentBlockParam{
				ImageURL: oai.ImageURLParam{URL: url},
			},
		})
	}

	_, err := s.client.Beta.Threads.Messages.New(ctx, threadID, oai.BetaThreadMessageNewParams{
		Role: oai.BetaThreadMessageNewParamsRoleUser,
		Content: oai.BetaThreadMessageNewParamsContentUnion{
			OfArrayOfContentParts: parts,
		},
	})
	return mapAuthError(err)
}

func (s *sdkClient) StartRun(ctx context.Context, threadID, assistantID string) (string, error) {
	run, err := s.client.Beta.Threads.Runs.New(ctx, threadID, oai.BetaThreadRunNewParams{
		AssistantID: assistantID,
	})
	if err != nil {
		return "", mapAuthError(err)
	}
	return run.ID, nil
}

func (s *sdkClient) GetRunStatus(ctx context.Context, threadID, runID string) (runStatus, error) {
	run, err := s.client.Beta.Threads.Runs.Get(ctx, threadID, runID)
	if err != nil {
		return "", mapAuthError(err)
	}
	return runStatus(run.Status), nil
}

func (s *sdkClient) ListMessages(ctx context.Context, threadID string) ([]threadMessage, error) {
	page, err := s.client.Beta.Threads.Messages.List(ctx, threadID, oai.BetaThreadMessageListParams{
		Order: oai.BetaThreadMessageListParamsOrderDesc,
	})
	if err != nil {
		return nil, mapAuthError(err)
	}
	msgs := make([]threadMessage, 0, len(page.Data))
	for _, m := range page.Data {
		var segs []string
		for _, c := range m.Content {
			if c.Type == "text" {
				segs = append(segs, c.Text.Value)
			}
		}
		msgs = append(msgs, threadMessage{
			Role:     string(m.Role),
			Segments: segs,
		})
	}
	return msgs, nil
}

func (s *sdkClient) Generate(ctx context.Context, req *ai.ImageRequest) (*ai.Image, error) {
	resp, err := s.client.Images.Generate(ctx, oai.ImageGenerateParams{
		Model:          s.imageModel,
		Prompt:         req.Prompt,
		Size:           oai.ImageGenerateParamsSize(req.Size),
		Quality:        oai.ImageGenerateParamsQuality(req.Quality),
		Style:          oai.ImageGenerateParamsStyle(req.Style),
		ResponseFormat: oai.ImageGenerateParamsResponseFormatURL,
		N:              oai.Int(1),
	})
	if err != nil {
		return nil, mapAuthError(err)
	}
	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return nil, ai.ErrNoImage
	}
	return &ai.Image{
		URL:           resp.Data[0].URL,
		RevisedPrompt: resp.Data[0].RevisedPrompt,
		Created:       time.Unix(resp.Created, 0).UTC(),
	}, nil
}

// verify probes the credentials with a cheap authenticated call.
func (s *sdkClient) verify(ctx context.Context) error {
	_, err := s.client.Models.List(ctx, option.WithRequestTimeout(10*time.Second))
	return mapAuthError(err)
}

// mapAuthError translates credential rejections into ai.ErrAuthentication
// while preserving the vendor error for inspection. Other errors pass
// through unchanged.
func mapAuthError(err error) error {
	if err == nil {
		return nil
	}
	var apierr *oai.Error
	if errors.As(err, &apierr) {
		switch apierr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %w", ai.ErrAuthentication, err)
		}
	}
	return err
}
