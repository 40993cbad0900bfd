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
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/hearthside/conduit"
	"github.com/hearthside/conduit/ai"
	"github.com/hearthside/conduit/httpapi"
	"github.com/hearthside/conduit/hub"
)

func main() {
	settings, err := loadSettings()
	if err != nil {
		log.Fatal(err)
	}

	dbFlag := &cli.StringFlag{
		Name:    "db",
		Aliases: []string{"d"},
		Usage:   "Path to BadgerDB database directory",
		Value:   settings.DBPath,
	}

	app := &cli.App{
		Name:  "conduit",
		Usage: "OpenAI assistant and image services behind a service hub",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Serve the hub API over HTTP",
				Action: serveCommand,
				Flags: []cli.Flag{
					dbFlag,
					&cli.StringFlag{
						Name:  "listen",
						Usage: "Listen address",
						Value: settings.Listen,
					},
				},
			},
			{
				Name:  "entry",
				Usage: "Manage config entries",
				Subcommands: []*cli.Command{
					{
						Name:   "add",
						Usage:  "Add a config entry and verify its credentials",
						Action: entryAddCommand(settings),
						Flags: []cli.Flag{
							dbFlag,
							&cli.StringFlag{
								Name:     "title",
								Usage:    "Human-readable entry title",
								Required: true,
							},
							&cli.StringFlag{
								Name:  "api-key",
								Usage: "OpenAI API key (defaults to OPENAI_API_KEY)",
							},
							&cli.StringFlag{
								Name:  "assistant",
								Usage: "Assistant id for text generation (defaults to OPENAI_ASSISTANT_ID)",
							},
						},
					},
					{
						Name:   "list",
						Usage:  "List config entries",
						Action: entryListCommand,
						Flags:  []cli.Flag{dbFlag},
					},
					{
						Name:      "remove",
						Usage:     "Remove a config entry",
						ArgsUsage: "<entry-id>",
						Action:    entryRemoveCommand,
						Flags:     []cli.Flag{dbFlag},
					},
				},
			},
			{
				Name:      "generate-content",
				Usage:     "Run an entry's assistant over a prompt",
				ArgsUsage: "<entry-id> <prompt>",
				Action:    generateContentCommand,
				Flags: []cli.Flag{
					dbFlag,
					&cli.StringSliceFlag{
						Name:  "file",
						Usage: "Attach a local image file (repeatable)",
					},
				},
			},
			{
				Name:      "generate-image",
				Usage:     "Generate an image and print its URL",
				ArgsUsage: "<entry-id> <prompt>",
				Action:    generateImageCommand,
				Flags: []cli.Flag{
					dbFlag,
					&cli.StringFlag{
						Name:  "size",
						Usage: "Image size (1024x1024, 1024x1792, 1792x1024)",
					},
					&cli.StringFlag{
						Name:  "quality",
						Usage: "Image quality (standard, hd)",
					},
					&cli.StringFlag{
						Name:  "style",
						Usage: "Image style (vivid, natural)",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

func openConduit(c *cli.Context) (*conduit.Conduit, error) {
	return conduit.Open(c.Context, c.String("db"))
}

func serveCommand(c *cli.Context) error {
	cond, err := openConduit(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer cond.Close()

	handler := httpapi.NewHandler(cond.Hub(), cond.Entries(), cond.Integration())
	return httpapi.RegisterAndStart(slog.Default(), c.String("listen"), handler)
}

func entryAddCommand(settings *Settings) cli.ActionFunc {
	return func(c *cli.Context) error {
		apiKey := c.String("api-key")
		if apiKey == "" {
			apiKey = settings.APIKey
		}
		if apiKey == "" {
			return fmt.Errorf("an API key is required (--api-key or OPENAI_API_KEY)")
		}
		assistantID := c.String("assistant")
		if assistantID == "" {
			assistantID = settings.AssistantID
		}

		cond, err := openConduit(c)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer cond.Close()

		entry, err := cond.AddEntry(c.Context, c.String("title"), apiKey, assistantID)
		switch {
		case err == nil:
			fmt.Printf("entry %s loaded\n", entry.Id)
		case errors.Is(err, hub.ErrEntryNotReady):
			fmt.Printf("entry %s created; verification failed, will retry on next start: %v\n", entry.Id, err)
		case errors.Is(err, hub.ErrEntryFailed):
			fmt.Printf("entry %s created but its credentials were rejected: %v\n", entry.Id, err)
		default:
			return err
		}
		return nil
	}
}

func entryListCommand(c *cli.Context) error {
	cond, err := openConduit(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer cond.Close()

	entries, err := cond.Entries().ListEntries(c.Context)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("no entries")
		return nil
	}
	for _, entry := range entries {
		state := "not_loaded"
		if s, ok := cond.Hub().EntryStateOf(entry.Id); ok {
			state = s.String()
		}
		fmt.Printf("%s  %-12s  %s\n", entry.Id, state, entry.Title)
	}
	return nil
}

func entryRemoveCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("usage: conduit entry remove <entry-id>")
	}

	cond, err := openConduit(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer cond.Close()

	return cond.RemoveEntry(c.Context, c.Args().First())
}

func generateContentCommand(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("usage: conduit generate-content <entry-id> <prompt>")
	}

	cond, err := openConduit(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer cond.Close()

	text, err := cond.GenerateContent(c.Context, c.Args().Get(0), c.Args().Get(1), c.StringSlice("file"))
	if err != nil {
		return err
	}
	fmt.Println(text)
	return nil
}

func generateImageCommand(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("usage: conduit generate-image <entry-id> <prompt>")
	}

	cond, err := openConduit(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer cond.Close()

	resp, err := cond.GenerateImage(c.Context, c.Args().Get(0), c.Args().Get(1), &ai.ImageRequest{
		Size:    c.String("size"),
		Quality: c.String("quality"),
		Style:   c.String("style"),
	})
	if err != nil {
		return err
	}
	fmt.Println(resp["url"])
	if revised, ok := resp["revised_prompt"].(string); ok && revised != "" {
		fmt.Printf("revised prompt: %s\n", revised)
	}
	return nil
}
