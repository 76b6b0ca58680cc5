package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/linkscout/linkedin-mcp-server/internal/apify"
	"github.com/linkscout/linkedin-mcp-server/internal/linkedin"
	"github.com/linkscout/linkedin-mcp-server/internal/protocol"
)

// ProfileFetcher runs the scraping backend for one profile URL and
// returns the raw dataset JSON.
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, profileURL string) ([]byte, error)
}

// fetchProfileTool fetches a LinkedIn profile and renders it as YAML.
type fetchProfileTool struct {
	fetcher ProfileFetcher
}

// FetchProfile constructs the tool around a fetcher.
func FetchProfile(fetcher ProfileFetcher) *fetchProfileTool {
	return &fetchProfileTool{fetcher: fetcher}
}

func (t *fetchProfileTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name: "fetch-profile",
		Description: `Fetch a public LinkedIn profile and return its data as YAML.

Use this tool when the user asks for:
- A person's LinkedIn profile, work history, or current role
- Someone's skills, education, certifications, publications, or projects
- A summary of a LinkedIn member given their profile URL

Accepts any linkedin.com/in/<handle> URL, with or without scheme, www,
trailing slash, or query string. Scraping is slow; expect the call to
take up to a few minutes.

By default the full profile is returned. Pass "include" to keep only
the listed optional sections; core identity fields are always kept.`,
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"profile_url": {
					Type:        "string",
					Description: "LinkedIn profile URL, e.g. https://www.linkedin.com/in/janedoe",
				},
				"include": {
					Type:        "array",
					Description: "Optional profile sections to keep. An empty array drops all of them; omit the argument to keep everything.",
					Items:       &protocol.JSONSchema{Type: "string", Enum: linkedin.OptionalSections},
				},
			},
			Required: []string{"profile_url"},
		},
	}
}

func (t *fetchProfileTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var args map[string]any
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return protocol.CallResult{}, protocol.Internalf("invalid arguments").WithData(err.Error())
		}
	}

	profileURL, _ := stringArg(args, "profile_url")
	if strings.TrimSpace(profileURL) == "" {
		return protocol.CallResult{}, protocol.Internalf("profile_url is required")
	}

	// A nil set keeps everything; an include argument that is present
	// and an array filters, even when empty.
	var include linkedin.IncludeSet
	if names, ok := stringListArg(args, "include"); ok {
		include = linkedin.NewIncludeSet(names)
	}

	data, err := t.fetcher.FetchProfile(ctx, profileURL)
	if err != nil {
		rpcErr := protocol.Internalf("fetch profile: %v", err)
		var statusErr *apify.StatusError
		if errors.As(err, &statusErr) {
			rpcErr = rpcErr.WithData(map[string]any{
				"status": statusErr.Status,
				"body":   statusErr.Body,
			})
		}
		return protocol.CallResult{}, rpcErr
	}

	tree, err := linkedin.DecodeTree(data)
	if err != nil {
		return protocol.CallResult{}, protocol.Internalf("decode profile: %v", err)
	}

	text, err := linkedin.RenderYAML(linkedin.FilterTree(tree, include))
	if err != nil {
		return protocol.CallResult{}, protocol.Internalf("render profile: %v", err)
	}

	return protocol.CallResult{Content: []protocol.ContentPart{{Type: "text", Text: text}}}, nil
}

// stringArg reads a string argument, coercing scalar values the way a
// loosely typed caller would expect. Missing keys and non-scalar values
// report false.
func stringArg(args map[string]any, key string) (string, bool) {
	v, ok := args[key]
	if !ok {
		return "", false
	}
	switch s := v.(type) {
	case string:
		return s, true
	case float64, bool:
		return fmt.Sprint(s), true
	}
	return "", false
}

// stringListArg reads an array argument, keeping only its string
// elements. The second return reports whether the argument was present
// as an array at all, so callers can tell "absent" from "empty".
func stringListArg(args map[string]any, key string) ([]string, bool) {
	v, ok := args[key]
	if !ok {
		return nil, false
	}
	list, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out, true
}
