package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/linkscout/linkedin-mcp-server/internal/mcpclient"
)

// A thin CLI against the HTTP transport: list the advertised tools or
// fetch one profile and print the YAML.
func main() {
	_ = godotenv.Load()

	server := flag.String("server", envOr("MCP_SERVER_URL", "http://localhost:3333/"), "MCP server base URL")
	list := flag.Bool("list", false, "List advertised tools and exit")
	profileURL := flag.String("url", "", "LinkedIn profile URL to fetch")
	include := flag.String("include", "", "Comma-separated optional sections to keep; 'none' drops all of them")
	timeout := flag.Duration("timeout", 5*time.Minute, "Overall request timeout")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client := mcpclient.NewClient(*server, *timeout)

	if *list {
		tools, err := client.ListTools(ctx)
		if err != nil {
			log.Fatalf("list tools: %v", err)
		}
		for _, tool := range tools {
			fmt.Printf("%s\t%s\n", tool.Name, firstLine(tool.Description))
		}
		return
	}

	if strings.TrimSpace(*profileURL) == "" {
		fmt.Fprintln(os.Stderr, "either -list or -url is required")
		flag.Usage()
		os.Exit(2)
	}

	args := map[string]any{"profile_url": *profileURL}
	if *include != "" {
		names := []string{}
		if *include != "none" {
			for _, name := range strings.Split(*include, ",") {
				if trimmed := strings.TrimSpace(name); trimmed != "" {
					names = append(names, trimmed)
				}
			}
		}
		args["include"] = names
	}

	result, err := client.CallTool(ctx, "fetch-profile", args)
	if err != nil {
		log.Fatalf("call fetch-profile: %v", err)
	}
	for _, part := range result.Content {
		fmt.Println(part.Text)
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
