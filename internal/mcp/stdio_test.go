package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func discardLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

// runStdio feeds the input through the loop and returns the decoded
// output lines. The loop must exit cleanly on EOF.
func runStdio(t *testing.T, srv *Server, input string) []map[string]any {
	t.Helper()

	var out bytes.Buffer
	if err := RunStdio(context.Background(), strings.NewReader(input), &out, srv, discardLogger()); err != nil {
		t.Fatalf("expected clean shutdown, got %v", err)
	}

	raw := out.String()
	if raw == "" {
		return nil
	}
	if !strings.HasSuffix(raw, "\n") {
		t.Fatalf("expected newline-terminated output, got %q", raw)
	}

	var responses []map[string]any
	for _, line := range strings.Split(strings.TrimSuffix(raw, "\n"), "\n") {
		var resp map[string]any
		if err := json.Unmarshal([]byte(line), &resp); err != nil {
			t.Fatalf("output line is not valid JSON: %q: %v", line, err)
		}
		responses = append(responses, resp)
	}
	return responses
}

func errorCode(t *testing.T, resp map[string]any) float64 {
	t.Helper()

	errObj, ok := resp["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response: %v", resp)
	}
	code, ok := errObj["code"].(float64)
	if !ok {
		t.Fatalf("expected numeric error code in response: %v", resp)
	}
	return code
}

func TestRunStdioServesRequestsInOrder(t *testing.T) {
	srv := newTestServer(&stubTool{name: "fetch-profile", result: textResult("ok")})

	input := `{"jsonrpc":"2.0","id":1,"method":"ping"}` + "\n" +
		`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"fetch-profile","arguments":{}}}` + "\n"
	responses := runStdio(t, srv, input)

	if len(responses) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(responses))
	}
	if responses[0]["id"] != float64(1) || responses[1]["id"] != float64(2) {
		t.Fatalf("expected responses in request order, got ids %v, %v", responses[0]["id"], responses[1]["id"])
	}
	for i, resp := range responses {
		if _, ok := resp["error"]; ok {
			t.Fatalf("expected success in response %d, got %v", i, resp)
		}
		if resp["jsonrpc"] != "2.0" {
			t.Fatalf("expected jsonrpc 2.0 marker in response %d, got %v", i, resp)
		}
	}
}

func TestRunStdioSkipsNotifications(t *testing.T) {
	srv := newTestServer()

	input := `{"jsonrpc":"2.0","method":"notifications/initialized"}` + "\n" +
		`{"jsonrpc":"2.0","id":null,"method":"ping"}` + "\n" +
		`{"jsonrpc":"2.0","id":1,"method":"ping"}` + "\n"
	responses := runStdio(t, srv, input)

	if len(responses) != 1 {
		t.Fatalf("expected notifications to stay unanswered, got %d responses", len(responses))
	}
	if responses[0]["id"] != float64(1) {
		t.Fatalf("expected the lone response to answer id 1, got %v", responses[0]["id"])
	}
}

func TestRunStdioAnswersParseErrorAndKeepsGoing(t *testing.T) {
	srv := newTestServer()

	input := `{"id":7,"method":"ping"` + "\n" +
		`{"jsonrpc":"2.0","id":8,"method":"ping"}` + "\n"
	responses := runStdio(t, srv, input)

	if len(responses) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(responses))
	}
	if code := errorCode(t, responses[0]); code != -32700 {
		t.Fatalf("expected parse error code -32700, got %v", code)
	}
	if responses[0]["id"] != float64(7) {
		t.Fatalf("expected recovered id 7, got %v", responses[0]["id"])
	}
	if _, ok := responses[1]["error"]; ok {
		t.Fatalf("expected the loop to keep serving after a parse error, got %v", responses[1])
	}
}

func TestRunStdioParseErrorWithoutRecoverableID(t *testing.T) {
	srv := newTestServer()

	responses := runStdio(t, srv, "this is not json\n")

	if len(responses) != 1 {
		t.Fatalf("expected 1 response, got %d", len(responses))
	}
	if code := errorCode(t, responses[0]); code != -32700 {
		t.Fatalf("expected parse error code -32700, got %v", code)
	}
	id, present := responses[0]["id"]
	if !present {
		t.Fatalf("expected an explicit null id, got %v", responses[0])
	}
	if id != nil {
		t.Fatalf("expected null id, got %v", id)
	}
}

func TestRunStdioSkipsBlankLines(t *testing.T) {
	srv := newTestServer()

	responses := runStdio(t, srv, "\n   \n\t\n"+`{"jsonrpc":"2.0","id":1,"method":"ping"}`+"\n")

	if len(responses) != 1 {
		t.Fatalf("expected blank lines to be ignored, got %d responses", len(responses))
	}
}

func TestRunStdioReturnsNilOnEOF(t *testing.T) {
	srv := newTestServer()

	if err := RunStdio(context.Background(), strings.NewReader(""), &bytes.Buffer{}, srv, discardLogger()); err != nil {
		t.Fatalf("expected nil on closed input, got %v", err)
	}
}

func TestRunStdioReturnsOnCancelledContext(t *testing.T) {
	srv := newTestServer()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RunStdio(ctx, strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"ping"}`+"\n"), &bytes.Buffer{}, srv, discardLogger())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRecoverID(t *testing.T) {
	cases := []struct {
		name string
		line string
		want any
	}{
		{"truncated numeric id", `{"id":7,"method":"ping"`, float64(7)},
		{"truncated string id", `{"id":"req-1","method":`, "req-1"},
		{"negative scientific id", `{"id":-2.5e3,"method":`, float64(-2500)},
		{"escaped quote in id", `{"id":"a\"b","method":`, `a"b`},
		{"valid json wrong shape", `{"id":5,"method":123}`, float64(5)},
		{"no id member", `{"method":"ping"`, nil},
		{"plain garbage", `this is not json`, nil},
		{"object id rejected", `{"id":{"x":1},"method":"ping"}`, nil},
		{"array id rejected", `{"id":[1],"method":`, nil},
		{"boolean id rejected", `{"id":true,"method":`, nil},
		{"null id stays null", `{"id":null,"method":`, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := recoverID(tc.line); got != tc.want {
				t.Fatalf("recoverID(%q) = %v, want %v", tc.line, got, tc.want)
			}
		})
	}
}
