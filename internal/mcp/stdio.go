package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/linkscout/linkedin-mcp-server/internal/protocol"
)

// maxLineBytes bounds a single inbound protocol line. Requests are tiny
// (profile payloads only ever travel in responses), so anything near the
// cap is garbage and the loop is allowed to give up on the stream.
const maxLineBytes = 10 * 1024 * 1024

// RunStdio serves MCP over a newline-delimited stream: one JSON-RPC
// message per line in, one compact response line per request out. Lines
// are handled strictly sequentially; the next line is not dispatched
// until the previous response has been written and flushed. Malformed
// input is answered with a parse error and never stops the loop. Returns
// nil when the input closes, the scanner's error when reading fails, and
// ctx.Err() on cancellation.
func RunStdio(ctx context.Context, r io.Reader, w io.Writer, srv *Server, log *logrus.Entry) error {
	out := bufio.NewWriter(w)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			log.Info("shutting down: context cancelled")
			return ctx.Err()
		default:
		}

		select {
		case <-ctx.Done():
			log.Info("shutting down: context cancelled")
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				// The reader goroutine exits without reporting a scan
				// error when the context is cancelled mid-send, so
				// check the context before draining scanErr.
				if ctx.Err() != nil {
					log.Info("shutting down: context cancelled")
					return ctx.Err()
				}
				if err := <-scanErr; err != nil {
					log.WithError(err).Error("reading input failed")
					return fmt.Errorf("read input: %w", err)
				}
				log.Info("input closed, shutting down")
				return nil
			}
			resp, emit := handleLine(ctx, srv, log, line)
			if !emit {
				continue
			}
			if err := writeResponse(out, resp, log); err != nil {
				return err
			}
		}
	}
}

// handleLine turns one raw line into at most one response. Blank lines
// and notifications produce nothing; undecodable lines produce a parse
// error carrying whatever id could be salvaged from the raw text.
func handleLine(ctx context.Context, srv *Server, log *logrus.Entry, line string) (protocol.Response, bool) {
	if strings.TrimSpace(line) == "" {
		return protocol.Response{}, false
	}

	var req protocol.Request
	if err := json.Unmarshal([]byte(line), &req); err != nil {
		log.WithError(err).Warn("undecodable request line")
		return protocol.NewError(recoverID(line), protocol.ParseErrorf("parse error: %v", err)), true
	}

	if req.IsNotification() {
		log.WithField("method", req.Method).Debug("notification received, not answering")
		return protocol.Response{}, false
	}

	log.WithFields(logrus.Fields{"method": req.Method, "id": req.ID}).Debug("dispatching request")
	return srv.Handle(ctx, req), true
}

// writeResponse marshals the response and emits it as a single line
// followed by a flush, so a crash mid-loop can never leave a partial
// message on the stream.
func writeResponse(out *bufio.Writer, resp protocol.Response, log *logrus.Entry) error {
	buf, err := json.Marshal(resp)
	if err != nil {
		// Responses are built from plain structs and decoded JSON, so
		// this only fires if a tool smuggled something unmarshalable
		// into its result.
		log.WithError(err).Error("encoding response failed")
		buf, _ = json.Marshal(protocol.NewError(resp.ID, protocol.Internalf("encode response: %v", err)))
	}
	if _, err := out.Write(buf); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	if err := out.WriteByte('\n'); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("flush response: %w", err)
	}
	return nil
}

// idToken matches the id member of a JSON object that failed full
// decoding, capturing the raw string or number token.
var idToken = regexp.MustCompile(`"id"\s*:\s*("(?:[^"\\]|\\.)*"|-?\d+(?:\.\d+)?(?:[eE][+-]?\d+)?)`)

// recoverID makes a best effort at salvaging the id from an undecodable
// line so the parse-error response can still be correlated by the
// client. Only string and numeric ids are recovered; everything else
// (including ids of unexpected types) comes back nil.
func recoverID(line string) any {
	var probe struct {
		ID any `json:"id"`
	}
	if err := json.Unmarshal([]byte(line), &probe); err == nil {
		switch probe.ID.(type) {
		case string, float64:
			return probe.ID
		}
		return nil
	}

	m := idToken.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	var id any
	if err := json.Unmarshal([]byte(m[1]), &id); err != nil {
		return nil
	}
	switch id.(type) {
	case string, float64:
		return id
	}
	return nil
}
