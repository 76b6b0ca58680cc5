package mcp

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/linkscout/linkedin-mcp-server/internal/protocol"
	"github.com/linkscout/linkedin-mcp-server/internal/version"
)

// healthTraceLines is how many recent dispatch traces /health reports.
const healthTraceLines = 10

// RunHTTP serves MCP JSON-RPC over HTTP: one request per POST to the
// root path, with GET /health reporting liveness and recent dispatches.
// Useful for local poking with curl; stdio remains the primary transport.
func RunHTTP(server *Server, addr string, log *logrus.Entry) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewHTTPHandler(server, log),
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Infof("HTTP MCP server listening on %s", addr)
	return srv.ListenAndServe()
}

// NewHTTPHandler builds the HTTP handler serving the MCP endpoints.
func NewHTTPHandler(server *Server, log *logrus.Entry) http.Handler {
	h := &httpHandler{server: server, log: log, trace: newTraceRing(64)}
	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.handleHealth)
	mux.HandleFunc("/", h.handleRPC)
	return mux
}

type httpHandler struct {
	server *Server
	log    *logrus.Entry
	trace  *traceRing
}

func (h *httpHandler) handleRPC(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxLineBytes))
	if err != nil {
		writeJSON(w, protocol.NewError(nil, protocol.ParseErrorf("read request: %v", err)), http.StatusBadRequest)
		return
	}

	var req protocol.Request
	if err := json.Unmarshal(body, &req); err != nil {
		h.log.WithError(err).Warn("undecodable request body")
		h.trace.Add("parse error")
		writeJSON(w, protocol.NewError(recoverID(string(body)), protocol.ParseErrorf("parse error: %v", err)), http.StatusBadRequest)
		return
	}

	if req.IsNotification() {
		h.log.WithField("method", req.Method).Debug("notification received, not answering")
		w.WriteHeader(http.StatusNoContent)
		return
	}

	resp := h.server.Handle(r.Context(), req)
	h.trace.Add(traceLine(req, resp))
	writeJSON(w, resp, http.StatusOK)
}

func (h *httpHandler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	payload := map[string]any{
		"status":  "ok",
		"version": version.Get(),
		"recent":  h.trace.Tail(healthTraceLines),
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(payload)
}

func traceLine(req protocol.Request, resp protocol.Response) string {
	if resp.Error != nil {
		return fmt.Sprintf("%s id=%v error=%d %s", req.Method, req.ID, resp.Error.Code, resp.Error.Message)
	}
	return fmt.Sprintf("%s id=%v ok", req.Method, req.ID)
}

func writeJSON(w http.ResponseWriter, resp protocol.Response, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(resp)
}
