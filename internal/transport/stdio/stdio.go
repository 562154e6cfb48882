// Package stdio implements the line-delimited JSON-RPC transport: one
// request per line on standard input, one newline-terminated response per
// line on standard output. Reaching EOF on the input ends Run cleanly.
package stdio

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/rescuegate/rescuegate/internal/protocol"
)

// scannerInitialBufSize and scannerMaxBufSize size the line scanner:
// generous enough for a large tools/call request, bounded so a malicious
// or buggy peer can't exhaust memory one line at a time.
const (
	scannerInitialBufSize = 256 * 1024
	scannerMaxBufSize     = 1024 * 1024
)

// Dispatcher is the narrow surface this transport needs from the engine.
type Dispatcher interface {
	Dispatch(ctx context.Context, sess *protocol.Session, req *protocol.Request) (*protocol.Response, bool)
}

// Transport reads JSON-RPC requests from r and writes responses to w.
// Requests may be dispatched concurrently, but responses are always
// flushed to w in the order their requests arrived, satisfying the
// ordering guarantee for a single stdio session.
type Transport struct {
	dispatcher Dispatcher
	session    *protocol.Session
	logger     *slog.Logger
}

// New builds a stdio transport bound to a single implicit session, per the
// stdio lifecycle: one session for the lifetime of the process.
func New(dispatcher Dispatcher, logger *slog.Logger) *Transport {
	return &Transport{
		dispatcher: dispatcher,
		session:    protocol.NewSession(),
		logger:     logger,
	}
}

// Run blocks until r reaches EOF or ctx is cancelled, processing one
// JSON-RPC frame per line.
func (t *Transport) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, scannerInitialBufSize), scannerMaxBufSize)

	// futures carries one channel per line, in arrival order; the writer
	// goroutine below drains it strictly in order, so a slow request never
	// reorders output even though its handling runs concurrently with
	// later, faster requests.
	futures := make(chan chan []byte, 64)
	writerDone := make(chan struct{})

	go func() {
		defer close(writerDone)
		for fut := range futures {
			resp := <-fut
			if resp == nil {
				continue
			}
			if _, err := w.Write(resp); err != nil {
				t.logger.Error("stdio write failed", "error", err)
				return
			}
		}
	}()

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		lineCopy := append([]byte(nil), line...)

		fut := make(chan []byte, 1)
		select {
		case futures <- fut:
		case <-ctx.Done():
			close(futures)
			<-writerDone
			return ctx.Err()
		}

		go func() {
			fut <- t.handleLine(ctx, lineCopy)
		}()
	}

	close(futures)
	<-writerDone

	if err := scanner.Err(); err != nil {
		return err
	}
	return nil
}

// handleLine parses and dispatches one line, returning the newline
// terminated wire bytes to write, or nil for a notification.
func (t *Transport) handleLine(ctx context.Context, line []byte) []byte {
	req, parseErr := protocol.ParseRequest(line)
	if parseErr != nil {
		resp := protocol.Fault(nil, parseErr)
		return encode(resp)
	}

	resp, shouldRespond := t.dispatcher.Dispatch(ctx, t.session, req)
	if !shouldRespond {
		return nil
	}
	return encode(resp)
}

func encode(resp *protocol.Response) []byte {
	b, err := json.Marshal(resp)
	if err != nil {
		// Marshaling our own response type should never fail; fall back to
		// a minimal internal error frame rather than dropping the reply.
		b = []byte(`{"jsonrpc":"2.0","id":null,"error":{"code":-32603,"message":"internal error"}}`)
	}
	return append(b, '\n')
}
