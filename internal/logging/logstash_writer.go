package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// LogstashWriter ships log lines to a Logstash json_lines TCP input. Plain text
// lines are wrapped in an event; lines that already hold a JSON object (the
// request log) are forwarded with the service field added. Writes never fail
// or block the caller for longer than the dial/write timeouts: while Logstash is
// unreachable they are counted and dropped until the retry window passes.
type LogstashWriter struct {
	addr          string
	service       string
	dialTimeout   time.Duration
	writeTimeout  time.Duration
	retryInterval time.Duration
	dial          func(network, addr string, timeout time.Duration) (net.Conn, error)
	now           func() time.Time

	mu        sync.Mutex
	conn      net.Conn
	nextRetry time.Time
	closed    bool

	dropped atomic.Int64
}

// Option configures a LogstashWriter.
type Option func(*LogstashWriter)

// WithDialTimeout bounds each connection attempt. Defaults to 2s.
func WithDialTimeout(d time.Duration) Option {
	return func(w *LogstashWriter) { w.dialTimeout = d }
}

// WithWriteTimeout bounds a single event write. Defaults to 1s.
func WithWriteTimeout(d time.Duration) Option {
	return func(w *LogstashWriter) { w.writeTimeout = d }
}

// WithRetryInterval sets the cool-down after a failed connect or write. Defaults to 5s.
func WithRetryInterval(d time.Duration) Option {
	return func(w *LogstashWriter) { w.retryInterval = d }
}

// WithService sets the service field stamped on every event. Defaults to "azerguest-api".
func WithService(name string) Option {
	return func(w *LogstashWriter) { w.service = name }
}

// NewLogstashWriter returns a writer for addr (host:port). The connection is
// opened lazily on the first Write.
func NewLogstashWriter(addr string, opts ...Option) (*LogstashWriter, error) {
	if strings.TrimSpace(addr) == "" {
		return nil, errors.New("logstash: empty address")
	}

	w := &LogstashWriter{
		addr:          addr,
		service:       "azerguest-api",
		dialTimeout:   2 * time.Second,
		writeTimeout:  time.Second,
		retryInterval: 5 * time.Second,
		dial:          net.DialTimeout,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Write sends p as one event. It only returns an error after Close; delivery
// failures are counted in Dropped instead.
func (w *LogstashWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	event := w.encode(p)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return 0, io.ErrClosedPipe
	}
	if err := w.ensureConnLocked(); err != nil {
		w.dropped.Add(1)
		return len(p), nil
	}
	if w.writeTimeout > 0 {
		_ = w.conn.SetWriteDeadline(w.now().Add(w.writeTimeout))
	}
	if _, err := w.conn.Write(event); err != nil {
		w.closeConnLocked()
		w.scheduleRetryLocked()
		w.dropped.Add(1)
	}
	return len(p), nil
}

// Dropped reports how many lines were discarded because Logstash was unreachable.
func (w *LogstashWriter) Dropped() int64 {
	return w.dropped.Load()
}

// Close closes the connection. Later writes return io.ErrClosedPipe.
func (w *LogstashWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	return w.closeConnLocked()
}

func (w *LogstashWriter) encode(p []byte) []byte {
	line := bytes.TrimSpace(p)

	var fields map[string]any
	if len(line) > 0 && line[0] == '{' && json.Unmarshal(line, &fields) == nil {
		if _, ok := fields["service"]; !ok {
			fields["service"] = w.service
		}
	} else {
		fields = map[string]any{
			"@timestamp": w.now().UTC().Format(time.RFC3339Nano),
			"service":    w.service,
			"message":    string(line),
		}
	}

	out, err := json.Marshal(fields)
	if err != nil {
		out = line
	}
	return append(out, '\n')
}

func (w *LogstashWriter) ensureConnLocked() error {
	if w.conn != nil {
		return nil
	}
	if !w.nextRetry.IsZero() && w.now().Before(w.nextRetry) {
		return errRetryCooldown
	}

	conn, err := w.dial("tcp", w.addr, w.dialTimeout)
	if err != nil {
		w.scheduleRetryLocked()
		return err
	}
	w.conn = conn
	w.nextRetry = time.Time{}
	return nil
}

func (w *LogstashWriter) closeConnLocked() error {
	if w.conn == nil {
		return nil
	}
	err := w.conn.Close()
	w.conn = nil
	return err
}

func (w *LogstashWriter) scheduleRetryLocked() {
	if w.retryInterval <= 0 {
		w.nextRetry = time.Time{}
		return
	}
	w.nextRetry = w.now().Add(w.retryInterval)
}

var errRetryCooldown = errors.New("logstash: retry cooldown in effect")
