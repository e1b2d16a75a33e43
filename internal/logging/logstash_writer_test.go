package logging

import (
	"bufio"
	"encoding/json"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEvent(t *testing.T, line []byte) map[string]any {
	t.Helper()
	var event map[string]any
	require.NoError(t, json.Unmarshal(line, &event))
	return event
}

func TestLogstashWriterWrapsPlainLines(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()

	w, err := NewLogstashWriter("logstash:5000", WithService("test-api"), WithWriteTimeout(0))
	require.NoError(t, err)
	w.dial = func(network, addr string, timeout time.Duration) (net.Conn, error) { return client, nil }
	defer w.Close()

	reader := bufio.NewReader(server)
	done := make(chan []byte, 2)
	go func() {
		for i := 0; i < 2; i++ {
			line, err := reader.ReadBytes('\n')
			if err != nil {
				close(done)
				return
			}
			done <- line
		}
	}()

	_, err = w.Write([]byte("booking 7: notify failed\n"))
	require.NoError(t, err)
	_, err = w.Write([]byte(`{"method":"GET","status":200}`))
	require.NoError(t, err)

	plain := decodeEvent(t, <-done)
	assert.Equal(t, "booking 7: notify failed", plain["message"])
	assert.Equal(t, "test-api", plain["service"])
	assert.NotEmpty(t, plain["@timestamp"])

	structured := decodeEvent(t, <-done)
	assert.Equal(t, "GET", structured["method"])
	assert.Equal(t, float64(200), structured["status"])
	assert.Equal(t, "test-api", structured["service"])
}

func TestLogstashWriterDropsWhileUnreachable(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	dials := 0

	w, err := NewLogstashWriter("logstash:5000", WithRetryInterval(time.Minute))
	require.NoError(t, err)
	w.now = func() time.Time { return now }
	w.dial = func(network, addr string, timeout time.Duration) (net.Conn, error) {
		dials++
		return nil, errors.New("connection refused")
	}

	for i := 0; i < 3; i++ {
		n, err := w.Write([]byte("line"))
		require.NoError(t, err)
		assert.Equal(t, 4, n)
	}
	assert.Equal(t, 1, dials, "cool-down should suppress redials")
	assert.Equal(t, int64(3), w.Dropped())

	now = now.Add(2 * time.Minute)
	_, _ = w.Write([]byte("line"))
	assert.Equal(t, 2, dials)
}

func TestLogstashWriterRejectsEmptyAddress(t *testing.T) {
	_, err := NewLogstashWriter("  ")
	assert.Error(t, err)
}

func TestLogstashWriterClosed(t *testing.T) {
	w, err := NewLogstashWriter("logstash:5000")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = w.Write([]byte("late"))
	assert.Error(t, err)
}
