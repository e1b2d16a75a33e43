package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"mime"
	"mime/multipart"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	requestBodyLogKey  = "http.request.body.summary"
	responseBodyLogKey = "http.response.body.summary"
	maxLoggedBody      = 2048
	redacted           = "redacted"
)

type accessLogEntry struct {
	Time      string `json:"time"`
	RequestID string `json:"request_id"`
	UserID    string `json:"user_id"`
	LatencyMS int64  `json:"latency_ms"`
	Request   struct {
		Method string `json:"method"`
		URI    string `json:"uri"`
		Body   any    `json:"body,omitempty"`
	} `json:"request"`
	Response struct {
		Status int    `json:"status"`
		Body   any    `json:"body,omitempty"`
		Error  string `json:"error,omitempty"`
	} `json:"response"`
}

// registerLogging installs request id propagation and a JSON access log line
// per request. Bodies are logged with password fields redacted.
func registerLogging(e *echo.Echo) {
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogError:     true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			entry := accessLogEntry{
				Time:      v.StartTime.Format(time.RFC3339),
				RequestID: v.RequestID,
				UserID:    "anonymous",
				LatencyMS: v.Latency.Milliseconds(),
			}
			if user, ok := CurrentUser(c); ok {
				entry.UserID = strconv.FormatInt(user.ID, 10)
			}
			entry.Request.Method = v.Method
			entry.Request.URI = v.URI
			entry.Request.Body = c.Get(requestBodyLogKey)
			entry.Response.Status = v.Status
			entry.Response.Body = c.Get(responseBodyLogKey)
			if v.Error != nil {
				entry.Response.Error = v.Error.Error()
			}

			buf, err := json.Marshal(entry)
			if err != nil {
				return err
			}
			log.Println(string(buf))
			return nil
		},
	}))

	e.Use(middleware.BodyDump(func(c echo.Context, reqBody, resBody []byte) {
		if summary := sanitizeBody(reqBody, c.Request().Header.Get(echo.HeaderContentType)); summary != nil {
			c.Set(requestBodyLogKey, summary)
		}
		if summary := sanitizeBody(resBody, c.Response().Header().Get(echo.HeaderContentType)); summary != nil {
			c.Set(responseBodyLogKey, summary)
		}
	}))
}

func sanitizeBody(body []byte, contentType string) any {
	if len(body) == 0 {
		return nil
	}
	lowered := strings.ToLower(strings.TrimSpace(contentType))

	if strings.HasPrefix(lowered, "multipart/form-data") {
		return sanitizeMultipart(body, contentType)
	}
	if strings.HasPrefix(lowered, "application/json") || json.Valid(body) {
		var data any
		if err := json.Unmarshal(body, &data); err == nil {
			return clampJSON(sanitizeJSON(data, ""))
		}
	}
	if containsBinaryBytes(body) {
		return "binary"
	}
	text := string(body)
	if strings.Contains(strings.ToLower(text), "password") {
		return redacted
	}
	return clampString(text)
}

func sanitizeJSON(value any, key string) any {
	if isSecretKey(key) {
		return redacted
	}
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[k] = sanitizeJSON(val, strings.ToLower(k))
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = sanitizeJSON(item, key)
		}
		return out
	case string:
		if containsBinaryBytes([]byte(v)) {
			return "binary"
		}
		return clampString(v)
	default:
		return v
	}
}

// isSecretKey matches password fields and issued tokens.
func isSecretKey(key string) bool {
	return strings.Contains(key, "password") || key == "token" || key == "id_token"
}

// clampJSON replaces oversized bodies with their size so one large listing
// cannot flood the log.
func clampJSON(value any) any {
	buf, err := json.Marshal(value)
	if err != nil || len(buf) <= maxLoggedBody {
		return value
	}
	return map[string]any{"_truncated": true, "_bytes": len(buf)}
}

func sanitizeMultipart(body []byte, contentType string) any {
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.HasPrefix(mediaType, "multipart/") || params["boundary"] == "" {
		return "binary"
	}

	reader := multipart.NewReader(bytes.NewReader(body), params["boundary"])
	fields := make(map[string]any)
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "binary"
		}
		name := part.FormName()
		switch {
		case name == "":
		case part.FileName() != "":
			fields[name] = "file:" + part.FileName()
		default:
			data, err := io.ReadAll(io.LimitReader(part, maxLoggedBody+1))
			if err != nil {
				fields[name] = "binary"
			} else {
				fields[name] = sanitizeJSON(string(data), strings.ToLower(name))
			}
		}
		_ = part.Close()
	}
	if len(fields) == 0 {
		return "binary"
	}
	return clampJSON(fields)
}

func containsBinaryBytes(data []byte) bool {
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			return true
		}
		if !unicode.IsPrint(r) && !unicode.IsSpace(r) {
			return true
		}
		data = data[size:]
	}
	return false
}

func clampString(value string) string {
	if len(value) <= maxLoggedBody {
		return value
	}
	truncated := value[:maxLoggedBody]
	for !utf8.ValidString(truncated) && len(truncated) > 0 {
		truncated = truncated[:len(truncated)-1]
	}
	return truncated + "...(truncated)"
}
