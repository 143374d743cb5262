package notify

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// PushSender posts the report text to an ntfy-style topic endpoint.
type PushSender struct {
	Server string
	Topic  string
	Tags   string
	Client *http.Client
}

// NewPushSender creates a push sender with optional proxy support.
func NewPushSender(server, topic, proxyURL string) *PushSender {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &PushSender{
		Server: strings.TrimRight(server, "/"),
		Topic:  topic,
		Tags:   "chart_with_upwards_trend",
		Client: &http.Client{
			Timeout:   12 * time.Second,
			Transport: transport,
		},
	}
}

// Send issues one POST with the report as the UTF-8 body. Headers must be
// ASCII-safe on the wire, so title and click URL are sanitized. An empty
// clickURL omits the Click header.
func (p *PushSender) Send(title, body, clickURL string) error {
	endpoint := p.Server + "/" + url.PathEscape(p.Topic)
	req, err := http.NewRequest("POST", endpoint, strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("push request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	req.Header.Set("Title", asciiSafe(title))
	req.Header.Set("Priority", "default")
	req.Header.Set("Tags", p.Tags)
	if clickURL != "" {
		req.Header.Set("Click", asciiSafe(clickURL))
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return fmt.Errorf("push send: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("push API error: status %d, body: %s", resp.StatusCode, string(respBody))
	}
	return nil
}

// asciiSafe drops every byte outside printable ASCII and trims the edges,
// since header values cannot carry leading or trailing whitespace.
func asciiSafe(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= 32 && r < 127 {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
