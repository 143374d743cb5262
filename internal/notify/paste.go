package notify

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// PasteClient uploads the report to a public paste host. The resulting
// URL serves as the push click-through target; any failure here degrades
// to "no link", never to a failed run.
type PasteClient struct {
	Endpoint string
	Client   *http.Client
}

// NewPasteClient creates a client for a dpaste-style form API.
func NewPasteClient(endpoint, proxyURL string) *PasteClient {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &PasteClient{
		Endpoint: endpoint,
		Client: &http.Client{
			Timeout:   12 * time.Second,
			Transport: transport,
		},
	}
}

// Create posts text and returns the URL of the created paste.
func (p *PasteClient) Create(text string) (string, error) {
	form := url.Values{
		"content": {text},
		"format":  {"url"},
	}
	resp, err := p.Client.PostForm(p.Endpoint, form)
	if err != nil {
		return "", fmt.Errorf("paste send: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("paste read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("paste API error: status %d, body: %s", resp.StatusCode, string(body))
	}
	u := strings.TrimSpace(string(body))
	if !strings.HasPrefix(u, "http") {
		return "", fmt.Errorf("paste: unexpected response %q", u)
	}
	return u, nil
}
