package ticker

import (
	"log"
	"os"
	"strings"
)

// Fallback is the built-in watchlist used when neither an override string
// nor a ticker file yields any symbols.
var Fallback = []string{"VRT", "COHR", "RRX", "MBLY", "MOD", "GDX", "TER", "FN", "CCJ", "XYL", "HMY", "FCX", "IEX"}

// Parse splits a raw ticker specification into an ordered, duplicate-free
// list of upper-cased symbols. Comma and newline separators may be mixed;
// blank lines and '#' comments (full-line or inline) are ignored.
// Malformed input never fails, it just yields fewer tokens.
func Parse(raw string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if i := strings.Index(line, "#"); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		for _, tok := range strings.Split(line, ",") {
			tok = strings.ToUpper(strings.TrimSpace(tok))
			if tok == "" {
				continue
			}
			if _, dup := seen[tok]; dup {
				continue
			}
			seen[tok] = struct{}{}
			out = append(out, tok)
		}
	}
	return out
}

// LoadFile parses the ticker file at path. A missing or unreadable file is
// treated the same as an empty one.
func LoadFile(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[WARN] read ticker file %s: %v", path, err)
		}
		return nil
	}
	return Parse(string(data))
}

// Defaults resolves the watchlist: an override string wins if it parses to
// anything, then the ticker file, then the built-in fallback.
func Defaults(override, file string) []string {
	if ts := Parse(override); len(ts) > 0 {
		return ts
	}
	if ts := LoadFile(file); len(ts) > 0 {
		return ts
	}
	out := make([]string, len(Fallback))
	copy(out, Fallback)
	return out
}
