package notify

import (
	"encoding/base64"
	"fmt"
	"html"
)

// ClickPage renders the report into a self-contained HTML page and
// returns it as a data: URI. Used as the push click-through target when
// no paste URL is available: tapping the notification opens the page and
// tapping the text selects it for copying. Base64 keeps the URI ASCII.
func ClickPage(title, body string) string {
	page := fmt.Sprintf(`<!doctype html>
<html><head><meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<style>
body { font-family: monospace; margin: 1.5em; }
pre { background: #f4f4f4; padding: 1em; white-space: pre-wrap; }
</style></head>
<body>
<h3>%s</h3>
<pre onclick="getSelection().selectAllChildren(this)">%s</pre>
<p>Tap the text to select it, then copy.</p>
</body></html>`,
		html.EscapeString(title), html.EscapeString(title), html.EscapeString(body))
	return "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(page))
}
