package viewer

import (
	"html/template"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"StockDigest/internal/quote"
	"StockDigest/internal/report"
	"StockDigest/internal/ticker"
)

// Server serves the single-page interactive watchlist viewer: a ticker
// textarea, a results table and a copy-friendly plain-text block.
type Server struct {
	Resolver *quote.Resolver
	Defaults []string
	tmpl     *template.Template
}

// NewServer creates a viewer over the given resolver. defaults pre-fills
// the ticker input.
func NewServer(r *quote.Resolver, defaults []string) *Server {
	return &Server{
		Resolver: r,
		Defaults: defaults,
		tmpl:     template.Must(template.New("page").Parse(pageTemplate)),
	}
}

// Handler returns the HTTP handler for the viewer page.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	return mux
}

// rowView is one pre-formatted table row for the template.
type rowView struct {
	Ticker   string
	Price    string // up to 4 decimals, empty when unresolved
	Currency string
	Status   string
}

type pageData struct {
	Raw       string
	Parsed    int
	Fetched   bool
	When      string
	Rows      []rowView
	CopyBlock string
	Warning   string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data := pageData{Raw: strings.Join(s.Defaults, ", ")}
	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err == nil {
			data.Raw = r.FormValue("tickers")
		}
		tickers := ticker.Parse(data.Raw)
		data.Parsed = len(tickers)
		if len(tickers) == 0 {
			data.Warning = "Please enter at least one ticker."
		} else {
			results := s.Resolver.ResolveAll(tickers)
			data.Fetched = true
			data.When = time.Now().UTC().Format("2006-01-02 15:04 UTC")
			lines := make([]string, 0, len(results))
			for _, row := range report.Table(results) {
				v := rowView{Ticker: row.Ticker, Currency: row.Currency, Status: string(row.Status)}
				if row.Price != nil {
					v.Price = strconv.FormatFloat(*row.Price, 'f', -1, 64)
				}
				data.Rows = append(data.Rows, v)
			}
			for _, res := range results {
				lines = append(lines, report.Line(res, nil, report.StyleVerbose))
			}
			data.CopyBlock = strings.Join(lines, "\n")
		}
	} else {
		data.Parsed = len(ticker.Parse(data.Raw))
	}

	if err := s.tmpl.Execute(w, data); err != nil {
		log.Printf("[ERROR] render viewer page: %v", err)
	}
}

const pageTemplate = `<!doctype html>
<html><head><meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Stocks Watchlist</title>
<style>
body { font-family: sans-serif; max-width: 48em; margin: 2em auto; padding: 0 1em; }
textarea { width: 100%; font-family: monospace; }
table { border-collapse: collapse; margin-top: 1em; width: 100%; }
th, td { border: 1px solid #ccc; padding: 0.3em 0.6em; text-align: left; }
pre { background: #f4f4f4; padding: 1em; white-space: pre-wrap; }
.warn { color: #a60; }
</style></head>
<body>
<h1>Stocks Watchlist</h1>
<p>Paste tickers (comma and/or newline separated) to fetch latest prices.</p>
<form method="post" action="/">
<textarea name="tickers" rows="5">{{.Raw}}</textarea>
<p><button type="submit">Fetch prices</button> Tickers parsed: <b>{{.Parsed}}</b></p>
</form>
{{if .Warning}}<p class="warn">{{.Warning}}</p>{{end}}
{{if .Fetched}}
<h2>Results ({{.When}})</h2>
<table>
<tr><th>ticker</th><th>last_price</th><th>currency</th><th>status</th></tr>
{{range .Rows}}<tr><td>{{.Ticker}}</td><td>{{.Price}}</td><td>{{.Currency}}</td><td>{{.Status}}</td></tr>
{{end}}</table>
<h2>Copy-friendly output</h2>
<pre onclick="getSelection().selectAllChildren(this)">{{.CopyBlock}}</pre>
{{end}}
</body></html>`
