package extract

import (
	"regexp"
	"sort"
	"strings"
)

var (
	urlRe        = regexp.MustCompile(`(?i)(https?://[^\s'",;]+)`)
	sdkInitRe    = regexp.MustCompile(`\bnew\s+([A-Za-z_][\w.]*Client)\s*\(`)
	dbConnectRe  = regexp.MustCompile(`\bDriverManager\.getConnection\s*\(([^)]*)\)`)
	credentialRe = regexp.MustCompile(`(?i)\b(api_key|api_secret|client_id|client_secret|token)\b\s*[:=]\s*['"]?([A-Za-z0-9_\-]+)['"]?`)
)

// Integrations returns third-party touchpoints found in the source: URL
// literals (as API endpoints), SDK client construction, database connection
// calls, and credential assignments. Results are in source order.
func Integrations(src string) []Integration {
	type located struct {
		i      Integration
		offset int
	}
	var found []located

	add := func(kind, name, detail string, offset int) {
		found = append(found, located{
			i:      Integration{Kind: kind, Name: name, Detail: detail, Line: lineAt(src, offset)},
			offset: offset,
		})
	}

	for _, m := range urlRe.FindAllStringSubmatchIndex(src, -1) {
		url := src[m[2]:m[3]]
		add("api_endpoint", serviceNameFromURL(url), url, m[0])
	}
	for _, m := range sdkInitRe.FindAllStringSubmatchIndex(src, -1) {
		add("sdk_client", src[m[2]:m[3]], src[m[0]:m[1]], m[0])
	}
	for _, m := range dbConnectRe.FindAllStringSubmatchIndex(src, -1) {
		add("database_connection", "DriverManager", strings.TrimSpace(src[m[2]:m[3]]), m[0])
	}
	for _, m := range credentialRe.FindAllStringSubmatchIndex(src, -1) {
		add("credential", strings.ToLower(src[m[2]:m[3]]), src[m[4]:m[5]], m[0])
	}

	sort.Slice(found, func(i, j int) bool { return found[i].offset < found[j].offset })

	out := make([]Integration, 0, len(found))
	for _, l := range found {
		out = append(out, l.i)
	}
	return out
}

// serviceNameFromURL pulls a short service name out of a URL host,
// e.g. "https://api.stripe.com/v1" yields "stripe".
func serviceNameFromURL(url string) string {
	rest := strings.TrimPrefix(strings.TrimPrefix(url, "https://"), "http://")
	host := rest
	if idx := strings.IndexAny(rest, "/?#"); idx >= 0 {
		host = rest[:idx]
	}
	if idx := strings.IndexByte(host, ':'); idx >= 0 {
		host = host[:idx]
	}
	host = strings.TrimPrefix(host, "www.")
	parts := strings.Split(host, ".")
	if len(parts) >= 2 {
		return parts[len(parts)-2]
	}
	return host
}
