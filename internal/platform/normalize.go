package platform

import (
	"fmt"
	"net/url"
	"strings"
)

// Canonical watch page template
const (
	WatchURLTemplate = "https://www.youtube.com/watch?v=%s"
)

// Hosts and path markers recognised by the normalizer
const (
	ShortLinkHost    = "youtu.be"
	MainDomain       = "youtube.com"
	ShortsPathMarker = "/shorts/"
	VideoIDParam     = "v"
)

// NormalizeWatchURL canonicalizes a raw input URL into a stable lookup key
// so that repeated requests hit the same backend resource. Short links and
// shorts paths are rewritten to the canonical watch page; any other URL has
// its query string stripped and nothing else touched. Malformed input is
// returned unchanged, and the transform is idempotent.
func NormalizeWatchURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return raw
	}

	host := strings.ToLower(u.Hostname())

	if host == ShortLinkHost {
		if id := firstPathSegment(u.Path); id != "" {
			return fmt.Sprintf(WatchURLTemplate, id)
		}
	}

	if isMainDomain(host) {
		if id := shortsVideoID(u.Path); id != "" {
			return fmt.Sprintf(WatchURLTemplate, id)
		}
		if id := u.Query().Get(VideoIDParam); id != "" {
			return fmt.Sprintf(WatchURLTemplate, id)
		}
	}

	u.RawQuery = ""
	return u.String()
}

// isMainDomain matches the platform domain and its subdomains (www, m, music)
func isMainDomain(host string) bool {
	return host == MainDomain || strings.HasSuffix(host, "."+MainDomain)
}

// firstPathSegment returns the first path segment, "" when the path is bare
func firstPathSegment(path string) string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return ""
	}
	if idx := strings.IndexByte(trimmed, '/'); idx >= 0 {
		return trimmed[:idx]
	}
	return trimmed
}

// shortsVideoID extracts the identifier between the shorts marker and the
// next path separator, "" when the path is not a shorts path
func shortsVideoID(path string) string {
	idx := strings.Index(path, ShortsPathMarker)
	if idx < 0 {
		return ""
	}
	rest := path[idx+len(ShortsPathMarker):]
	if sep := strings.IndexByte(rest, '/'); sep >= 0 {
		rest = rest[:sep]
	}
	return rest
}
