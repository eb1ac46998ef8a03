package render

import (
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/diagramkeeper/internal/common"
)

// CheckDatabaseURL rejects database URLs that are malformed or point at
// localhost, private, link-local or unspecified addresses.
func CheckDatabaseURL(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return fmt.Errorf("%w: invalid database URL", common.ErrValidation)
	}
	switch u.Scheme {
	case "postgres", "postgresql":
	default:
		return fmt.Errorf("%w: unsupported database URL scheme %q", common.ErrValidation, u.Scheme)
	}
	if !isSafeHost(u.Hostname()) {
		return fmt.Errorf("%w: unsafe database URL: localhost/private IPs are not allowed", common.ErrValidation)
	}
	return nil
}

func isSafeHost(host string) bool {
	host = strings.ToLower(strings.TrimSuffix(host, "."))
	if host == "" || host == "localhost" || strings.HasSuffix(host, ".localhost") {
		return false
	}
	ip := net.ParseIP(host)
	if ip == nil {
		return true
	}
	return !(ip.IsLoopback() || ip.IsPrivate() || ip.IsUnspecified() ||
		ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast())
}
