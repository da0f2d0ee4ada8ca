package runner

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
)

// ErrBlockedTarget marks a request target rejected by the network guard.
var ErrBlockedTarget = errors.New("target address is not allowed")

// ipResolver abstracts DNS resolution for tests.
type ipResolver interface {
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}

// TargetGuard rejects step targets that resolve to loopback, link-local,
// private, or unspecified addresses. Runs against internal deployments opt
// out with allowInternal.
type TargetGuard struct {
	allowInternal bool
	resolver      ipResolver
}

// NewTargetGuard returns a guard with the given policy.
func NewTargetGuard(allowInternal bool) *TargetGuard {
	return &TargetGuard{allowInternal: allowInternal, resolver: net.DefaultResolver}
}

// CheckURL validates a fully resolved request URL. Literal IP hosts are
// checked directly; hostnames are resolved and every returned address must
// be routable.
func (g *TargetGuard) CheckURL(ctx context.Context, rawURL string) error {
	if g.allowInternal {
		return nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid target URL: %w", err)
	}
	host := u.Hostname()
	if host == "" {
		return fmt.Errorf("target URL %q has no host: %w", rawURL, ErrBlockedTarget)
	}
	if ip := net.ParseIP(host); ip != nil {
		return g.checkIP(host, ip)
	}
	addrs, err := g.resolver.LookupIPAddr(ctx, host)
	if err != nil {
		return fmt.Errorf("resolving target host %q: %w", host, err)
	}
	for _, addr := range addrs {
		if err := g.checkIP(host, addr.IP); err != nil {
			return err
		}
	}
	return nil
}

func (g *TargetGuard) checkIP(host string, ip net.IP) error {
	if blockedIP(ip) {
		return fmt.Errorf("host %q resolves to %s: %w", host, ip, ErrBlockedTarget)
	}
	return nil
}

func blockedIP(ip net.IP) bool {
	return ip.IsLoopback() ||
		ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() ||
		ip.IsPrivate() ||
		ip.IsUnspecified()
}
