package http

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// clientAddress identifies the client of r for rate limiting.
//
// The TCP peer is the client unless it is one of the trusted proxies. Then
// X-Forwarded-For is walked from the right and the first hop that is not a
// trusted proxy wins, falling back to X-Real-IP. Headers sent by untrusted
// peers are ignored.
func (h *Handler) clientAddress(r *http.Request) string {
	peer := remoteHost(r.RemoteAddr)

	addr, err := netip.ParseAddr(peer)
	if err != nil || !h.isTrustedProxy(addr) {
		return peer
	}

	hops := strings.Split(strings.Join(r.Header.Values("X-Forwarded-For"), ","), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop, err := netip.ParseAddr(strings.TrimSpace(hops[i]))
		if err != nil {
			// the chain is unreadable beyond this point
			break
		}
		if !h.isTrustedProxy(hop) {
			return hop.Unmap().String()
		}
	}

	if realIP, err := netip.ParseAddr(strings.TrimSpace(r.Header.Get("X-Real-IP"))); err == nil {
		return realIP.Unmap().String()
	}

	return peer
}

func (h *Handler) isTrustedProxy(addr netip.Addr) bool {
	addr = addr.Unmap()
	for _, prefix := range h.trustedProxies {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

func remoteHost(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}
