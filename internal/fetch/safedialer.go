// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package fetch

import (
	"net"
	"net/netip"
	"strings"
	"syscall"
	"time"
)

// blockedHostNames are rejected before any DNS lookup happens, so a blocked
// host never generates network traffic at all.
var blockedHostNames = map[string]bool{
	"localhost": true,
	"0.0.0.0":   true,
}

// reservedPrefixes covers ranges the netip helper methods miss
// (IsLoopback, IsPrivate, IsLinkLocalUnicast, IsUnspecified).
var reservedPrefixes = []netip.Prefix{
	netip.MustParsePrefix("100.64.0.0/10"),   // carrier-grade NAT
	netip.MustParsePrefix("192.0.0.0/24"),    // IETF protocol assignments
	netip.MustParsePrefix("192.0.2.0/24"),    // TEST-NET-1
	netip.MustParsePrefix("198.18.0.0/15"),   // benchmarking
	netip.MustParsePrefix("198.51.100.0/24"), // TEST-NET-2
	netip.MustParsePrefix("203.0.113.0/24"),  // TEST-NET-3
}

// hostBlocked is the pre-resolution check applied to the URL hostname.
// It catches literal IPs and well-known local names without touching the
// network; the dial-time control below catches everything DNS resolves to.
func hostBlocked(host string) bool {
	if blockedHostNames[strings.ToLower(host)] {
		return true
	}
	if addr, err := netip.ParseAddr(host); err == nil {
		return addrBlocked(addr)
	}
	return false
}

// safeDialer returns a dialer whose Control hook rejects connections to
// private, loopback, link-local, and reserved ranges. Running the check at
// dial time (after DNS resolution) also defeats DNS-rebinding tricks.
func safeDialer() *net.Dialer {
	return &net.Dialer{
		Timeout:   10 * time.Second,
		KeepAlive: 30 * time.Second,
		Control: func(_, address string, _ syscall.RawConn) error {
			addrPort, err := netip.ParseAddrPort(address)
			if err != nil {
				return &Error{Kind: KindBlockedHost, cause: err}
			}
			if addrBlocked(addrPort.Addr()) {
				return &Error{Kind: KindBlockedHost}
			}
			return nil
		},
	}
}

func addrBlocked(addr netip.Addr) bool {
	// Unmap IPv4-in-IPv6 (::ffff:127.0.0.1) so mapped addresses cannot
	// slip past the IPv4 checks.
	addr = addr.Unmap()

	if !addr.IsGlobalUnicast() || addr.IsPrivate() {
		return true
	}
	for _, p := range reservedPrefixes {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}
