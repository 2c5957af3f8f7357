package netutil

import (
	"context"
	"net"
	"net/http"
	"net/netip"
	"time"

	"github.com/quic-go/quic-go/http3"
	"github.com/tatterwing/lootkit/util/errors"
	"go4.org/netipx"
)

var httpClientTimeout = 60 * time.Second

func HTTPClient(tr *http.Transport) *http.Client {
	return &http.Client{Transport: tr, Timeout: httpClientTimeout}
}

func HTTP3Client() *http.Client {
	return &http.Client{Transport: &http3.RoundTripper{}, Timeout: httpClientTimeout}
}

var privateIPSet = buildPrivateIPSet()

func buildPrivateIPSet() *netipx.IPSet {
	var builder netipx.IPSetBuilder
	for _, prefix := range []string{
		// https://www.iana.org/assignments/iana-ipv4-special-registry
		"0.0.0.0/8",
		"10.0.0.0/8",
		"100.64.0.0/10",
		"127.0.0.0/8",
		"169.254.0.0/16",
		"172.16.0.0/12",
		"192.168.0.0/16",
		"::1/128",
		"fc00::/7",
		"fe80::/10",
	} {
		builder.AddPrefix(netip.MustParsePrefix(prefix))
	}
	set, err := builder.IPSet()
	if err != nil {
		panic(err)
	}
	return set
}

func IsPrivateIP(addr netip.Addr) bool {
	return privateIPSet.Contains(addr.Unmap())
}

// IsPrivateHost reports whether host (an IP literal or a hostname) resolves
// only to private, loopback or otherwise non-routable addresses.
func IsPrivateHost(ctx context.Context, host string) (bool, error) {
	if addr, err := netip.ParseAddr(host); err == nil {
		return IsPrivateIP(addr), nil
	}
	addrs, err := net.DefaultResolver.LookupNetIP(ctx, "ip", host)
	if err != nil {
		return false, errors.WithStack(err)
	}
	for _, addr := range addrs {
		if !IsPrivateIP(addr) {
			return false, nil
		}
	}
	return len(addrs) > 0, nil
}
