package netutil

import (
	"context"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPrivateIP(t *testing.T) {
	tests := []struct {
		addr     string
		expected bool
	}{
		{"127.0.0.1", true},
		{"10.1.2.3", true},
		{"172.16.0.1", true},
		{"192.168.1.1", true},
		{"169.254.10.10", true},
		{"100.64.0.1", true},
		{"::1", true},
		{"fe80::1", true},
		{"fd00::1", true},
		{"8.8.8.8", false},
		{"2001:4860:4860::8888", false},
		{"::ffff:127.0.0.1", true},
		{"::ffff:8.8.8.8", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, IsPrivateIP(netip.MustParseAddr(tt.addr)), tt.addr)
	}
}

func TestIsPrivateHostWithIPLiteral(t *testing.T) {
	private, err := IsPrivateHost(context.Background(), "127.0.0.1")
	assert.Nil(t, err)
	assert.True(t, private)

	private, err = IsPrivateHost(context.Background(), "8.8.8.8")
	assert.Nil(t, err)
	assert.False(t, private)
}

func TestIsPrivateHostResolvesLocalhost(t *testing.T) {
	private, err := IsPrivateHost(context.Background(), "localhost")
	assert.Nil(t, err)
	assert.True(t, private)
}
