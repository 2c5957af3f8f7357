// Package probe answers "can we reach the service right now" with a single
// HTTP request, for surfacing connectivity state in a game client before it
// tries to sync or fetch remote content.
package probe

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/tatterwing/lootkit/util/errors"
	"github.com/tatterwing/lootkit/util/netutil"
)

var ErrPrivateAddress = errors.New("refusing to probe a private or loopback address")

type Options struct {
	// Timeout bounds the whole request; zero keeps the client default.
	Timeout time.Duration
	// HTTP3 switches the request to a QUIC transport.
	HTTP3 bool
	// SkipPrivate refuses targets that resolve only to private ranges.
	SkipPrivate bool
}

type Report struct {
	URL        string
	Proto      string
	StatusCode int
	Latency    time.Duration
}

// Reachable treats any non-error response as connectivity; a 4xx from the
// endpoint still proves the network path works.
func (r *Report) Reachable() bool {
	return r.StatusCode > 0
}

func (r *Report) Healthy() bool {
	return r.StatusCode >= 200 && r.StatusCode < 400
}

func Check(ctx context.Context, rawURL string, opts Options) (*Report, error) {
	target, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid probe url %v", rawURL)
	}
	if opts.SkipPrivate {
		private, err := netutil.IsPrivateHost(ctx, target.Hostname())
		if err != nil {
			return nil, err
		}
		if private {
			return nil, errors.Wrapf(ErrPrivateAddress, "%v", rawURL)
		}
	}

	var client *http.Client
	if opts.HTTP3 {
		client = netutil.HTTP3Client()
	} else {
		client = netutil.HTTPClient(&http.Transport{})
	}
	if opts.Timeout > 0 {
		client.Timeout = opts.Timeout
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "probe to %v failed", rawURL)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	return &Report{
		URL:        rawURL,
		Proto:      resp.Proto,
		StatusCode: resp.StatusCode,
		Latency:    time.Since(start),
	}, nil
}
