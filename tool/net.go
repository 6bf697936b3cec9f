package tool

import (
	"net/url"
	"time"

	probing "github.com/prometheus-community/pro-bing"
)

// QuickICMPProbe sends a single unprivileged ping and reports whether the
// host answered within the timeout. Used as a cheap backend reachability
// check before reporting status to the UI.
func QuickICMPProbe(host string, timeout time.Duration) bool {
	pinger, err := probing.NewPinger(host)
	if err != nil {
		return false
	}
	pinger.Count = 1
	pinger.Timeout = timeout
	pinger.SetPrivileged(false)
	if err := pinger.Run(); err != nil {
		return false
	}
	return pinger.Statistics().PacketsRecv > 0
}

// BackendHost extracts the host part of the backend base URL for probing.
func BackendHost(backendURL string) string {
	u, err := url.Parse(backendURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
