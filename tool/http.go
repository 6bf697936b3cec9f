package tool

import (
	"crypto/tls"
	"net/http"
	"time"
)

var (
	DefaultTimeout       = 30 * time.Second
	ConnectionHttpClient *http.Client
)

func init() {
	ConnectionHttpClient = NewHTTPClient()
}

// NewHTTPClient creates an HTTP client for backend submissions, skipping
// self-signed certificate verification when the backend runs HTTPS.
func NewHTTPClient() *http.Client {
	transport := &http.Transport{
		TLSClientConfig:     &tls.Config{InsecureSkipVerify: true},
		MaxIdleConns:        50,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     300 * time.Millisecond,
		DisableKeepAlives:   false,
	}
	return &http.Client{
		Timeout:   DefaultTimeout,
		Transport: transport,
	}
}

func GetHttpClient() *http.Client {
	return ConnectionHttpClient
}
