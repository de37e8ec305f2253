package resolve

import (
	"context"
	"log"
	"net"
	"net/http"
	"net/url"
	"time"

	_ "github.com/bdandy/go-socks4"
	"golang.org/x/net/proxy"
)

// proxyTransport builds an http.Transport for the given proxy URL. Supports
// http(s), socks4 and socks5 schemes; returns nil (direct connection) for an
// empty or unusable proxy.
func proxyTransport(proxyStr string) *http.Transport {
	if proxyStr == "" {
		return nil
	}

	proxyURL, err := url.Parse(proxyStr)
	if err != nil {
		log.Printf("[Resolve] Invalid proxy format %q: %v", proxyStr, err)
		return nil
	}

	switch proxyURL.Scheme {
	case "http", "https":
		log.Printf("[Resolve] Using HTTP proxy: %s", proxyStr)
		return &http.Transport{Proxy: http.ProxyURL(proxyURL)}

	case "socks5":
		auth := &proxy.Auth{}
		if proxyURL.User != nil {
			auth.User = proxyURL.User.Username()
			if pass, ok := proxyURL.User.Password(); ok {
				auth.Password = pass
			}
		}
		dialer, err := proxy.SOCKS5("tcp", proxyURL.Host, auth, &net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 10 * time.Second,
		})
		if err != nil {
			log.Printf("[Resolve] SOCKS5 dialer error: %v", err)
			return nil
		}
		log.Printf("[Resolve] Using SOCKS5 proxy: %s", proxyStr)
		return &http.Transport{
			DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				return dialer.Dial(network, addr)
			},
		}

	case "socks4":
		dialer, err := proxy.FromURL(proxyURL, &net.Dialer{Timeout: 10 * time.Second})
		if err != nil {
			log.Printf("[Resolve] SOCKS4 dialer error: %v", err)
			return nil
		}
		log.Printf("[Resolve] Using SOCKS4 proxy: %s", proxyStr)
		return &http.Transport{
			DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				return dialer.Dial(network, addr)
			},
		}

	default:
		log.Printf("[Resolve] Unsupported proxy scheme: %s", proxyURL.Scheme)
		return nil
	}
}
