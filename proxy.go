package basia

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/proxy"
)

func getProxyUrlDialer(proxyUrl string) (proxy.ContextDialer, error) {

	parsedUrl, err := url.Parse(proxyUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to parse proxy url: %s", err.Error())
	}

	switch strings.ToLower(parsedUrl.Scheme) {
	case "socks", "socks4", "socks5":
		break
	default:
		return nil, fmt.Errorf("unsupported proxy protocol '%s'", parsedUrl.Scheme)
	}

	if parsedUrl.Port() == "" {
		return nil, fmt.Errorf("proxy url port required")
	}

	return NewSocksProxyDialer(parsedUrl)
}

func NewSocksProxyDialer(proxyUrl *url.URL) (proxy.ContextDialer, error) {

	var proxyAuth *proxy.Auth
	if proxyUrl.User.Username() != "" {

		proxyAuth = &proxy.Auth{User: proxyUrl.User.Username()}

		if pass, has := proxyUrl.User.Password(); has {
			proxyAuth.Password = pass
		}
	}

	dialer, err := proxy.SOCKS5("tcp", proxyUrl.Host, proxyAuth, proxy.Direct)
	if err != nil {
		return nil, err
	}

	return dialer.(proxy.ContextDialer), nil
}
