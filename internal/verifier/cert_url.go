package verifier

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

const (
	certHost       = "s3.amazonaws.com"
	certPathPrefix = "/echo.api/"
)

// normalizeCertURL validates a SignatureCertChainUrl and returns its canonical
// form, which is also the certificate cache key. The scheme and host compare
// case-insensitively; the path is cleaned before the prefix check so that
// "/echo.api/../x" is rejected.
func normalizeCertURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidCertURL, err)
	}
	if !strings.EqualFold(u.Scheme, "https") {
		return "", fmt.Errorf("%w: scheme %q", ErrInvalidCertURL, u.Scheme)
	}
	if !strings.EqualFold(u.Hostname(), certHost) {
		return "", fmt.Errorf("%w: host %q", ErrInvalidCertURL, u.Hostname())
	}
	if port := u.Port(); port != "" && port != "443" {
		return "", fmt.Errorf("%w: port %q", ErrInvalidCertURL, port)
	}
	if u.User != nil {
		return "", fmt.Errorf("%w: userinfo is not allowed", ErrInvalidCertURL)
	}

	cleaned := path.Clean("/" + u.Path)
	if !strings.HasPrefix(cleaned, certPathPrefix) {
		return "", fmt.Errorf("%w: path %q", ErrInvalidCertURL, u.Path)
	}

	u.Scheme = "https"
	u.Host = strings.ToLower(u.Hostname())
	u.Path = cleaned
	u.RawPath = ""
	u.Fragment = ""
	return u.String(), nil
}
