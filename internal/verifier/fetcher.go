package verifier

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/voice-bridge/internal/utils"
)

const (
	certFetchTimeout = 2 * time.Second
	maxCertChainSize = 64 << 10
)

type httpCertFetcher struct {
	client *utils.HTTPClient
}

func newHTTPCertFetcher() *httpCertFetcher {
	return &httpCertFetcher{client: utils.NewHTTPClient(
		utils.WithTimeout(certFetchTimeout),
		utils.WithResponseBodyLimit(maxCertChainSize),
		utils.WithoutRedirects(),
	)}
}

func (f *httpCertFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCertificateFetch, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w: http %d", ErrCertificateFetch, resp.StatusCode())
	}
	if len(resp.Body()) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrCertificateFetch)
	}
	return resp.Body(), nil
}
