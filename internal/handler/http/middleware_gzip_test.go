package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveGZip(t *testing.T, acceptEncoding string, next http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("raw body"))
	if acceptEncoding != "" {
		req.Header.Set("Accept-Encoding", acceptEncoding)
	}
	rec := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rec, req)
	return rec
}

func TestWithGZip_CompressesWhenAccepted(t *testing.T) {
	rec := serveGZip(t, "br, gzip", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, "hello gzip")
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "Accept-Encoding", rec.Header().Get("Vary"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	plain, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, "hello gzip", string(plain))
}

func TestWithGZip_PassThroughWithoutAccept(t *testing.T) {
	rec := serveGZip(t, "", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "plain")
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "plain", rec.Body.String())
}

func TestWithGZip_EmptyBodyStaysEmpty(t *testing.T) {
	rec := serveGZip(t, "gzip", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	})

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Empty(t, rec.Body.Bytes())
}

func TestWithGZip_RequestBodyUntouched(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("signed bytes"))
	req.Header.Set("Accept-Encoding", "gzip")
	req.Header.Set("Content-Encoding", "gzip")

	var got []byte
	withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = io.ReadAll(r.Body)
	})).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "signed bytes", string(got))
}
