// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package lambda runs the HTTP router behind AWS API Gateway.
//
// [Proxy] turns an API Gateway proxy event into an [http.Request], serves it
// with the same router the standalone server uses and converts the recorded
// response back into a proxy response. Verification, routing and status
// mapping therefore behave identically in both deployments.
package lambda

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/aws/aws-lambda-go/events"

	"github.com/MKhiriev/voice-bridge/internal/logger"
	"github.com/MKhiriev/voice-bridge/internal/speech"
	"github.com/MKhiriev/voice-bridge/internal/utils"
	"github.com/MKhiriev/voice-bridge/models"
)

type Proxy struct {
	router http.Handler
	logger *logger.Logger
}

func NewProxy(router http.Handler, logger *logger.Logger) *Proxy {
	return &Proxy{router: router, logger: logger}
}

// Handle serves one API Gateway event. It never returns an error: failures
// are reported as HTTP responses so that the gateway does not answer 502.
func (p *Proxy) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	req, err := newHTTPRequest(ctx, event)
	if err != nil {
		p.logger.Err(err).Str("path", event.Path).Msg("error converting API Gateway event")
		return invalidRequest(), nil
	}

	w := newResponseWriter()
	p.router.ServeHTTP(w, req)

	return w.proxyResponse(), nil
}

func newHTTPRequest(ctx context.Context, event events.APIGatewayProxyRequest) (*http.Request, error) {
	body := []byte(event.Body)
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
		}
		body = decoded
	}

	u := url.URL{Path: event.Path, RawQuery: queryString(event)}
	if u.Path == "" {
		u.Path = "/"
	}

	req, err := http.NewRequestWithContext(ctx, event.HTTPMethod, u.RequestURI(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEvent, err)
	}
	req.RequestURI = u.RequestURI()
	req.RemoteAddr = event.RequestContext.Identity.SourceIP

	for name, values := range event.MultiValueHeaders {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}
	for name, v := range event.Headers {
		if _, ok := event.MultiValueHeaders[name]; !ok {
			req.Header.Set(name, v)
		}
	}
	req.Host = req.Header.Get("Host")
	if event.RequestContext.RequestID != "" && req.Header.Get(utils.TraceIDHeader) == "" {
		req.Header.Set(utils.TraceIDHeader, event.RequestContext.RequestID)
	}

	return req, nil
}

func queryString(event events.APIGatewayProxyRequest) string {
	values := url.Values{}
	for name, vs := range event.MultiValueQueryStringParameters {
		for _, v := range vs {
			values.Add(name, v)
		}
	}
	for name, v := range event.QueryStringParameters {
		if _, ok := event.MultiValueQueryStringParameters[name]; !ok {
			values.Set(name, v)
		}
	}
	return values.Encode()
}

func invalidRequest() events.APIGatewayProxyResponse {
	w := newResponseWriter()
	reply := models.NewReply(speech.InvalidRequest(speech.For(""))).WithStatus(http.StatusBadRequest)
	_, _ = utils.WriteReply(w, reply)
	return w.proxyResponse()
}

// responseWriter buffers the whole response for the proxy result.
type responseWriter struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func newResponseWriter() *responseWriter {
	return &responseWriter{header: http.Header{}}
}

func (w *responseWriter) Header() http.Header {
	return w.header
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.status == 0 {
		w.status = statusCode
	}
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.body.Write(b)
}

// proxyResponse encodes binary or compressed bodies as base64.
func (w *responseWriter) proxyResponse() events.APIGatewayProxyResponse {
	status := w.status
	if status == 0 {
		status = http.StatusOK
	}

	resp := events.APIGatewayProxyResponse{
		StatusCode:        status,
		Headers:           make(map[string]string, len(w.header)),
		MultiValueHeaders: make(map[string][]string, len(w.header)),
	}
	for name, values := range w.header {
		resp.Headers[name] = strings.Join(values, ", ")
		resp.MultiValueHeaders[name] = append([]string(nil), values...)
	}

	body := w.body.Bytes()
	if w.header.Get("Content-Encoding") != "" || !utf8.Valid(body) {
		resp.Body = base64.StdEncoding.EncodeToString(body)
		resp.IsBase64Encoded = true
	} else {
		resp.Body = string(body)
	}

	return resp
}
