package http

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/voice-bridge/internal/config"
	"github.com/MKhiriev/voice-bridge/internal/logger"
	"github.com/MKhiriev/voice-bridge/internal/service"
	"github.com/MKhiriev/voice-bridge/internal/verifier"
)

func TestNewHandler(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Server
		wantPath string
		wantMax  int64
	}{
		{
			name:     "configured path",
			cfg:      config.Server{SkillPath: "/alexa", MaxBodyBytes: 1024},
			wantPath: "/alexa",
			wantMax:  1024,
		},
		{
			name:     "empty path falls back to default",
			cfg:      config.Server{},
			wantPath: config.DefaultSkillPath,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := &service.Services{}
			h := NewHandler(services, verifier.Nop{}, tt.cfg, logger.Nop())

			assert.Equal(t, tt.wantPath, h.skillPath)
			assert.Equal(t, tt.wantMax, h.maxBodyBytes)
			assert.Same(t, services, h.services)
			assert.Equal(t, verifier.Nop{}, h.verifier)
		})
	}
}

func TestHandler_InitRegistersRoutes(t *testing.T) {
	h := NewHandler(&service.Services{}, verifier.Nop{}, config.Server{SkillPath: "/alexa"}, logger.Nop())

	routes := map[string][]string{}
	for _, route := range h.Init().Routes() {
		for method := range route.Handlers {
			routes[route.Pattern] = append(routes[route.Pattern], method)
		}
	}

	assert.Equal(t, map[string][]string{
		"/alexa":   {"POST"},
		"/version": {"GET"},
	}, routes)
}
