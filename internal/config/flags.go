package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the configuration flags found in args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-skill-path route the voice platform posts to
//	-max-body-size inbound body limit (e.g., "128KiB")
//	-max-connections concurrent connection limit
//	-request-timeout inbound request timeout (e.g., "15s")
//	-webhook-url downstream webhook URL
//	-webhook-timeout downstream call timeout (e.g., "8s")
//	-verify-signature boolean-like signature verification toggle
//	-skill-id expected application id
//	-intent primary intent name
//	-debug boolean-like debug logging toggle
//	-c/-config config file path (JSON or YAML)
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("voice-bridge", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var skillPath, maxBodySize string
	var maxConnections int
	var requestTimeout time.Duration
	var webhookURL string
	var webhookTimeout time.Duration
	var verifySignature, skillID string
	var intentName, debug string
	var configPath string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&skillPath, "skill-path", "", "Route the voice platform posts to")
	fs.StringVar(&maxBodySize, "max-body-size", "", "Inbound body limit (e.g., 128KiB)")
	fs.IntVar(&maxConnections, "max-connections", 0, "Concurrent connection limit")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.StringVar(&webhookURL, "webhook-url", "", "Downstream webhook URL")
	fs.DurationVar(&webhookTimeout, "webhook-timeout", 0, "Downstream timeout (e.g., 8s)")
	fs.StringVar(&verifySignature, "verify-signature", "", "Signature verification toggle (true/false)")
	fs.StringVar(&skillID, "skill-id", "", "Expected application id")
	fs.StringVar(&intentName, "intent", "", "Primary intent name")
	fs.StringVar(&debug, "debug", "", "Debug logging toggle (true/false)")
	fs.StringVar(&configPath, "c", "", "Config file path")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Debug:      debug,
			IntentName: intentName,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			SkillPath:      skillPath,
			MaxBodySize:    maxBodySize,
			MaxConnections: maxConnections,
			RequestTimeout: requestTimeout,
		},
		Downstream: Downstream{
			WebhookURL: webhookURL,
			Timeout:    webhookTimeout,
		},
		Verification: Verification{
			Signature: verifySignature,
			SkillID:   skillID,
		},
		FilePath: configPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form [host]:port and populates the
// NetAddress. An empty host listens on all interfaces; any other host must be
// "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
