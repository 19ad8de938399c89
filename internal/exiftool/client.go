package exiftool

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// DateFormat is passed to exiftool via -d so every date field is printed
// in a single, parseable layout.
const DateFormat = "%Y:%m:%d %H:%M:%S"

// ErrNoMetadata indicates exiftool could not produce metadata for a file
// (unreadable, unsupported format, or tool failure for that file).
var ErrNoMetadata = errors.New("no metadata available")

// Metadata is the parsed key/value mapping for a single file.
type Metadata map[string]string

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args []string) ([]byte, error)
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, binary, args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = nil
	if err := cmd.Run(); err != nil {
		return stdout.Bytes(), err
	}
	return stdout.Bytes(), nil
}

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// Client wraps per-file exiftool invocations.
type Client struct {
	binary string
	exec   Executor
}

// New resolves the exiftool binary and constructs a client. A resolution
// failure is fatal to the whole run, so it is surfaced here rather than at
// first use.
func New(binary string, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "exiftool"
	}
	client := &Client{exec: commandExecutor{}}
	for _, opt := range opts {
		opt(client)
	}

	// Only resolve through PATH when running real commands; injected
	// executors supply their own notion of the binary.
	if _, real := client.exec.(commandExecutor); real {
		resolved, err := exec.LookPath(binary)
		if err != nil {
			return nil, fmt.Errorf("exiftool not found (looked for %q): %w", binary, err)
		}
		binary = resolved
	}
	client.binary = binary
	return client, nil
}

// Binary returns the resolved exiftool path.
func (c *Client) Binary() string {
	return c.binary
}

// Extract runs exiftool against a single file and parses its textual
// output into a metadata mapping. A tool failure for the file yields
// ErrNoMetadata; the caller is expected to skip the file and continue.
func (c *Client) Extract(ctx context.Context, path string) (Metadata, error) {
	out, err := c.exec.Run(ctx, c.binary, []string{"-d", DateFormat, path})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoMetadata, firstLine(err.Error()))
	}

	md := parseOutput(out)
	if len(md) == 0 {
		return nil, ErrNoMetadata
	}
	return md, nil
}

// parseOutput converts exiftool's "Key  : Value" lines into a map. Lines
// without a colon are ignored.
func parseOutput(out []byte) Metadata {
	md := make(Metadata)
	for _, line := range strings.Split(string(out), "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" {
			continue
		}
		md[key] = value
	}
	return md
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}
