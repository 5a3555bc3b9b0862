// Package printer provides printing transports for receipt tickets.
package printer

import (
	"context"
	"fmt"
	"net"
	"time"

	"minipos/pkg/logger"
)

// TCPTransport sends payloads to a network receipt printer.
// Most thermal printers accept raw payloads on port 9100.
type TCPTransport struct {
	addr    string
	timeout time.Duration
}

// NewTCPTransport creates a transport for the given printer address.
func NewTCPTransport(addr string, timeout time.Duration) *TCPTransport {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &TCPTransport{addr: addr, timeout: timeout}
}

// Send delivers one rendered ticket to the printer.
func (t *TCPTransport) Send(ctx context.Context, payload string) error {
	dialer := net.Dialer{Timeout: t.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", t.addr)
	if err != nil {
		return fmt.Errorf("dial printer %s: %w", t.addr, err)
	}
	defer conn.Close()

	if err := conn.SetWriteDeadline(time.Now().Add(t.timeout)); err != nil {
		return fmt.Errorf("set printer deadline: %w", err)
	}

	if _, err := conn.Write([]byte(payload)); err != nil {
		return fmt.Errorf("write to printer %s: %w", t.addr, err)
	}
	return nil
}

// LogTransport writes payloads to the log instead of a device.
// Used when no printer is configured.
type LogTransport struct{}

// Send logs the payload.
func (LogTransport) Send(ctx context.Context, payload string) error {
	logger.Info(ctx, "ticket rendered (no printer configured)",
		"payload_bytes", len(payload),
	)
	return nil
}
