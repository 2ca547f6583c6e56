package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"syscall"
	"time"
)

// ErrNoFreePort is returned when every candidate port is in use.
var ErrNoFreePort = errors.New("no free port")

// Listen binds host on the first free port in [basePort, basePort+attempts).
// Only "address in use" moves on to the next port; any other bind error is
// returned as is.
func Listen(ctx context.Context, host string, basePort, attempts int, log *slog.Logger) (net.Listener, error) {
	var lc net.ListenConfig
	for port := basePort; port < basePort+attempts; port++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ln, err := lc.Listen(ctx, "tcp", net.JoinHostPort(host, strconv.Itoa(port)))
		if err == nil {
			return ln, nil
		}
		if !errors.Is(err, syscall.EADDRINUSE) {
			return nil, fmt.Errorf("listen on port %d: %w", port, err)
		}
		log.Warn("port busy, trying next", "port", port, "next", port+1)
	}
	return nil, fmt.Errorf("%w in range %d-%d", ErrNoFreePort, basePort, basePort+attempts-1)
}

// Port returns the TCP port a listener is bound to.
func Port(ln net.Listener) int {
	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		return addr.Port
	}
	return 0
}

const loopback = "127.0.0.1"

// LANIP returns the address of the interface the OS would route probeAddr
// through. Dialing UDP sends no packets. Any failure yields 127.0.0.1.
func LANIP(probeAddr string) string {
	conn, err := net.DialTimeout("udp4", probeAddr, 2*time.Second)
	if err != nil {
		return loopback
	}
	defer conn.Close()

	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok || addr.IP == nil || addr.IP.IsUnspecified() {
		return loopback
	}
	return addr.IP.String()
}
