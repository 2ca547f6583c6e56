package server

import (
	"fmt"
	"io"
	"strings"
)

// BannerInfo is what the startup banner shows.
type BannerInfo struct {
	Dir   string
	Port  int
	LANIP string
}

// Banner prints the startup banner with the local and LAN URLs.
func Banner(w io.Writer, info BannerInfo) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "🚀 Server Started Successfully!")
	fmt.Fprintf(w, "📂 Serving: %s\n", info.Dir)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "💻 On this computer:  http://localhost:%d\n", info.Port)
	fmt.Fprintf(w, "📱 On your mobile:    http://%s:%d\n", info.LANIP, info.Port)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "Press Ctrl+C to stop the server")
	fmt.Fprintln(w)
}
