package ops

import (
	"context"
	"crypto/tls"
	"net"
	"strconv"
	"time"
)

// Report is the result of probing the database endpoint. Empty fields are
// omitted from the JSON output.
type Report struct {
	Host       string `json:"host"`
	Port       int    `json:"port"`
	TCP        string `json:"tcp,omitempty"`
	TCPError   string `json:"tcp_error,omitempty"`
	TLSCipher  string `json:"tls_cipher,omitempty"`
	TLSVersion string `json:"tls_version,omitempty"`
	TLSError   string `json:"tls_error,omitempty"`
}

// Probe checks raw TCP reachability of host:port and then attempts a TLS
// handshake, reporting the negotiated cipher and protocol version. Both
// checks run even if the first fails, so the report tells TCP problems
// apart from TLS ones.
func Probe(ctx context.Context, host string, port int, timeout time.Duration, tlsCfg *tls.Config) *Report {
	report := &Report{Host: host, Port: port}
	addr := net.JoinHostPort(host, strconv.Itoa(port))

	dialer := &net.Dialer{Timeout: timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		report.TCPError = err.Error()
	} else {
		report.TCP = "ok"
		conn.Close()
	}

	tlsDialer := &tls.Dialer{
		NetDialer: &net.Dialer{Timeout: timeout},
		Config:    tlsCfg,
	}
	tlsConn, err := tlsDialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		report.TLSError = err.Error()
		return report
	}
	defer tlsConn.Close()

	state := tlsConn.(*tls.Conn).ConnectionState()
	report.TLSCipher = tls.CipherSuiteName(state.CipherSuite)
	report.TLSVersion = tls.VersionName(state.Version)

	return report
}
