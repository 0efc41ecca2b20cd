// Package netbench probes TCP round-trip performance against a remote
// host. Its round-trip time feeds the cross-domain comparison next to the
// memory benchmark as an opaque timing source.
package netbench

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/shivanshkc/membench/pkg/timer"
)

const (
	dialTimeout = 5 * time.Second
	readTimeout = 2 * time.Second
)

var (
	// ErrZeroPayloadSize is returned when the payload size is not positive.
	ErrZeroPayloadSize = errors.New("payload size must be greater than 0")
	// ErrZeroIterations is returned when the iteration count is not positive.
	ErrZeroIterations = errors.New("iterations must be greater than 0")
	// ErrAllCyclesFailed is returned when no connection cycle of a probe
	// loop succeeded.
	ErrAllCyclesFailed = errors.New("all connection attempts failed")
)

// Results holds the outcome of a network probe.
type Results struct {
	TargetHost          string  `json:"target_host"`
	TargetPort          int     `json:"target_port"`
	PayloadSizeBytes    int     `json:"payload_size_bytes"`
	Iterations          int     `json:"iterations"`
	ConnectionTimeMs    float64 `json:"connection_time_ms"`
	SendTimeMs          float64 `json:"send_time_ms"`
	ReceiveTimeMs       float64 `json:"receive_time_ms"`
	RoundTripTimeMs     float64 `json:"round_trip_time_ms"`
	AvgConnectionTimeMs float64 `json:"avg_connection_time_ms"`
	MinConnectionTimeMs float64 `json:"min_connection_time_ms"`
	MaxConnectionTimeMs float64 `json:"max_connection_time_ms"`
	EchoReceived        bool    `json:"echo_received"`
	Successful          bool    `json:"successful"`
}

// Probe performs a single timed connect-send-receive exchange.
//
// The receive leg is best effort: most servers do not echo, so a missing
// echo only clears EchoReceived. A failed connect or send is an error.
// The context applies to the dial; the exchange itself runs under fixed
// deadlines.
func Probe(ctx context.Context, host string, port, payloadSizeBytes int) (Results, error) {
	results := Results{
		TargetHost:       host,
		TargetPort:       port,
		PayloadSizeBytes: payloadSizeBytes,
		Iterations:       1,
	}

	if payloadSizeBytes <= 0 {
		return results, ErrZeroPayloadSize
	}

	var connectTimer timer.Timer
	connectTimer.Start()

	dialer := net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return results, fmt.Errorf("failed to connect to %s:%d: %w", host, port, err)
	}
	defer func() { _ = conn.Close() }()

	connectionMs := connectTimer.ElapsedMilliseconds()
	results.ConnectionTimeMs = connectionMs
	results.AvgConnectionTimeMs = connectionMs
	results.MinConnectionTimeMs = connectionMs
	results.MaxConnectionTimeMs = connectionMs

	payload := make([]byte, payloadSizeBytes)
	for i := range payload {
		payload[i] = byte(i)
	}

	var roundTripTimer timer.Timer
	roundTripTimer.Start()

	var sendTimer timer.Timer
	sendTimer.Start()
	if _, err := conn.Write(payload); err != nil {
		return results, fmt.Errorf("failed to send payload: %w", err)
	}
	results.SendTimeMs = sendTimer.ElapsedMilliseconds()

	// Best-effort echo read. A timeout or short read here is normal.
	var receiveTimer timer.Timer
	receiveTimer.Start()
	_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
	recvBuf := make([]byte, payloadSizeBytes)
	if _, err := conn.Read(recvBuf); err == nil {
		results.EchoReceived = true
	}
	results.ReceiveTimeMs = receiveTimer.ElapsedMilliseconds()

	results.RoundTripTimeMs = roundTripTimer.ElapsedMilliseconds()
	results.Successful = true

	return results, nil
}

// ProbeLoop performs `iterations` full connect-send-close cycles and
// summarizes the connection time across the successful ones. Individual
// cycle failures are tolerated; only a loop with zero successful cycles
// is an error.
func ProbeLoop(ctx context.Context, host string, port, iterations, payloadSizeBytes int) (Results, error) {
	results := Results{
		TargetHost:       host,
		TargetPort:       port,
		PayloadSizeBytes: payloadSizeBytes,
		Iterations:       iterations,
	}

	if iterations <= 0 {
		return results, ErrZeroIterations
	}
	if payloadSizeBytes <= 0 {
		return results, ErrZeroPayloadSize
	}

	var (
		successful int
		totalMs    float64
		minMs      float64
		maxMs      float64
	)

	for i := 0; i < iterations; i++ {
		cycleMs, err := connectionCycle(ctx, host, port, payloadSizeBytes)
		if err != nil {
			continue
		}

		if successful == 0 || cycleMs < minMs {
			minMs = cycleMs
		}
		if successful == 0 || cycleMs > maxMs {
			maxMs = cycleMs
		}

		successful++
		totalMs += cycleMs
	}

	if successful == 0 {
		return results, ErrAllCyclesFailed
	}

	avgMs := totalMs / float64(successful)
	results.AvgConnectionTimeMs = avgMs
	results.MinConnectionTimeMs = minMs
	results.MaxConnectionTimeMs = maxMs
	results.ConnectionTimeMs = avgMs
	results.RoundTripTimeMs = avgMs
	results.EchoReceived = true
	results.Successful = true

	return results, nil
}

// connectionCycle times one full connect-send-close exchange.
func connectionCycle(ctx context.Context, host string, port, payloadSizeBytes int) (float64, error) {
	var t timer.Timer
	t.Start()

	dialer := net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return 0, err
	}
	defer func() { _ = conn.Close() }()

	payload := make([]byte, payloadSizeBytes)
	for i := range payload {
		payload[i] = byte(i)
	}

	if _, err := conn.Write(payload); err != nil {
		return 0, err
	}

	return t.ElapsedMilliseconds(), nil
}
