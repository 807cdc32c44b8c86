package utils

import (
	"fmt"
	"net"
	"time"
)

// PingService checks if a service is reachable at the given host and port
func PingService(host, port string, timeout time.Duration) error {
	address := net.JoinHostPort(host, port)

	conn, err := net.DialTimeout("tcp", address, timeout)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", address, err)
	}
	defer conn.Close()

	return nil
}

// PingDatabase checks if the database host is reachable
func PingDatabase(host, port string) error {
	return PingService(host, port, 1500*time.Millisecond)
}
