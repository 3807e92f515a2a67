package utils

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"net"
	"sync/atomic"
	"time"
)

var requestSeq uint64

// ParseAddress parses an address string (IP:port) into IP and port
func ParseAddress(address string) (string, int, error) {
	host, portStr, err := net.SplitHostPort(address)
	if err != nil {
		return "", 0, err
	}

	port := 0
	if portStr != "" {
		_, err := fmt.Sscanf(portStr, "%d", &port)
		if err != nil {
			return "", 0, err
		}
	}

	return host, port, nil
}

// FormatAddress formats IP and port into an address string
func FormatAddress(ip string, port int) string {
	return net.JoinHostPort(ip, fmt.Sprintf("%d", port))
}

// ValidateIP validates if a string is a valid IP address
func ValidateIP(ip string) bool {
	return net.ParseIP(ip) != nil
}

// ValidatePort validates if a port number is in valid range
func ValidatePort(port int) bool {
	return port > 0 && port <= 65535
}

// IsIPv4 checks if an IP address is IPv4
func IsIPv4(ip string) bool {
	ipAddr := net.ParseIP(ip)
	return ipAddr != nil && ipAddr.To4() != nil
}

// IsIPv6 checks if an IP address is IPv6
func IsIPv6(ip string) bool {
	ipAddr := net.ParseIP(ip)
	return ipAddr != nil && ipAddr.To16() != nil && ipAddr.To4() == nil
}

// IsWildcard checks if an IP string denotes a bind on all interfaces.
// An empty string means the listener was given no interface, which
// net.Listen treats the same as "::" or "0.0.0.0".
func IsWildcard(ip string) bool {
	if ip == "" {
		return true
	}
	ipAddr := net.ParseIP(ip)
	return ipAddr != nil && ipAddr.IsUnspecified()
}

// GenerateRequestID generates a unique request ID for log correlation.
// A sequence number breaks ties between requests arriving in the same
// clock tick.
func GenerateRequestID(prefix string) string {
	seq := atomic.AddUint64(&requestSeq, 1)
	data := fmt.Sprintf("%s%d-%d", prefix, time.Now().UnixNano(), seq)
	hash := md5.Sum([]byte(data))
	return hex.EncodeToString(hash[:8])
}
