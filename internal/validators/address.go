package validators

import (
	"fmt"
	"net"
	"net/netip"
	"strings"

	"github.com/MKhiriev/go-appium-service/models"
)

// NormalizeAddress validates a bind address.
//
// A blank address is replaced by [models.DefaultLocalIPAddress]. Any other
// value is returned unchanged if it is an IPv4 or IPv6 literal and rejected
// with ErrInvalidAddress otherwise. Host names are not accepted.
func NormalizeAddress(address string) (string, error) {
	if strings.TrimSpace(address) == "" {
		return models.DefaultLocalIPAddress, nil
	}

	if !isIPAddress(address) && !isIPv4Address(address) && !isIPv6Address(address) {
		return "", fmt.Errorf("%w: the invalid IP address %s is defined", ErrInvalidAddress, address)
	}

	return address, nil
}

func isIPAddress(address string) bool {
	return net.ParseIP(address) != nil
}

func isIPv4Address(address string) bool {
	addr, err := netip.ParseAddr(address)
	return err == nil && addr.Is4()
}

// isIPv6Address also accepts scoped addresses such as fe80::1%eth0,
// which net.ParseIP rejects.
func isIPv6Address(address string) bool {
	addr, err := netip.ParseAddr(address)
	return err == nil && addr.Is6()
}
