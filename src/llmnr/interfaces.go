package llmnr

import (
	"errors"
	"net"
)

// ErrNoInterface indicates that no usable network interface could be
// found for a resolution attempt.
var ErrNoInterface = errors.New("no multicast interface available")

// multicastInterfaces returns the network interfaces that are up and
// support multicast.
func multicastInterfaces() ([]net.Interface, error) {
	candidates, err := net.Interfaces()
	if err != nil {
		return nil, err
	}

	var matches []net.Interface
	const flags = net.FlagUp | net.FlagMulticast

	for _, i := range candidates {
		if (i.Flags & flags) == flags {
			matches = append(matches, i)
		}
	}

	if len(matches) == 0 {
		return nil, ErrNoInterface
	}

	return matches, nil
}

// multicastInterface returns the interface to use for a resolution
// attempt, and this host's IPv4 address on it.
//
// If exactly one candidate interface exists it is used directly.
// Otherwise the routing table is probed by dialing the LLMNR group and
// inspecting which local address the kernel selects, a fairly naive
// approach inherited from probing which interface reaches the internet.
func multicastInterface() (*net.Interface, net.IP, error) {
	candidates, err := multicastInterfaces()
	if err != nil {
		return nil, nil, err
	}

	if len(candidates) == 1 {
		ip, err := interfaceAddr(&candidates[0])
		if err != nil {
			return nil, nil, err
		}
		return &candidates[0], ip, nil
	}

	con, err := net.DialUDP("udp4", nil, IPv4Address)
	if err != nil {
		return nil, nil, err
	}

	ip := con.LocalAddr().(*net.UDPAddr).IP
	con.Close()

	for _, i := range candidates {
		addrs, err := i.Addrs()
		if err != nil {
			continue
		}

		for _, a := range addrs {
			if ipn, ok := a.(*net.IPNet); ok {
				if ipn.IP.Equal(ip) {
					iface := i
					return &iface, ip, nil
				}
			}
		}
	}

	return nil, nil, ErrNoInterface
}

// interfaceAddr returns the first IPv4 address assigned to iface.
func interfaceAddr(iface *net.Interface) (net.IP, error) {
	addrs, err := iface.Addrs()
	if err != nil {
		return nil, err
	}

	for _, a := range addrs {
		if ipn, ok := a.(*net.IPNet); ok {
			if v4 := ipn.IP.To4(); v4 != nil {
				return v4, nil
			}
		}
	}

	return nil, ErrNoInterface
}
