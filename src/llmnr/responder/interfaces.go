package responder

import (
	"errors"
	"net"
)

// multicastInterface returns the network interface that routes to the
// LLMNR multicast group. This is a fairly naive solution that assumes
// whatever interface the kernel selects to reach the group is the
// appropriate one to answer on.
func multicastInterface() (*net.Interface, error) {
	candidates, err := net.Interfaces()
	if err != nil {
		return nil, err
	}

	con, err := net.Dial("udp4", "224.0.0.252:5355")
	if err != nil {
		return nil, err
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
					return &iface, nil
				}
			}
		}
	}

	return nil, errors.New("could not find an interface that routes to the LLMNR group")
}
