package llmnr

import "net"

// Port is the LLMNR port number.
const Port = 5355

var (
	// IPv4Group is the multicast group used for LLMNR over IPv4.
	//
	// See https://tools.ietf.org/html/rfc4795#section-2.
	IPv4Group = net.ParseIP("224.0.0.252")

	// IPv4Address is the address to which LLMNR queries are sent when using
	// IPv4.
	//
	// See https://tools.ietf.org/html/rfc4795#section-2.
	IPv4Address = &net.UDPAddr{IP: IPv4Group, Port: Port}
)
