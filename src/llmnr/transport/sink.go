package transport

import "net"

// DatagramSink sends single UDP datagrams.
type DatagramSink interface {
	// Send writes payload as one datagram to addr.
	Send(payload []byte, addr *net.UDPAddr) error
}

// UDPSink is a DatagramSink that opens a fresh UDP association for each
// datagram, writes it, and closes the association.
//
// No response is ever read on this association; LLMNR replies arrive on
// a separate receive path with source port 5355.
type UDPSink struct{}

// Send writes payload as one datagram to addr.
func (UDPSink) Send(payload []byte, addr *net.UDPAddr) error {
	conn, err := net.DialUDP("udp4", nil, addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	_, err = conn.Write(payload)
	return err
}
