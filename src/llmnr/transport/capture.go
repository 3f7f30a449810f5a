package transport

import (
	"fmt"
	"net"
	"time"

	"github.com/dogmatiq/dodeca/logging"
	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcap"
)

// snapLen is the per-frame capture length. LLMNR messages fit comfortably
// within a single ethernet frame.
const snapLen = 1600

// CaptureSource is a RawFrameSource that reads frames from a live pcap
// handle on a single interface, filtered to LLMNR responses addressed to
// this host.
type CaptureSource struct {
	handle *pcap.Handle
	logger logging.Logger
}

// OpenCapture opens a capture handle on the named interface.
//
// The handle is filtered to UDP frames with source port 5355 destined to
// localAddr, which is how LLMNR responders address their replies. poll
// bounds each read so the caller's deadline check stays responsive.
func OpenCapture(
	device string,
	localAddr net.IP,
	poll time.Duration,
	logger logging.Logger,
) (*CaptureSource, error) {
	handle, err := pcap.OpenLive(device, snapLen, false, poll)
	if err != nil {
		logCaptureError(logger, device, err)
		return nil, err
	}

	filter := CaptureFilter(localAddr)
	if err := handle.SetBPFFilter(filter); err != nil {
		handle.Close()
		logCaptureError(logger, device, err)
		return nil, err
	}

	logCapturing(logger, device, filter)

	return &CaptureSource{
		handle: handle,
		logger: logger,
	}, nil
}

// CaptureFilter returns the BPF filter used to capture LLMNR responses
// destined to localAddr.
func CaptureFilter(localAddr net.IP) string {
	return fmt.Sprintf("udp and src port %d and dst host %s", Port, localAddr)
}

// Poll returns the UDP payload of the next captured frame, or
// ErrPollTimeout if none arrived within the poll interval.
func (s *CaptureSource) Poll() ([]byte, error) {
	data, _, err := s.handle.ReadPacketData()

	if err == pcap.NextErrorTimeoutExpired {
		return nil, ErrPollTimeout
	} else if err != nil {
		return nil, err
	}

	pkt := gopacket.NewPacket(data, s.handle.LinkType(), gopacket.Default)

	udpLayer := pkt.Layer(layers.LayerTypeUDP)
	if udpLayer == nil {
		// The filter should only match UDP, but the link layer may still
		// deliver the occasional frame gopacket cannot walk down to UDP.
		logging.DebugString(s.logger, "discarding captured frame with no UDP layer")
		return nil, ErrPollTimeout
	}

	return udpLayer.(*layers.UDP).Payload, nil
}

// Close releases the capture handle.
func (s *CaptureSource) Close() error {
	s.handle.Close()
	return nil
}
