package transport

import (
	"net"

	"github.com/dogmatiq/dodeca/logging"
)

func logListening(logger logging.Logger, addr *net.UDPAddr, iface *net.Interface) {
	logging.Debug(
		logger,
		"listening for LLMNR queries on %s (%s)",
		addr,
		iface.Name,
	)
}

func logListenError(logger logging.Logger, addr *net.UDPAddr, err error) {
	logging.Log(
		logger,
		"unable to listen for LLMNR queries on %s: %s",
		addr,
		err,
	)
}

func logJoinError(logger logging.Logger, group net.IP, iface *net.Interface, err error) {
	logging.Log(
		logger,
		"unable to join the '%s' multicast group on the '%s' interface: %s",
		group,
		iface.Name,
		err,
	)
}

func logReadError(logger logging.Logger, addr *net.UDPAddr, err error) {
	logging.Log(
		logger,
		"unable to read LLMNR packet via %s: %s",
		addr,
		err,
	)
}

func logWriteError(logger logging.Logger, dest, addr *net.UDPAddr, err error) {
	logging.Log(
		logger,
		"unable to send LLMNR packet to %s via %s: %s",
		dest,
		addr,
		err,
	)
}

func logCapturing(logger logging.Logger, device, filter string) {
	logging.Debug(
		logger,
		"capturing LLMNR responses on %s with filter '%s'",
		device,
		filter,
	)
}

func logCaptureError(logger logging.Logger, device string, err error) {
	logging.Log(
		logger,
		"unable to capture LLMNR responses on %s: %s",
		device,
		err,
	)
}
