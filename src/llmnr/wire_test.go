package llmnr_test

import (
	"encoding/binary"
	"net"

	. "github.com/emanuelduss/llmnr/src/llmnr"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// encodeResponseFrame builds a response payload in the layout produced by
// real LLMNR responders, as consumed by DecodeResponse: header, echoed
// question, then a single A answer record.
func encodeResponseFrame(
	id uint16,
	flags uint16,
	qdcount uint16,
	question string,
	answer string,
	addr net.IP,
) []byte {
	b := make([]byte, 12)
	binary.BigEndian.PutUint16(b[0:], id)
	binary.BigEndian.PutUint16(b[2:], flags)
	binary.BigEndian.PutUint16(b[4:], qdcount)
	binary.BigEndian.PutUint16(b[6:], 1) // ANCOUNT

	b = append(b, byte(len(question)))
	b = append(b, question...)
	b = append(b, 0x00, 0x01, 0x00, 0x01) // QTYPE, QCLASS

	b = append(b,
		0x00, 0x01, // TYPE
		0x00, 0x01, // CLASS
		0x00, 0x00, 0x00, 0x1e, // TTL
		0x00, 0x04, // RDLENGTH
	)
	b = append(b, byte(len(answer)))
	b = append(b, answer...)
	b = append(b, addr.To4()...)

	return b
}

var _ = Describe("EncodeQuery", func() {
	It("encodes a single-question query", func() {
		b := EncodeQuery(0x1234, "acer-PC")

		Expect(b).To(Equal([]byte{
			0x12, 0x34, // transaction id
			0x00, 0x00, // flags
			0x00, 0x01, // QDCOUNT
			0x00, 0x00, // ANCOUNT
			0x00, 0x00, // NSCOUNT
			0x00, 0x00, // ARCOUNT
			0x07, 'a', 'c', 'e', 'r', '-', 'P', 'C',
			0x00, 0x01, // QTYPE (A)
			0x00, 0x01, // QCLASS (IN)
		}))
	})

	It("panics if the hostname is empty", func() {
		Expect(func() {
			EncodeQuery(1, "")
		}).To(Panic())
	})

	It("panics if the hostname exceeds 255 bytes", func() {
		n := make([]byte, 256)
		for i := range n {
			n[i] = 'x'
		}

		Expect(func() {
			EncodeQuery(1, string(n))
		}).To(Panic())
	})
})

var _ = Describe("DecodeResponse", func() {
	It("recovers the answer name and address from a response to an encoded query", func() {
		frame := encodeResponseFrame(
			0x1234,
			0x8000,
			1,
			"acer-PC",
			"acer-PC",
			net.IPv4(192, 168, 1, 4),
		)

		res, err := DecodeResponse(frame, 0)

		Expect(err).ShouldNot(HaveOccurred())
		Expect(res.Hostname).To(Equal("acer-PC"))
		Expect(res.Addr.String()).To(Equal("192.168.1.4"))
	})

	It("preserves the case of the answer name, not the question", func() {
		frame := encodeResponseFrame(
			0xbeef,
			0x8000,
			1,
			"acer-pc",
			"Acer-PC",
			net.IPv4(10, 0, 0, 9),
		)

		res, err := DecodeResponse(frame, 0)

		Expect(err).ShouldNot(HaveOccurred())
		Expect(res.Hostname).To(Equal("Acer-PC"))
	})

	It("reads the payload from the given offset", func() {
		frame := encodeResponseFrame(
			0x0001,
			0x8000,
			1,
			"host",
			"host",
			net.IPv4(172, 16, 0, 1),
		)
		padded := append(make([]byte, 8), frame...)

		res, err := DecodeResponse(padded, 8)

		Expect(err).ShouldNot(HaveOccurred())
		Expect(res.Hostname).To(Equal("host"))
		Expect(res.Addr.String()).To(Equal("172.16.0.1"))
	})

	It("rejects messages without the QR bit set", func() {
		for _, flags := range []uint16{0x0000, 0x0100, 0x7fff} {
			frame := encodeResponseFrame(
				0x0001,
				flags,
				1,
				"host",
				"host",
				net.IPv4(10, 0, 0, 1),
			)

			_, err := DecodeResponse(frame, 0)
			Expect(err).To(Equal(ErrNotAResponse))
		}
	})

	It("rejects messages that do not contain exactly one question", func() {
		for _, qd := range []uint16{0, 2, 0xffff} {
			frame := encodeResponseFrame(
				0x0001,
				0x8000,
				qd,
				"host",
				"host",
				net.IPv4(10, 0, 0, 1),
			)

			_, err := DecodeResponse(frame, 0)
			Expect(err).To(Equal(ErrNotAResponse))
		}
	})

	It("rejects every truncated prefix of a valid response", func() {
		frame := encodeResponseFrame(
			0x0001,
			0x8000,
			1,
			"acer-PC",
			"acer-PC",
			net.IPv4(192, 168, 1, 4),
		)

		for i := 0; i < len(frame); i++ {
			_, err := DecodeResponse(frame[:i], 0)
			Expect(err).To(Equal(ErrTruncated), "prefix of length %d", i)
		}
	})

	It("rejects an offset beyond the end of the frame", func() {
		_, err := DecodeResponse([]byte{0x00}, 2)
		Expect(err).To(Equal(ErrTruncated))
	})

	It("rejects a negative offset", func() {
		_, err := DecodeResponse([]byte{0x00}, -1)
		Expect(err).To(Equal(ErrTruncated))
	})
})
