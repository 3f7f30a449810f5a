package responder_test

import (
	"context"
	"net"

	"github.com/dogmatiq/dodeca/logging"
	"github.com/miekg/dns"

	. "github.com/emanuelduss/llmnr/src/llmnr/responder"
	"github.com/emanuelduss/llmnr/src/llmnr/transport"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Responder", func() {
	var (
		responder *Responder
		source    transport.Endpoint
	)

	BeforeEach(func() {
		var err error
		responder, err = New(
			HostAnswerer{
				"acer-PC.": net.IPv4(192, 168, 1, 4),
			},
			UseInterface(net.Interface{Index: 1, Name: "fake0"}),
			UseLogger(logging.SilentLogger),
		)
		Expect(err).ShouldNot(HaveOccurred())

		source = transport.Endpoint{
			InterfaceIndex: 1,
			Address: &net.UDPAddr{
				IP:   net.IPv4(192, 168, 1, 9),
				Port: 52000,
			},
		}
	})

	Describe("Respond", func() {
		It("answers a query for a known host", func() {
			query := &dns.Msg{}
			query.SetQuestion("acer-PC.", dns.TypeA)

			res, err := responder.Respond(context.Background(), source, query)

			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.Response).To(BeTrue())
			Expect(res.Id).To(Equal(query.Id))
			Expect(res.Question).To(Equal(query.Question))
			Expect(res.Answer).To(HaveLen(1))

			a, ok := res.Answer[0].(*dns.A)
			Expect(ok).To(BeTrue())
			Expect(a.Hdr.Name).To(Equal("acer-PC."))
			Expect(a.A.Equal(net.IPv4(192, 168, 1, 4))).To(BeTrue())
		})

		It("returns an empty response for an unknown host", func() {
			query := &dns.Msg{}
			query.SetQuestion("unknown.", dns.TypeA)

			res, err := responder.Respond(context.Background(), source, query)

			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.Answer).To(BeEmpty())
		})

		It("does not answer questions for other record types", func() {
			query := &dns.Msg{}
			query.SetQuestion("acer-PC.", dns.TypeAAAA)

			res, err := responder.Respond(context.Background(), source, query)

			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.Answer).To(BeEmpty())
		})

		It("rejects queries with a non-zero OPCODE", func() {
			query := &dns.Msg{}
			query.SetQuestion("acer-PC.", dns.TypeA)
			query.Opcode = dns.OpcodeStatus

			_, err := responder.Respond(context.Background(), source, query)
			Expect(err).Should(HaveOccurred())
		})

		It("rejects queries with a non-zero RCODE", func() {
			query := &dns.Msg{}
			query.SetQuestion("acer-PC.", dns.TypeA)
			query.Rcode = dns.RcodeServerFailure

			_, err := responder.Respond(context.Background(), source, query)
			Expect(err).Should(HaveOccurred())
		})
	})
})

var _ = Describe("NewResponse", func() {
	It("echoes the transaction id and question", func() {
		query := &dns.Msg{}
		query.SetQuestion("acer-PC.", dns.TypeA)
		query.Id = 0xbeef

		res := NewResponse(query)

		Expect(res.Id).To(Equal(uint16(0xbeef)))
		Expect(res.Response).To(BeTrue())
		Expect(res.Question).To(Equal(query.Question))
	})

	It("clears the flag bits", func() {
		query := &dns.Msg{}
		query.SetQuestion("acer-PC.", dns.TypeA)
		query.RecursionDesired = true

		res := NewResponse(query)

		Expect(res.Authoritative).To(BeFalse())
		Expect(res.Truncated).To(BeFalse())
		Expect(res.RecursionDesired).To(BeFalse())
		Expect(res.RecursionAvailable).To(BeFalse())
		Expect(res.Rcode).To(Equal(dns.RcodeSuccess))
	})
})

var _ = Describe("UnionAnswerer", func() {
	It("combines answers from each answerer", func() {
		an := UnionAnswerer{
			HostAnswerer{"a.": net.IPv4(10, 0, 0, 1)},
			HostAnswerer{"a.": net.IPv4(10, 0, 0, 2)},
		}

		q := &Question{
			Question: dns.Question{
				Name:   "a.",
				Qtype:  dns.TypeA,
				Qclass: dns.ClassINET,
			},
		}
		a := &Answer{}

		err := an.Answer(context.Background(), q, a)

		Expect(err).ShouldNot(HaveOccurred())
		Expect(a.AnswerSection).To(HaveLen(2))
	})
})
