package responder

import (
	"context"
	"net"

	"github.com/miekg/dns"
)

// Answerer is an interface that provides answers to LLMNR questions.
type Answerer interface {
	// Answer populates an answer to a single LLMNR question.
	// The implementation must allow concurrent calls.
	Answer(context.Context, *Question, *Answer) error
}

// Question encapsulates an LLMNR question.
type Question struct {
	dns.Question

	Query     *dns.Msg
	Interface net.Interface
}

// Answer is an answer to an LLMNR question.
type Answer struct {
	AnswerSection     []dns.RR
	AuthoritySection  []dns.RR
	AdditionalSection []dns.RR
}

// IsEmpty returns true if the answer does not contain any records.
func (a *Answer) IsEmpty() bool {
	return len(a.AnswerSection) == 0 &&
		len(a.AuthoritySection) == 0 &&
		len(a.AdditionalSection) == 0
}

// Answer appends records to the "answer" section of the answer.
func (a *Answer) Answer(records ...dns.RR) {
	a.AnswerSection = append(a.AnswerSection, records...)
}

// Authority appends records to the "authority" section of the answer.
func (a *Answer) Authority(records ...dns.RR) {
	a.AuthoritySection = append(a.AuthoritySection, records...)
}

// Additional appends records to the "additional" section of the answer.
func (a *Answer) Additional(records ...dns.RR) {
	a.AdditionalSection = append(a.AdditionalSection, records...)
}

// appendToMessage appends the answer's records to m.
func (a *Answer) appendToMessage(m *dns.Msg) {
	m.Answer = append(m.Answer, a.AnswerSection...)
	m.Ns = append(m.Ns, a.AuthoritySection...)
	m.Extra = append(m.Extra, a.AdditionalSection...)
}

// UnionAnswerer is an answerer that combines answers from multiple
// answerers.
type UnionAnswerer []Answerer

// Answer populates an answer to a single LLMNR question.
// The implementation must allow concurrent calls.
func (an UnionAnswerer) Answer(ctx context.Context, q *Question, a *Answer) error {
	for _, x := range an {
		if err := x.Answer(ctx, q, a); err != nil {
			return err
		}
	}

	return nil
}

// HostAnswerer answers A questions for a fixed set of host names.
type HostAnswerer map[string]net.IP

// Answer populates an answer to a single LLMNR question.
func (an HostAnswerer) Answer(ctx context.Context, q *Question, a *Answer) error {
	if q.Qtype != dns.TypeA || q.Qclass != dns.ClassINET {
		return nil
	}

	ip, ok := an[q.Name]
	if !ok {
		return nil
	}

	a.Answer(&dns.A{
		Hdr: dns.RR_Header{
			Name:   q.Name,
			Rrtype: dns.TypeA,
			Class:  dns.ClassINET,
			Ttl:    30,
		},
		A: ip,
	})

	return nil
}
