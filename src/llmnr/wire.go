package llmnr

import (
	"encoding/binary"
	"errors"
	"net"

	"github.com/emanuelduss/llmnr/src/names"
)

// QTypeA is the question type for IPv4 host address records.
const QTypeA = 0x0001

// QClassIN is the "internet" question class.
const QClassIN = 0x0001

// headerLen is the length of an LLMNR message header.
//
// The header layout is shared with DNS: ID, FLAGS, QDCOUNT, ANCOUNT,
// NSCOUNT and ARCOUNT, all big-endian uint16.
//
// See https://tools.ietf.org/html/rfc4795#section-2.1.1.
const headerLen = 12

// qrBit is the bit within the FLAGS field that distinguishes responses
// from queries.
const qrBit = 1 << 15

var (
	// ErrNotAResponse indicates that a message is not an LLMNR response to
	// exactly one question, and should be skipped.
	ErrNotAResponse = errors.New("message is not an LLMNR response")

	// ErrTruncated indicates that a message ended before all of its declared
	// content could be read, and should be skipped.
	ErrTruncated = errors.New("LLMNR message is truncated")
)

// EncodeQuery encodes an LLMNR query for hostname as a UDP payload.
//
// The payload is the 12-byte header followed by a single A/IN question
// for hostname. It panics if hostname is not a valid single-label host
// name; validate at the boundary with names.ParseHost.
func EncodeQuery(id uint16, hostname string) []byte {
	if err := names.Host(hostname).Validate(); err != nil {
		panic(err)
	}

	b := make([]byte, headerLen, headerLen+1+len(hostname)+4)

	binary.BigEndian.PutUint16(b[0:], id)
	// FLAGS is zero: QR=0 (query), OPCODE=0, and LLMNR queries never
	// request recursion.
	binary.BigEndian.PutUint16(b[4:], 1) // QDCOUNT

	b = append(b, byte(len(hostname)))
	b = append(b, hostname...)
	b = append(b, 0x00, QTypeA, 0x00, QClassIN)

	return b
}

// DecodeResponse extracts a Response from the UDP payload beginning at
// offset within frame.
//
// A message is accepted if the QR bit of its FLAGS field is set and its
// QDCOUNT is exactly one. The echoed question is skipped; the answer
// record's owner name (with its original case) and 4-byte IPv4 address
// are returned. The transaction id, question type/class and answer
// type/class/TTL are not validated, and name compression is not
// supported: the decoder expects a single A answer record immediately
// following the question, which matches what LLMNR responders send in
// practice.
//
// It returns ErrNotAResponse or ErrTruncated for messages that should be
// skipped; neither is fatal to a listen loop.
func DecodeResponse(frame []byte, offset int) (Response, error) {
	if offset < 0 || offset > len(frame) {
		return Response{}, ErrTruncated
	}

	p := frame[offset:]
	if len(p) < headerLen {
		return Response{}, ErrTruncated
	}

	flags := binary.BigEndian.Uint16(p[2:])
	qdcount := binary.BigEndian.Uint16(p[4:])

	if flags&qrBit == 0 || qdcount != 1 {
		return Response{}, ErrNotAResponse
	}

	pos := headerLen

	// Echoed question: length-prefixed name, then QTYPE and QCLASS.
	_, pos, err := readName(p, pos)
	if err != nil {
		return Response{}, err
	}
	pos, err = skip(p, pos, 4)
	if err != nil {
		return Response{}, err
	}

	// Answer record: TYPE, CLASS, TTL and RDLENGTH precede the owner name
	// in this layout.
	pos, err = skip(p, pos, 10)
	if err != nil {
		return Response{}, err
	}

	name, pos, err := readName(p, pos)
	if err != nil {
		return Response{}, err
	}

	if pos+4 > len(p) {
		return Response{}, ErrTruncated
	}

	addr := make(net.IP, 4)
	copy(addr, p[pos:pos+4])

	return Response{
		Hostname: name,
		Addr:     addr,
	}, nil
}

// readName reads a length-prefixed name from p at pos.
func readName(p []byte, pos int) (string, int, error) {
	if pos >= len(p) {
		return "", 0, ErrTruncated
	}

	n := int(p[pos])
	pos++

	if pos+n > len(p) {
		return "", 0, ErrTruncated
	}

	return string(p[pos : pos+n]), pos + n, nil
}

// skip advances pos by n bytes, verifying that they exist.
func skip(p []byte, pos, n int) (int, error) {
	if pos+n > len(p) {
		return 0, ErrTruncated
	}

	return pos + n, nil
}
