package protocol

import (
	"errors"
	"fmt"

	"github.com/brimdata/native/wire"
)

var ErrUnsupportedResponse = errors.New("unsupported server packet")

// Response is a packet read from a server.
type Response interface {
	Type() ServerPacket
}

type HelloResponse struct {
	Name        string
	Major       uint64
	Minor       uint64
	Revision    uint64
	Timezone    string
	DisplayName string
	Patch       uint64
}

func (*HelloResponse) Type() ServerPacket { return ServerHello }

type ProgressResponse struct {
	Rows      uint64
	Bytes     uint64
	TotalRows uint64
}

func (*ProgressResponse) Type() ServerPacket { return ServerProgress }

type PongResponse struct{}

func (PongResponse) Type() ServerPacket { return ServerPong }

type EndOfStreamResponse struct{}

func (EndOfStreamResponse) Type() ServerPacket { return ServerEndOfStream }

// ReadResponse reads one server packet.  Revision is the protocol revision
// negotiated with the server and selects the optional fields of a packet.
// Packets carrying blocks are not decoded and yield ErrUnsupportedResponse.
func ReadResponse(d *wire.Deserializer, revision uint64) (Response, error) {
	code, err := d.ReadVarUint()
	if err != nil {
		return nil, err
	}
	switch p := ServerPacket(code); p {
	case ServerHello:
		return readHello(d)
	case ServerException:
		e, err := ReadException(d)
		if err != nil {
			return nil, err
		}
		return &ExceptionResponse{Err: e}, nil
	case ServerProgress:
		return readProgress(d, revision)
	case ServerPong:
		return PongResponse{}, nil
	case ServerEndOfStream:
		return EndOfStreamResponse{}, nil
	case ServerData, ServerProfileInfo, ServerTotals, ServerExtremes:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedResponse, p)
	default:
		return nil, &wire.ProtocolViolationError{Reason: fmt.Sprintf("unknown server packet code %d", code)}
	}
}

func readHello(d *wire.Deserializer) (*HelloResponse, error) {
	var h HelloResponse
	var err error
	if h.Name, err = d.ReadString(); err != nil {
		return nil, err
	}
	for _, p := range []*uint64{&h.Major, &h.Minor, &h.Revision} {
		if *p, err = d.ReadVarUint(); err != nil {
			return nil, err
		}
	}
	rev := Negotiate(h.Revision)
	if rev >= revisionTimezone {
		if h.Timezone, err = d.ReadString(); err != nil {
			return nil, err
		}
	}
	if rev >= revisionDisplayName {
		if h.DisplayName, err = d.ReadString(); err != nil {
			return nil, err
		}
	}
	if rev >= revisionPatch {
		if h.Patch, err = d.ReadVarUint(); err != nil {
			return nil, err
		}
	}
	return &h, nil
}

func readProgress(d *wire.Deserializer, revision uint64) (*ProgressResponse, error) {
	var p ProgressResponse
	var err error
	if p.Rows, err = d.ReadVarUint(); err != nil {
		return nil, err
	}
	if p.Bytes, err = d.ReadVarUint(); err != nil {
		return nil, err
	}
	if Negotiate(revision) >= revisionTotalRows {
		if p.TotalRows, err = d.ReadVarUint(); err != nil {
			return nil, err
		}
	}
	return &p, nil
}
