package protocol

import (
	"github.com/brimdata/native/block"
	"github.com/brimdata/native/settings"
	"github.com/brimdata/native/wire"
	"github.com/segmentio/ksuid"
	"go.uber.org/zap"
)

// Request is a packet sent by a client.  Write encodes the packet code
// followed by the packet body.
type Request interface {
	Type() ClientPacket
	Write(*wire.Serializer) error
}

type HelloRequest struct {
	ClientName string
	Major      uint64
	Minor      uint64
	Revision   uint64
	Database   string
	User       string
	Password   string
}

func NewHelloRequest(database, user, password string) *HelloRequest {
	return &HelloRequest{
		ClientName: ClientName,
		Major:      VersionMajor,
		Minor:      VersionMinor,
		Revision:   ClientRevision,
		Database:   database,
		User:       user,
		Password:   password,
	}
}

func (*HelloRequest) Type() ClientPacket { return ClientHello }

func (h *HelloRequest) Write(s *wire.Serializer) error {
	if err := s.WriteVarUint(uint64(ClientHello)); err != nil {
		return err
	}
	if err := s.WriteString(h.ClientName); err != nil {
		return err
	}
	for _, v := range []uint64{h.Major, h.Minor, h.Revision} {
		if err := s.WriteVarUint(v); err != nil {
			return err
		}
	}
	for _, v := range []string{h.Database, h.User, h.Password} {
		if err := s.WriteString(v); err != nil {
			return err
		}
	}
	return nil
}

// ClientInfo describes the client issuing a query.
type ClientInfo struct {
	InitialUser    string
	InitialQueryID string
	InitialAddress string
	OSUser         string
	Hostname       string
	ClientName     string
	Major          uint64
	Minor          uint64
	Revision       uint64
	QuotaKey       string
}

func DefaultClientInfo() ClientInfo {
	return ClientInfo{
		InitialAddress: "0.0.0.0:0",
		ClientName:     ClientName,
		Major:          VersionMajor,
		Minor:          VersionMinor,
		Revision:       ClientRevision,
	}
}

const (
	queryKindInitial = 1
	interfaceTCP     = 1
)

func (c *ClientInfo) write(s *wire.Serializer, revision uint64) error {
	if err := s.WriteUint8(queryKindInitial); err != nil {
		return err
	}
	for _, v := range []string{c.InitialUser, c.InitialQueryID, c.InitialAddress} {
		if err := s.WriteString(v); err != nil {
			return err
		}
	}
	if err := s.WriteUint8(interfaceTCP); err != nil {
		return err
	}
	for _, v := range []string{c.OSUser, c.Hostname, c.ClientName} {
		if err := s.WriteString(v); err != nil {
			return err
		}
	}
	for _, v := range []uint64{c.Major, c.Minor, c.Revision} {
		if err := s.WriteVarUint(v); err != nil {
			return err
		}
	}
	if revision >= revisionQuotaKey {
		if err := s.WriteString(c.QuotaKey); err != nil {
			return err
		}
	}
	if revision >= revisionPatch {
		return s.WriteVarUint(0)
	}
	return nil
}

type QueryRequest struct {
	ID          string
	Info        ClientInfo
	Settings    settings.Values
	Stage       Stage
	Compression bool
	Query       string
	// Revision is the revision announced by the server.  Fields are
	// written for the revision negotiated from it.
	Revision uint64
	Logger   *zap.Logger
}

// NewQueryRequest returns a request for query to be processed completely
// under a fresh query ID.
func NewQueryRequest(query string, values settings.Values) *QueryRequest {
	return &QueryRequest{
		ID:       ksuid.New().String(),
		Info:     DefaultClientInfo(),
		Settings: values,
		Stage:    StageComplete,
		Query:    query,
		Revision: ClientRevision,
	}
}

func (*QueryRequest) Type() ClientPacket { return ClientQuery }

func (q *QueryRequest) Write(s *wire.Serializer) error {
	if err := s.WriteVarUint(uint64(ClientQuery)); err != nil {
		return err
	}
	if err := s.WriteString(q.ID); err != nil {
		return err
	}
	rev := Negotiate(q.Revision)
	if rev >= revisionClientInfo {
		if err := q.Info.write(s, rev); err != nil {
			return err
		}
	}
	if err := settings.EncodeAll(s, q.Settings, q.Logger); err != nil {
		return err
	}
	if err := s.WriteVarUint(uint64(q.Stage)); err != nil {
		return err
	}
	if err := s.WriteBool(q.Compression); err != nil {
		return err
	}
	return s.WriteString(q.Query)
}

// DataRequest sends one block of rows to the server.  A request with a nil
// Block sends the empty block that ends an insert.
type DataRequest struct {
	Table string
	Block *block.Block
}

func (*DataRequest) Type() ClientPacket { return ClientData }

func (r *DataRequest) Write(s *wire.Serializer) error {
	if err := s.WriteVarUint(uint64(ClientData)); err != nil {
		return err
	}
	if err := s.WriteString(r.Table); err != nil {
		return err
	}
	if err := writeBlockInfo(s); err != nil {
		return err
	}
	var columns, rows int
	if r.Block != nil {
		columns, rows = r.Block.Len(), r.Block.Rows()
	}
	if err := s.WriteVarUint(uint64(columns)); err != nil {
		return err
	}
	if err := s.WriteVarUint(uint64(rows)); err != nil {
		return err
	}
	if r.Block == nil {
		return nil
	}
	return r.Block.Flush(s)
}

// writeBlockInfo writes the block info fields: is_overflows (field 1) is
// false and bucket_num (field 2) is -1, followed by the end marker.
func writeBlockInfo(s *wire.Serializer) error {
	if err := s.WriteVarUint(1); err != nil {
		return err
	}
	if err := s.WriteBool(false); err != nil {
		return err
	}
	if err := s.WriteVarUint(2); err != nil {
		return err
	}
	if err := s.WriteInt32(-1); err != nil {
		return err
	}
	return s.WriteVarUint(0)
}

type PingRequest struct{}

func (PingRequest) Type() ClientPacket { return ClientPing }

func (PingRequest) Write(s *wire.Serializer) error {
	return s.WriteVarUint(uint64(ClientPing))
}

type CancelRequest struct{}

func (CancelRequest) Type() ClientPacket { return ClientCancel }

func (CancelRequest) Write(s *wire.Serializer) error {
	return s.WriteVarUint(uint64(ClientCancel))
}
