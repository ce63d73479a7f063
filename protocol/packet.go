// Package protocol implements the packets exchanged with a server over the
// native protocol: the requests a client sends, the responses it reads
// back, and the decoding of server exceptions.
package protocol

import "fmt"

const (
	ClientName     = "native-go"
	VersionMajor   = 1
	VersionMinor   = 0
	ClientRevision = 54380
)

// Negotiate returns the revision both sides speak once a server has
// announced its revision in Hello.  Optional packet fields are present
// only from the negotiated revision.
func Negotiate(serverRevision uint64) uint64 {
	return min(serverRevision, ClientRevision)
}

// Revisions from which optional packet fields are present.
const (
	revisionTotalRows   = 51554
	revisionClientInfo  = 54032
	revisionTimezone    = 54058
	revisionQuotaKey    = 54060
	revisionDisplayName = 54372
	revisionPatch       = 54401
)

type ClientPacket uint64

const (
	ClientHello ClientPacket = iota
	ClientQuery
	ClientData
	ClientCancel
	ClientPing
)

func (p ClientPacket) String() string {
	switch p {
	case ClientHello:
		return "Hello"
	case ClientQuery:
		return "Query"
	case ClientData:
		return "Data"
	case ClientCancel:
		return "Cancel"
	case ClientPing:
		return "Ping"
	}
	return fmt.Sprintf("ClientPacket(%d)", uint64(p))
}

type ServerPacket uint64

const (
	ServerHello ServerPacket = iota
	ServerData
	ServerException
	ServerProgress
	ServerPong
	ServerEndOfStream
	ServerProfileInfo
	ServerTotals
	ServerExtremes
)

func (p ServerPacket) String() string {
	switch p {
	case ServerHello:
		return "Hello"
	case ServerData:
		return "Data"
	case ServerException:
		return "Exception"
	case ServerProgress:
		return "Progress"
	case ServerPong:
		return "Pong"
	case ServerEndOfStream:
		return "EndOfStream"
	case ServerProfileInfo:
		return "ProfileInfo"
	case ServerTotals:
		return "Totals"
	case ServerExtremes:
		return "Extremes"
	}
	return fmt.Sprintf("ServerPacket(%d)", uint64(p))
}

// Stage is the query processing stage a client asks the server to reach.
type Stage uint64

const (
	StageFetchColumns Stage = iota
	StageWithMergeableState
	StageComplete
)
