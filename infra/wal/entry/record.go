package entry

import "time"

// RecordType names the journaled operation.
type RecordType uint8

const (
	RecordDeposit RecordType = iota
	RecordWithdraw
	RecordTake
	RecordBorrow
	RecordRepay
)

func (t RecordType) String() string {
	switch t {
	case RecordDeposit:
		return "DEPOSIT"
	case RecordWithdraw:
		return "WITHDRAW"
	case RecordTake:
		return "TAKE"
	case RecordBorrow:
		return "BORROW"
	case RecordRepay:
		return "REPAY"
	default:
		return "UNKNOWN"
	}
}

// Record is one committed operation. Records are appended only after the
// operation fully succeeded; a rejected operation leaves no trace here.
type Record struct {
	Type RecordType
	Seq  uint64
	Time int64
	Data []byte
}

func NewRecord(t RecordType, seq uint64, data []byte) *Record {
	return &Record{
		Type: t,
		Seq:  seq,
		Time: time.Now().UnixNano(),
		Data: data,
	}
}
