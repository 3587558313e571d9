package tx

import (
	"encoding/binary"
	"fmt"

	"github.com/pkg/errors"

	"github.com/ubaniodeigah/namada/types"
)

// TxType discriminates how a transaction participates in the
// encrypt/decrypt lifecycle of block production.
type TxType byte

const (
	// TxTypeRaw is a plain inner payload, the form a transaction has
	// before it is wrapped for submission.
	TxTypeRaw TxType = iota
	// TxTypeWrapper is an encrypted payload accepted into a block and
	// awaiting decryption.
	TxTypeWrapper
	// TxTypeDecrypted is a wrapper whose payload was revealed and executed
	// during block finalization.
	TxTypeDecrypted
	// TxTypeProtocol is a transaction originated by the protocol itself.
	TxTypeProtocol
)

func (t TxType) String() string {
	switch t {
	case TxTypeRaw:
		return "raw"
	case TxTypeWrapper:
		return "wrapper"
	case TxTypeDecrypted:
		return "decrypted"
	case TxTypeProtocol:
		return "protocol"
	}
	return fmt.Sprintf("unknown(%d)", byte(t))
}

var ErrNotWrapper = errors.New("not a wrapper transaction")

// Header is the authenticated portion of a transaction. Its hash is the
// transaction's identity on the wire.
type Header struct {
	ChainID  string
	Type     TxType
	CodeHash types.Hash
	DataHash types.Hash
}

// Bytes lays the header out in a fixed order for hashing.
func (h Header) Bytes() []byte {
	buf := make([]byte, 0, 8+len(h.ChainID)+1+2*types.HashLength)
	buf = binary.BigEndian.AppendUint64(buf, uint64(len(h.ChainID)))
	buf = append(buf, h.ChainID...)
	buf = append(buf, byte(h.Type))
	buf = append(buf, h.CodeHash.Bytes()...)
	buf = append(buf, h.DataHash.Bytes()...)
	return buf
}

func (h Header) Hash() types.Hash {
	return types.NewHash(h.Bytes())
}

// WithType returns a copy of the header with only the type discriminant
// replaced. All other fields keep their values, so the hash of a raw-typed
// copy stays constant across the encrypt/decrypt lifecycle.
func (h Header) WithType(t TxType) Header {
	h.Type = t
	return h
}

// Tx is a decoded transaction as seen by the finalization pipeline. The
// header commits to the code and data payloads by hash; the payloads
// themselves stay with validity predicates and execution, which live
// elsewhere.
type Tx struct {
	header Header
}

func NewTx(chainID string, txType TxType, code, data []byte) Tx {
	return Tx{
		header: Header{
			ChainID:  chainID,
			Type:     txType,
			CodeHash: types.NewHash(code),
			DataHash: types.NewHash(data),
		},
	}
}

func (t Tx) Header() Header {
	return t.header
}

func (t Tx) Type() TxType {
	return t.header.Type
}

func (t Tx) HeaderHash() types.Hash {
	return t.header.Hash()
}

// UpdateHeader returns a copy of the transaction carrying the given header.
func (t Tx) UpdateHeader(h Header) Tx {
	t.header = h
	return t
}

// Decrypt marks a wrapper transaction as revealed and executed. Only the
// type discriminant changes; the payload hashes committed to at submission
// are kept.
func (t Tx) Decrypt() (Tx, error) {
	if t.header.Type != TxTypeWrapper {
		return Tx{}, errors.Wrapf(ErrNotWrapper, "tx type %s", t.header.Type)
	}
	t.header = t.header.WithType(TxTypeDecrypted)
	return t, nil
}
