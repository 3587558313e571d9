// Package events models everything the ledger emits for external
// subscribers to observe, and its conversions to and from the consensus
// engine's wire representation.
package events

import (
	"fmt"
	"sort"
	"strconv"

	abcitypes "github.com/cometbft/cometbft/abci/types"

	"github.com/ubaniodeigah/namada/gov"
	"github.com/ubaniodeigah/namada/ibc"
	"github.com/ubaniodeigah/namada/tx"
)

// Level records whether an event is about a finalized block or an
// individual transaction within one. It is fixed at construction.
type Level uint8

const (
	LevelBlock Level = iota
	LevelTx
)

func (l Level) String() string {
	switch l {
	case LevelBlock:
		return "block"
	case LevelTx:
		return "tx"
	}
	return fmt.Sprintf("level(%d)", uint8(l))
}

type eventKind uint8

const (
	kindAccepted eventKind = iota
	kindApplied
	kindIbc
	kindProposal
)

// EventType is the closed set of event kinds the ledger emits. Its string
// rendering is stable and used verbatim as the abci event type field.
type EventType struct {
	kind    eventKind
	ibcType string
}

var (
	// TypeAccepted marks a transaction accepted into a block.
	TypeAccepted = EventType{kind: kindAccepted}
	// TypeApplied marks a transaction applied during block finalization.
	TypeApplied = EventType{kind: kindApplied}
	// TypeProposal marks an executed governance proposal.
	TypeProposal = EventType{kind: kindProposal}
)

// TypeIbc carries an IBC event type string, rendered verbatim.
func TypeIbc(eventType string) EventType {
	return EventType{kind: kindIbc, ibcType: eventType}
}

func (t EventType) String() string {
	switch t.kind {
	case kindAccepted:
		return "accepted"
	case kindApplied:
		return "applied"
	case kindIbc:
		return t.ibcType
	case kindProposal:
		return "proposal"
	}
	panic(fmt.Sprintf("unknown event kind %d", t.kind))
}

// attribute keys common to all tx events
const (
	AttributeKeyHash   = "hash"
	AttributeKeyHeight = "height"
	AttributeKeyLog    = "log"
)

// Event is emitted for everything the ledger wants subscribers to observe:
// accepted and applied transactions, IBC effects and executed governance
// proposals. An event is built by the code path that observed the effect,
// populated during construction and then handed to the consensus engine's
// event sink unchanged.
type Event struct {
	Type       EventType
	Level      Level
	Attributes Attributes
}

// NewTxEvent builds the event for a transaction at the given finalized
// block height. Wrapper transactions are reported accepted under their
// header hash. Decrypted transactions are reported applied under the hash
// of a raw-typed copy of their header, which is the hash the transaction
// had when originally submitted encrypted. Protocol transactions are
// reported applied under their header hash.
func NewTxEvent(t tx.Tx, height uint64) Event {
	var event Event
	switch t.Type() {
	case tx.TxTypeWrapper:
		event = Event{
			Type:       TypeAccepted,
			Level:      LevelTx,
			Attributes: make(Attributes),
		}
		event.Set(AttributeKeyHash, t.HeaderHash().String())
	case tx.TxTypeDecrypted:
		event = Event{
			Type:       TypeApplied,
			Level:      LevelTx,
			Attributes: make(Attributes),
		}
		rawHash := t.UpdateHeader(t.Header().WithType(tx.TxTypeRaw)).HeaderHash()
		event.Set(AttributeKeyHash, rawHash.String())
	case tx.TxTypeProtocol:
		event = Event{
			Type:       TypeApplied,
			Level:      LevelTx,
			Attributes: make(Attributes),
		}
		event.Set(AttributeKeyHash, t.HeaderHash().String())
	default:
		panic(fmt.Sprintf("tx type %s cannot produce an event", t.Type()))
	}
	event.Set(AttributeKeyHeight, strconv.FormatUint(height, 10))
	event.Set(AttributeKeyLog, "")
	return event
}

// FromIBC lifts an IBC effect into a tx-level event. The effect's own type
// string and attribute map are taken over verbatim.
func FromIBC(e ibc.Event) Event {
	return Event{
		Type:       TypeIbc(e.Type),
		Level:      LevelTx,
		Attributes: Attributes(e.Attributes),
	}
}

// FromProposal lifts a proposal-execution effect into a block-level event.
func FromProposal(e gov.ProposalEvent) Event {
	return Event{
		Type:       TypeProposal,
		Level:      LevelBlock,
		Attributes: Attributes(e.Attributes),
	}
}

// Set inserts the key if absent and overwrites its value.
func (e Event) Set(key, value string) {
	e.Attributes[key] = value
}

// Get returns the value for key, if present.
func (e Event) Get(key string) (string, bool) {
	value, ok := e.Attributes[key]
	return value, ok
}

func (e Event) ContainsKey(key string) bool {
	_, ok := e.Attributes[key]
	return ok
}

// MustGet returns the value for a key whose presence is guaranteed by
// construction. It panics on an absent key; probe with Get or ContainsKey
// when presence is not guaranteed.
func (e Event) MustGet(key string) string {
	value, ok := e.Attributes[key]
	if !ok {
		panic(fmt.Sprintf("event attribute %q not set", key))
	}
	return value
}

// ABCI renders the event in the consensus engine's wire representation.
// Every attribute is marked indexed so subscribers can query on it.
// Attributes are emitted in key order to keep a conversion reproducible.
func (e Event) ABCI() abcitypes.Event {
	keys := make([]string, 0, len(e.Attributes))
	for key := range e.Attributes {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	attributes := make([]abcitypes.EventAttribute, 0, len(keys))
	for _, key := range keys {
		attributes = append(attributes, abcitypes.EventAttribute{
			Key:   key,
			Value: e.Attributes[key],
			Index: true,
		})
	}
	return abcitypes.Event{
		Type:       e.Type.String(),
		Attributes: attributes,
	}
}
