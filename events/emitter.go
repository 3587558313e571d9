package events

import (
	abcitypes "github.com/cometbft/cometbft/abci/types"
	"go.uber.org/zap"

	"github.com/ubaniodeigah/namada/tx"
)

// Emitter collects the events observed while finalizing one block and
// flushes them to the consensus engine's wire representation in emission
// order. The finalization pipeline drives it sequentially: BeginBlock,
// any number of Emit calls, EndBlock.
type Emitter struct {
	logger *zap.Logger
	log    *Log

	height  uint64
	pending []Event
}

// NewEmitter creates an emitter. log may be nil if block events should not
// be retained for lookups.
func NewEmitter(logger *zap.Logger, log *Log) *Emitter {
	return &Emitter{
		logger: logger,
		log:    log,
	}
}

// BeginBlock starts collecting events for the given height, discarding
// anything left over from an aborted round.
func (em *Emitter) BeginBlock(height uint64) {
	em.height = height
	em.pending = nil
}

// Emit queues an event for the current block.
func (em *Emitter) Emit(event Event) {
	em.logger.Debug("emit event",
		zap.Uint64("height", em.height),
		zap.String("type", event.Type.String()),
		zap.String("level", event.Level.String()),
	)
	em.pending = append(em.pending, event)
}

// EmitTx builds and queues the event for a finalized transaction. The
// returned event can be populated with further attributes until EndBlock.
func (em *Emitter) EmitTx(t tx.Tx) Event {
	event := NewTxEvent(t, em.height)
	em.Emit(event)
	return event
}

// EndBlock hands the block's batch over in wire form and records it to
// the event log.
func (em *Emitter) EndBlock() []abcitypes.Event {
	events := em.pending
	em.pending = nil

	if em.log != nil {
		em.log.Add(em.height, events)
	}

	abciEvents := make([]abcitypes.Event, 0, len(events))
	for _, event := range events {
		abciEvents = append(abciEvents, event.ABCI())
	}
	em.logger.Debug("flush block events",
		zap.Uint64("height", em.height),
		zap.Int("events", len(abciEvents)),
	)
	return abciEvents
}
