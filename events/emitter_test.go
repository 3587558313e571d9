package events

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ubaniodeigah/namada/gov"
	"github.com/ubaniodeigah/namada/ibc"
	"github.com/ubaniodeigah/namada/tx"
)

func TestEmitterEndBlock(t *testing.T) {
	log := NewLog(0)
	emitter := NewEmitter(zaptest.NewLogger(t), log)

	wrapper := tx.NewTx("testchain", tx.TxTypeWrapper, []byte("code"), []byte("data"))

	emitter.BeginBlock(5)
	accepted := emitter.EmitTx(wrapper)
	emitter.Emit(FromIBC(ibc.NewEvent(ibc.EventTypeSendPacket, map[string]string{
		ibc.AttributeKeySequence: "1",
	})))
	emitter.Emit(FromProposal(gov.NewProposalEvent(2, "proposal_passed", false, false)))

	wireEvents := emitter.EndBlock()
	require.Len(t, wireEvents, 3)

	// emission order is preserved on the wire
	require.Equal(t, "accepted", wireEvents[0].Type)
	require.Equal(t, ibc.EventTypeSendPacket, wireEvents[1].Type)
	require.Equal(t, "proposal", wireEvents[2].Type)

	// the block's events were recorded for lookups
	found, height, ok := log.Find(AcceptedQuery(accepted.MustGet(AttributeKeyHash)))
	require.True(t, ok)
	require.Equal(t, uint64(5), height)
	require.Equal(t, accepted, found)

	// the batch was flushed
	require.Empty(t, emitter.EndBlock())
}

func TestEmitterTxEventHeight(t *testing.T) {
	emitter := NewEmitter(zaptest.NewLogger(t), nil)
	wrapper := tx.NewTx("testchain", tx.TxTypeWrapper, []byte("code"), []byte("data"))

	emitter.BeginBlock(17)
	event := emitter.EmitTx(wrapper)
	require.Equal(t, "17", event.MustGet(AttributeKeyHeight))

	// attributes set after emission still reach the wire batch
	event.Set("gas_used", "1200")
	wireEvents := emitter.EndBlock()
	require.Len(t, wireEvents, 1)
	found := false
	for _, attr := range wireEvents[0].Attributes {
		if attr.Key == "gas_used" {
			require.Equal(t, "1200", attr.Value)
			found = true
		}
	}
	require.True(t, found)
}

func TestEmitterBeginBlockDiscardsPending(t *testing.T) {
	emitter := NewEmitter(zaptest.NewLogger(t), nil)
	wrapper := tx.NewTx("testchain", tx.TxTypeWrapper, []byte("code"), []byte("data"))

	emitter.BeginBlock(1)
	emitter.EmitTx(wrapper)

	// aborted round, start over
	emitter.BeginBlock(2)
	require.Empty(t, emitter.EndBlock())
}

func TestEmitterLogging(t *testing.T) {
	core, recorded := observer.New(zap.DebugLevel)
	emitter := NewEmitter(zap.New(core), nil)
	wrapper := tx.NewTx("testchain", tx.TxTypeWrapper, []byte("code"), []byte("data"))

	emitter.BeginBlock(3)
	emitter.EmitTx(wrapper)
	emitter.EndBlock()

	require.Equal(t, 1, recorded.FilterMessage("emit event").Len())
	require.Equal(t, 1, recorded.FilterMessage("flush block events").Len())
}
