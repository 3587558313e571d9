package events

import "fmt"

// TxEventQuery selects a single transaction's accepted or applied event,
// both for server-side event-log lookups and for rendering the
// subscription query a client sends to the consensus engine's RPC.
type TxEventQuery struct {
	eventType EventType
	txHash    string
}

// AcceptedQuery matches the accepted event of the given tx hash.
func AcceptedQuery(txHash string) TxEventQuery {
	return TxEventQuery{eventType: TypeAccepted, txHash: txHash}
}

// AppliedQuery matches the applied event of the given tx hash.
func AppliedQuery(txHash string) TxEventQuery {
	return TxEventQuery{eventType: TypeApplied, txHash: txHash}
}

func (q TxEventQuery) EventType() EventType {
	return q.eventType
}

func (q TxEventQuery) TxHash() string {
	return q.txHash
}

// String renders the query in the consensus engine's subscription query
// language.
func (q TxEventQuery) String() string {
	return fmt.Sprintf("tm.event = 'Tx' AND %s.%s = '%s'", q.eventType, AttributeKeyHash, q.txHash)
}

// Matches reports whether event is the one this query selects.
func (q TxEventQuery) Matches(event Event) bool {
	if event.Type != q.eventType {
		return false
	}
	hash, ok := event.Get(AttributeKeyHash)
	return ok && hash == q.txHash
}
