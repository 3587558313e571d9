package ibc

// packet and channel event types emitted by the IBC module
const (
	EventTypeSendPacket        = "send_packet"
	EventTypeRecvPacket        = "recv_packet"
	EventTypeWriteAck          = "write_acknowledgement"
	EventTypeAcknowledgePacket = "acknowledge_packet"
	EventTypeTimeoutPacket     = "timeout_packet"
	EventTypeChannelClosed     = "channel_closed"
)

const (
	AttributeKeySequence      = "packet_sequence"
	AttributeKeySrcPort       = "packet_src_port"
	AttributeKeySrcChannel    = "packet_src_channel"
	AttributeKeyDstPort       = "packet_dst_port"
	AttributeKeyDstChannel    = "packet_dst_channel"
	AttributeKeyTimeoutHeight = "packet_timeout_height"
	AttributeKeyAck           = "packet_ack"
)

// Event is the effect record the IBC module hands the ledger when a packet
// or channel action takes effect. The type string and attribute vocabulary
// are the module's own; they pass through to subscribers untouched.
type Event struct {
	Type       string
	Attributes map[string]string
}

func NewEvent(eventType string, attributes map[string]string) Event {
	if attributes == nil {
		attributes = make(map[string]string)
	}
	return Event{
		Type:       eventType,
		Attributes: attributes,
	}
}
