package events

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Attributes is the key/value payload of a single event: the store an
// event is populated with during construction on the ledger side, and the
// map reconstructed from a subscription response on the client side.
type Attributes map[string]string

// Get returns the value for key, if present.
func (a Attributes) Get(key string) (string, bool) {
	value, ok := a[key]
	return value, ok
}

// Take removes key and returns its value, handing ownership to the caller.
// Used by subscribers consuming one event's attributes exactly once.
func (a Attributes) Take(key string) (string, bool) {
	value, ok := a[key]
	if ok {
		delete(a, key)
	}
	return value, ok
}

// ParseAttributes reconstructs an event's attributes from the raw JSON of
// a subscription-response event. The input must carry an `attributes`
// array of {key, value} records; any extra fields per record (the wire
// `index` flag) are ignored. A key repeated in the input keeps its last
// value.
func ParseAttributes(data []byte) (Attributes, error) {
	var event map[string]json.RawMessage
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal event json")
	}

	rawAttrs, ok := event["attributes"]
	if !ok {
		return nil, ErrMissingAttributes
	}

	var records []json.RawMessage
	if err := json.Unmarshal(rawAttrs, &records); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal attributes")
	}

	attributes := make(Attributes, len(records))
	for _, record := range records {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(record, &fields); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal attribute record")
		}

		rawKey, ok := fields["key"]
		if !ok {
			return nil, &MissingKeyError{Attribute: string(record)}
		}
		rawValue, ok := fields["value"]
		if !ok {
			return nil, &MissingValueError{Attribute: string(record)}
		}

		var key, value string
		if err := json.Unmarshal(rawKey, &key); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal attribute key")
		}
		if err := json.Unmarshal(rawValue, &value); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal attribute value")
		}
		attributes[key] = value
	}
	return attributes, nil
}
