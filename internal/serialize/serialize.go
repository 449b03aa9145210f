// Package serialize renders a decoded Recording to the JSON wire shape
// producer contracts outside the core consume (§6 `Serializer::serialize`):
// a JSON array of `{timestamp, events: [...]}` objects, each event
// carrying its kind tag alongside the fields the parser populated.
package serialize

import (
	"encoding/json"
	"io"
	"reflect"

	"github.com/tibiacast/tibiarc-sub000/internal/event"
	"github.com/tibiacast/tibiarc-sub000/internal/recording"
	"github.com/tibiacast/tibiarc-sub000/internal/rerr"
	"github.com/tibiacast/tibiarc-sub000/internal/version"
)

// frameDoc is one element of the emitted array.
type frameDoc struct {
	Timestamp uint32            `json:"timestamp"`
	Events    []json.RawMessage `json:"events"`
}

// Serialize writes rec as a JSON array to w. version is accepted per the
// §6 contract shape but the core's event payloads are already
// version-independent by the time they reach here, so it does not
// otherwise affect the output.
func Serialize(rec *recording.Recording, _ *version.Profile, w io.Writer) error {
	docs := make([]frameDoc, len(rec.Frames))
	for i, frame := range rec.Frames {
		events := make([]json.RawMessage, len(frame.Events))
		for j, e := range frame.Events {
			raw, err := marshalEvent(e)
			if err != nil {
				return rerr.Invalid("serialize.Serialize", "frame %d event %d: %v", i, j, err)
			}
			events[j] = raw
		}
		docs[i] = frameDoc{Timestamp: frame.Timestamp, Events: events}
	}

	enc := json.NewEncoder(w)
	if err := enc.Encode(docs); err != nil {
		return rerr.Invalid("serialize.Serialize", "encode: %v", err)
	}
	return nil
}

// marshalEvent flattens e's own JSON object and adds a "kind" key naming
// its concrete Go type, so every event in the array is self-describing
// without a separate schema per kind.
func marshalEvent(e event.Event) (json.RawMessage, error) {
	raw, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = make(map[string]json.RawMessage)
	}

	kind, err := json.Marshal(reflect.TypeOf(e).Name())
	if err != nil {
		return nil, err
	}
	fields["kind"] = kind

	return json.Marshal(fields)
}
