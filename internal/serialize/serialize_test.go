package serialize

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/tibiacast/tibiarc-sub000/internal/event"
	"github.com/tibiacast/tibiarc-sub000/internal/model"
	"github.com/tibiacast/tibiarc-sub000/internal/recording"
)

func TestSerializeEmitsKindAndFields(t *testing.T) {
	rec := &recording.Recording{
		Runtime: 500,
		Frames: []recording.Frame{
			{Timestamp: 500, Events: event.List{
				event.CreatureHealthUpdated{ID: 7, Percent: 80},
			}},
		},
	}

	var buf bytes.Buffer
	if err := Serialize(rec, nil, &buf); err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	var docs []struct {
		Timestamp uint32            `json:"timestamp"`
		Events    []json.RawMessage `json:"events"`
	}
	if err := json.Unmarshal(buf.Bytes(), &docs); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(docs) != 1 || docs[0].Timestamp != 500 || len(docs[0].Events) != 1 {
		t.Fatalf("got %+v", docs)
	}

	var fields map[string]any
	if err := json.Unmarshal(docs[0].Events[0], &fields); err != nil {
		t.Fatalf("unmarshal event: %v", err)
	}
	if fields["kind"] != "CreatureHealthUpdated" {
		t.Fatalf("expected kind tag, got %+v", fields)
	}
	if fields["ID"].(float64) != 7 || fields["Percent"].(float64) != 80 {
		t.Fatalf("expected event fields preserved, got %+v", fields)
	}
}

func TestSerializeDeterministicForIdenticalRecordings(t *testing.T) {
	build := func() *recording.Recording {
		return &recording.Recording{
			Runtime: 100,
			Frames: []recording.Frame{
				{Timestamp: 0, Events: event.List{
					event.PlayerMoved{Position: model.Position{X: 1, Y: 2, Z: 7}},
				}},
				{Timestamp: 100, Events: event.List{}},
			},
		}
	}

	var a, b bytes.Buffer
	if err := Serialize(build(), nil, &a); err != nil {
		t.Fatalf("Serialize a: %v", err)
	}
	if err := Serialize(build(), nil, &b); err != nil {
		t.Fatalf("Serialize b: %v", err)
	}
	if a.String() != b.String() {
		t.Fatalf("expected identical output for identical recordings:\na=%s\nb=%s", a.String(), b.String())
	}
}
