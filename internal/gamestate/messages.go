package gamestate

import "github.com/tibiacast/tibiarc-sub000/internal/model"

// messageMergeWindowTicks bounds how far back AppendMessage scans for a
// mergeable predecessor from the same author.
const messageMergeWindowTicks = 1000

// AppendMessage inserts msg, coalescing it into the most recent
// mergeable on-map message from the same author within the merge window
// instead of appending a new entry.
func (s *State) AppendMessage(msg model.Message) {
	if msg.Position != nil && msg.AuthorName != "" {
		for i := len(s.Messages) - 1; i >= 0; i-- {
			prev := &s.Messages[i]
			if s.CurrentTick > prev.ExpireTick && s.CurrentTick-prev.ExpireTick > messageMergeWindowTicks {
				break
			}
			if prev.AuthorName == msg.AuthorName && prev.Mode == msg.Mode && prev.Position != nil {
				prev.Text = prev.Text + " " + msg.Text
				prev.ExpireTick = msg.ExpireTick
				return
			}
		}
	}
	s.Messages = append(s.Messages, msg)
}

// PruneMessages drops every message whose expiry tick has passed, called
// once per rendered tick.
func (s *State) PruneMessages() {
	live := s.Messages[:0]
	for _, m := range s.Messages {
		if m.ExpireTick > s.CurrentTick {
			live = append(live, m)
		}
	}
	s.Messages = live
}
