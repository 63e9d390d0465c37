package domain

import (
	"sort"
	"time"
)

// Interaction records the most recent autoresponse-triggering contact from
// one sender. Older interactions from the same sender are overwritten.
type Interaction struct {
	DisplayName string `json:"display_name"`
	OriginLink  string `json:"origin_link"`
	Kind        string `json:"interaction_kind"`
	Timestamp   string `json:"timestamp"` // RFC3339
}

// LedgerEntry is an Interaction paired with its sender id, used for listing.
type LedgerEntry struct {
	SenderID string
	Interaction
}

// RecordInteraction upserts one ledger entry keyed by sender id.
func (s *Settings) RecordInteraction(senderID, displayName, originLink, kind string, now time.Time) {
	if s.Ledger == nil {
		s.Ledger = make(map[string]Interaction)
	}
	s.Ledger[senderID] = Interaction{
		DisplayName: displayName,
		OriginLink:  originLink,
		Kind:        kind,
		Timestamp:   now.UTC().Format(time.RFC3339),
	}
}

// ClearLedger empties the interaction ledger. Invoked on the listening
// on->off transition.
func (s *Settings) ClearLedger() {
	s.Ledger = make(map[string]Interaction)
}

// ListRecentInteractions returns up to limit entries ordered by timestamp
// descending, plus the number of entries omitted by the cap. Entries whose
// timestamp does not parse sort as oldest.
func (s *Settings) ListRecentInteractions(limit int) ([]LedgerEntry, int) {
	entries := make([]LedgerEntry, 0, len(s.Ledger))
	for id, in := range s.Ledger {
		entries = append(entries, LedgerEntry{SenderID: id, Interaction: in})
	}
	sort.Slice(entries, func(i, j int) bool {
		ti, ei := time.Parse(time.RFC3339, entries[i].Timestamp)
		tj, ej := time.Parse(time.RFC3339, entries[j].Timestamp)
		if ei != nil && ej != nil {
			return entries[i].SenderID < entries[j].SenderID
		}
		if ei != nil {
			return false
		}
		if ej != nil {
			return true
		}
		if ti.Equal(tj) {
			return entries[i].SenderID < entries[j].SenderID
		}
		return ti.After(tj)
	})
	if limit <= 0 || len(entries) <= limit {
		return entries, 0
	}
	return entries[:limit], len(entries) - limit
}
