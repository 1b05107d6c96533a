package entities

import (
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// ContentsItem is one checkbox on an equipment contents checklist. The list
// is persisted as JSON in Equipment.ContentsListJSON.
type ContentsItem struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Checked bool   `json:"checked"`
	// LastChecked is the ISO timestamp of when the box was last ticked.
	LastChecked *string `json:"lastChecked"`
	SortOrder   int     `json:"sortOrder"`
}

// checkedTTL is how long a tick survives before the checklist auto-resets it.
const checkedTTL = 7 * 24 * time.Hour

// ContentsCodec parses and serializes contents checklists. The id generator
// and clock are injectable so tests get stable output.
type ContentsCodec struct {
	NewID func() string
	Now   func() time.Time
}

var contentsSeq atomic.Uint64

// NewContentsCodec returns a codec with the default generator ("ci-" prefixed
// unique ids) and wall clock.
func NewContentsCodec() *ContentsCodec {
	return &ContentsCodec{
		NewID: func() string {
			return fmt.Sprintf("ci-%d-%s", contentsSeq.Add(1), uuid.NewString()[:8])
		},
		Now: time.Now,
	}
}

// Parse decodes a contents list. Supports the legacy format (array of plain
// strings) and the current format (array of item objects). Malformed input
// yields an empty list. Ticks older than seven days are reset.
func (c *ContentsCodec) Parse(raw string) []ContentsItem {
	if raw == "" || raw == "[]" {
		return []ContentsItem{}
	}

	var parsed []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return []ContentsItem{}
	}

	items := make([]ContentsItem, 0, len(parsed))
	for index, element := range parsed {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(element, &obj); err == nil {
			if _, hasID := obj["id"]; hasID {
				if _, hasLabel := obj["label"]; hasLabel {
					items = append(items, c.parseItem(element, index))
					continue
				}
			}
			continue
		}

		var label string
		if err := json.Unmarshal(element, &label); err == nil {
			items = append(items, ContentsItem{
				ID:        c.NewID(),
				Label:     label,
				SortOrder: index,
			})
		}
	}
	return items
}

func (c *ContentsCodec) parseItem(element json.RawMessage, index int) ContentsItem {
	var item struct {
		ID          json.RawMessage `json:"id"`
		Label       json.RawMessage `json:"label"`
		Checked     *bool           `json:"checked"`
		LastChecked *string         `json:"lastChecked"`
		SortOrder   *int            `json:"sortOrder"`
	}
	// Already validated as an object with id and label.
	_ = json.Unmarshal(element, &item)

	out := ContentsItem{
		ID:          rawToString(item.ID),
		Label:       rawToString(item.Label),
		LastChecked: item.LastChecked,
		SortOrder:   index,
	}
	if item.Checked != nil {
		out.Checked = *item.Checked
	}
	if item.SortOrder != nil {
		out.SortOrder = *item.SortOrder
	}

	if out.Checked && out.LastChecked != nil {
		if ts, err := time.Parse(time.RFC3339, *out.LastChecked); err == nil {
			if c.Now().Sub(ts) > checkedTTL {
				out.Checked = false
			}
		}
	}
	if !out.Checked {
		out.LastChecked = nil
	}
	return out
}

// rawToString stringifies a JSON scalar the way the stored payloads expect:
// strings unquoted, everything else in its literal form.
func rawToString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// Serialize encodes a checklist for storage, reassigning sortOrder to the
// array index.
func (c *ContentsCodec) Serialize(items []ContentsItem) string {
	normalized := make([]ContentsItem, len(items))
	for i, item := range items {
		item.SortOrder = i
		normalized[i] = item
	}
	encoded, err := json.Marshal(normalized)
	if err != nil {
		return "[]"
	}
	return string(encoded)
}

// NewItem creates an unchecked checklist entry.
func (c *ContentsCodec) NewItem(label string, sortOrder int) ContentsItem {
	return ContentsItem{
		ID:        c.NewID(),
		Label:     label,
		SortOrder: sortOrder,
	}
}
