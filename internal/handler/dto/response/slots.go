package response

import (
	"time"

	"consultbook/internal/usecase/queries"
)

type SlotItem struct {
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	ServiceType    string    `json:"serviceType"`
	BasePriceCents int64     `json:"basePriceCents"`
}

type SlotNotice struct {
	Kind     string `json:"kind"`
	Platform string `json:"platform,omitempty"`
	Count    int    `json:"count,omitempty"`
}

// SlotsResponse carries the offers plus any reduced-confidence
// notices, so callers can tell a clean answer from one computed while
// a calendar platform is degraded.
type SlotsResponse struct {
	Slots   []SlotItem   `json:"slots"`
	Notices []SlotNotice `json:"notices,omitempty"`
}

func FromSlotsResult(result *queries.SlotsResult) *SlotsResponse {
	resp := &SlotsResponse{Slots: make([]SlotItem, len(result.Slots))}
	for i, s := range result.Slots {
		resp.Slots[i] = SlotItem{
			Start:          s.Start,
			End:            s.End,
			ServiceType:    s.ServiceType,
			BasePriceCents: s.BasePriceCents,
		}
	}
	for _, n := range result.Notices {
		resp.Notices = append(resp.Notices, SlotNotice{
			Kind:     string(n.Kind),
			Platform: n.Platform,
			Count:    n.Count,
		})
	}
	return resp
}
