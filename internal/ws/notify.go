package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

type AllocationAcceptedEvent struct {
	Type         string `json:"type"`
	AllocationID string `json:"allocation_id"`
	ProjectID    string `json:"project_id"`
	PersonnelID  string `json:"personnel_id"`
	Percentage   int    `json:"percentage"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Timestamp    string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyAllocationAccepted broadcasts an accepted allocation to all
// subscribers. Safe to call before a hub is set; the event is dropped.
func NotifyAllocationAccepted(allocationID, projectID, personnelID uuid.UUID, percentage int, start, end time.Time) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := AllocationAcceptedEvent{
		Type:         "allocation_accepted",
		AllocationID: allocationID.String(),
		ProjectID:    projectID.String(),
		PersonnelID:  personnelID.String(),
		Percentage:   percentage,
		StartDate:    start.Format("2006-01-02"),
		EndDate:      end.Format("2006-01-02"),
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
