package pikndel

import (
	"time"

	"github.com/google/uuid"
)

// Envelope is the per-call Control block the provider requires on every
// request: fresh correlation id, account source, unix time, endpoint version.
type Envelope struct {
	RequestID   string `json:"RequestId"`
	Source      int64  `json:"Source"`
	RequestTime int64  `json:"RequestTime"`
	Version     string `json:"Version"`
}

// NewEnvelope builds an Envelope with a fresh RequestId and current time.
func NewEnvelope(source int64, version string) Envelope {
	return Envelope{
		RequestID:   uuid.NewString(),
		Source:      source,
		RequestTime: time.Now().Unix(),
		Version:     version,
	}
}
