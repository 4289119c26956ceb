package common

import (
	"encoding/json"
	"time"

	"rcauthy.net/rcauthy/utils"
)

// Timestamp decodes the service's timestamps leniently: the backend emits
// RFC3339 for created-at but bare local date-times for time-in/out.
type Timestamp struct {
	time.Time
}

func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == nil || *s == "" {
		ts.Time = time.Time{}
		return nil
	}
	t, err := utils.ParseISOTime(*s)
	if err != nil {
		return err
	}
	ts.Time = *t
	return nil
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.Time.IsZero() {
		return json.Marshal(nil)
	}
	return json.Marshal(ts.Format(time.RFC3339))
}
