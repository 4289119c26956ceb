package v1

import (
	"encoding/json"

	"rcauthy.net/rcauthy/rcauthy/v1/common"
)

// Work-mode categories a time record can carry.
const (
	TypeOnsite = "Onsite"
	TypeOnline = "Online"
)

type LogEntry struct {
	ID         string           `json:"id"`
	CreatedAt  common.Timestamp `json:"createdAt"`
	TimeIn     common.Timestamp `json:"timeIn"`
	TimeOut    common.Timestamp `json:"timeOut"`
	TotalHours float64          `json:"totalHours"`
	Type       string           `json:"type"`
}

type TimeRecordEndpoint struct {
	transport *Transport
}

func (ep *TimeRecordEndpoint) AddTimeIn(employeeNumber string) error {
	_, err := ep.transport.Post("/time-record/addTimeIn", common.NewEmployeePayload(employeeNumber))
	return err
}

func (ep *TimeRecordEndpoint) AddTimeOut(employeeNumber string) error {
	_, err := ep.transport.Post("/time-record/addTimeOut", common.NewEmployeePayload(employeeNumber))
	return err
}

func (ep *TimeRecordEndpoint) UserLogs(employeeNumber string) ([]LogEntry, error) {
	resp, err := ep.transport.Post("/time-record/getUserLogs", common.NewEmployeePayload(employeeNumber))
	if err != nil {
		return nil, err
	}

	var logs []LogEntry
	if err := json.Unmarshal(resp.Data, &logs); err != nil {
		return nil, err
	}

	return logs, nil
}
