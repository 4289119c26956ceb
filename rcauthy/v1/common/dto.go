package common

type UserDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
	DeviceID string `json:"deviceId"`
}

type EmployeeRefDTO struct {
	EmployeeNumber string `json:"employeeNumber"`
}

// EmployeePayload is the envelope every authenticated call posts.
type EmployeePayload struct {
	Employee EmployeeRefDTO `json:"employee"`
}

func NewEmployeePayload(employeeNumber string) EmployeePayload {
	return EmployeePayload{Employee: EmployeeRefDTO{EmployeeNumber: employeeNumber}}
}
