package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"rcauthy.net/rcauthy/security"
)

// Prints a signed session token for poking the protected routes by hand.
func main() {
	secret := os.Getenv("RCAUTHY_SIGNING_SECRET")
	if secret == "" {
		secret = "IxrAjDoa2FqElO7IhrSrUJELhUckePEPVpaePlS/Xaw="
	}

	employeeNumber := "EMP-1001"
	if len(os.Args) > 1 {
		employeeNumber = os.Args[1]
	}

	token, err := security.CreateSessionToken(&security.Identity{
		Username:       "devtool",
		EmployeeNumber: employeeNumber,
		DeviceID:       "devtool-device",
		Authorities:    []string{"ROLE_EMPLOYEE"},
	}, secret, time.Hour)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(token)
}
