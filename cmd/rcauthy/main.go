package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"rcauthy.net/rcauthy/authflow"
	"rcauthy.net/rcauthy/infrastructure/devops"
	v1 "rcauthy.net/rcauthy/rcauthy/v1"
	"rcauthy.net/rcauthy/session"
)

const welcomeDelay = 2 * time.Second

type app struct {
	client   *v1.RCAuthyClient
	flow     *authflow.Controller
	sessions *session.Store
	deviceID string
	in       *bufio.Reader
}

func main() {
	cfg, err := devops.LoadClientConfig()
	if err != nil {
		log.Fatal(err)
	}

	deviceID, err := devops.EnsureDeviceID()
	if err != nil {
		log.Fatal(err)
	}

	dir, err := devops.ConfigDir()
	if err != nil {
		log.Fatal(err)
	}

	sessions := session.NewStore(filepath.Join(dir, "session.yaml"))
	client := v1.NewRCAuthyClient(cfg.BaseURL, "")

	a := &app{
		client:   client,
		flow:     authflow.NewController(client.Users, sessions),
		sessions: sessions,
		deviceID: deviceID,
		in:       bufio.NewReader(os.Stdin),
	}

	a.run()
}

func (a *app) run() {
	fmt.Println("Welcome to Rogationist Authentication!")
	fmt.Println("Your journey starts here.")
	time.Sleep(welcomeDelay)

	screen := a.flow.Start().Next

	for {
		switch screen {
		case authflow.ScreenLogin:
			screen = a.loginScreen()
		case authflow.ScreenRegister:
			screen = a.registerScreen()
		case authflow.ScreenOtp:
			screen = a.otpScreen()
		case authflow.ScreenAuthenticated:
			screen = a.authenticatedTabs()
		default:
			return
		}
	}
}

func (a *app) prompt(label string) string {
	fmt.Printf("%s: ", label)
	line, _ := a.in.ReadString('\n')
	return strings.TrimSpace(line)
}

func (a *app) loginScreen() authflow.Screen {
	fmt.Println()
	fmt.Println("Log-In to Your Account  (type 'register' to create one)")

	username := a.prompt("Username")
	if username == "register" {
		return authflow.ScreenRegister
	}
	password := a.prompt("Password")

	out := a.flow.Login(username, password, a.deviceID)
	if out.Message != "" {
		fmt.Println(out.Message)
	}
	if out.Result != nil && out.Result.Success() {
		a.client.SetToken(out.Result.Token)
		if id := out.Result.Identity; id != nil {
			fmt.Printf("Logged in as %s (%s)\n", id.Username, strings.Join(id.Authorities, ", "))
		}
	}
	return out.Next
}

func (a *app) registerScreen() authflow.Screen {
	fmt.Println()
	fmt.Println("Register  (leave username empty to go back)")

	username := a.prompt("Username")
	if username == "" {
		return authflow.ScreenLogin
	}
	password := a.prompt("Password")
	confirm := a.prompt("Confirm Password")
	employeeNumber := a.prompt("Employee Number")

	out := a.flow.Register(username, password, confirm, employeeNumber, a.deviceID)
	if out.Message != "" {
		fmt.Println(out.Message)
	}
	return out.Next
}

func (a *app) otpScreen() authflow.Screen {
	fmt.Println()
	fmt.Println("OTP Verification")

	username := a.prompt("Username")
	code := a.prompt("OTP code")

	out := a.flow.VerifyOtp(username, code)
	if out.Message != "" {
		fmt.Println(out.Message)
	}
	if out.Next == authflow.ScreenLogin {
		fmt.Println("OTP verified. Please log in.")
	}
	return out.Next
}
