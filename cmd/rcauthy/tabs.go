package main

import (
	"errors"
	"fmt"

	"rcauthy.net/rcauthy/authflow"
	v1 "rcauthy.net/rcauthy/rcauthy/v1"
	"rcauthy.net/rcauthy/rcauthy/v1/common"
	"rcauthy.net/rcauthy/timeclock"
	"rcauthy.net/rcauthy/timelog"
	"rcauthy.net/rcauthy/utils"
)

// authenticatedTabs drives the post-login screens until logout.
func (a *app) authenticatedTabs() authflow.Screen {
	actions := timeclock.NewActions(a.client.TimeRecords, a.client.Authenticator, a.sessions)

	for {
		fmt.Println()
		fmt.Println("[1] Authenticator code  [2] Time in  [3] Time out  [4] Logs  [5] Log out")

		switch a.prompt("Choose") {
		case "1":
			code, err := actions.AuthenticatorCode()
			if err != nil {
				fmt.Println(errorMessage(err, "Unable to fetch authentication code."))
				continue
			}
			fmt.Println("Your Authentication Code:", code)
			fmt.Println("Use this code for secured access.")
		case "2":
			message, err := actions.TimeIn()
			if err != nil {
				fmt.Println(errorMessage(err, "Unable to time in."))
				continue
			}
			fmt.Println(message)
		case "3":
			message, err := actions.TimeOut()
			if err != nil {
				fmt.Println(errorMessage(err, "Unable to time out."))
				continue
			}
			fmt.Println(message)
		case "4":
			a.logScreen(actions)
		case "5":
			confirmed := a.prompt("Are you sure you want to log out? (y/n)") == "y"
			out, err := a.flow.Logout(confirmed)
			if err != nil {
				fmt.Println("Failed to log out:", err)
				continue
			}
			if out.Next == authflow.ScreenLogin {
				a.client.SetToken("")
				return authflow.ScreenLogin
			}
		}
	}
}

// logScreen shows the fetched logs with local sort/filter. Toggling the
// sort re-orders the cached collection; only an explicit refresh hits
// the network again.
func (a *app) logScreen(actions *timeclock.Actions) {
	entries, err := actions.Logs()
	if err != nil {
		fmt.Println(errorMessage(err, "Unable to fetch logs."))
		return
	}

	order := timelog.OrderDesc
	category := timelog.CategoryAll

	for {
		renderLogs(timelog.Filter(timelog.Sort(entries, order), category))
		fmt.Println("[t] toggle sort  [f] filter  [r] refresh  [e] export  [b] back")

		switch a.prompt("Choose") {
		case "t":
			order = order.Toggle()
		case "f":
			switch a.prompt("Filter (All/Onsite/Online)") {
			case "Onsite":
				category = timelog.CategoryOnsite
			case "Online":
				category = timelog.CategoryOnline
			default:
				category = timelog.CategoryAll
			}
		case "r":
			fresh, err := actions.Logs()
			if err != nil {
				fmt.Println(errorMessage(err, "Unable to fetch logs."))
				continue
			}
			entries = fresh
		case "e":
			path := a.prompt("Export path (.xlsx)")
			if path == "" {
				continue
			}
			if err := timelog.ExportXLSX(timelog.Filter(timelog.Sort(entries, order), category), path); err != nil {
				fmt.Println("Export failed:", err)
				continue
			}
			fmt.Println("Exported to", path)
		case "b":
			return
		}
	}
}

func renderLogs(entries []v1.LogEntry) {
	fmt.Println()
	fmt.Println("Employee-Log Records")
	fmt.Printf("%-12s %-10s %-10s %-12s %-8s\n", "Date", "Time In", "Time Out", "Total Hours", "Type")

	if len(entries) == 0 {
		fmt.Println("No logs to display.")
		return
	}

	for _, e := range entries {
		fmt.Printf("%-12s %-10s %-10s %-12.2f %-8s\n",
			e.CreatedAt.In(utils.ManilaTZ).Format("2006-01-02"),
			clock(e.TimeIn),
			clock(e.TimeOut),
			e.TotalHours,
			e.Type,
		)
	}
}

func clock(ts common.Timestamp) string {
	if ts.IsZero() {
		return ""
	}
	return ts.In(utils.ManilaTZ).Format("03:04 PM")
}

func errorMessage(err error, fallback string) string {
	if errors.Is(err, timeclock.ErrNotAuthenticated) {
		return "You are not logged in."
	}
	var serverErr *v1.ServerError
	if errors.As(err, &serverErr) {
		return serverErr.Message
	}
	return fallback
}
