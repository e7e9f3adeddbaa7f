// Package view holds the typed page models handed to the HTML templates.
package view

import (
	"fmt"
	"time"

	"github.com/yourname/sleeplog/internal"
)

// Flash is a one-shot user-visible notice rendered at the top of a page.
type Flash struct {
	Kind    string // "error" or "success"
	Message string
}

func ErrorFlash(msg string) *Flash {
	return &Flash{Kind: "error", Message: msg}
}

func SuccessFlash(msg string) *Flash {
	return &Flash{Kind: "success", Message: msg}
}

type Page struct {
	Title string
	Flash *Flash
}

type AuthPage struct {
	Page
	Email string
}

type DashboardPage struct {
	Page
	Records []internal.SleepRecord
}

type RecordsPage struct {
	Page
	Records []internal.SleepRecord
}

type RecordPage struct {
	Page
	Record   internal.SleepRecord
	Duration string
}

type TrendsPage struct {
	Page
	Records []internal.SleepRecord
}

type ErrorPage struct {
	Page
	Err *internal.AppError
}

// FormatDuration renders a duration as e.g. "7h30m".
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	return fmt.Sprintf("%dh%02dm", h, m)
}
