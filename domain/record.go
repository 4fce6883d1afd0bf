// Package domain contains core concepts of the chat statistics.
// This file defines Record entries and how they are built.
// Records are immutable once created.
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	// Notification is the author of system and group events (joins, renames, encryption banners).
	Notification = "group_notification"
	// Overall is the scope covering every record of a transcript.
	Overall = "Overall"
)

// recordNamespace seeds the name-based record identifiers so that the same
// transcript always yields the same IDs.
var recordNamespace = uuid.MustParse("6f1c4d2e-8a7b-4f3e-9c1d-2b5a7e9f0c34")

// Record represents one authored message or system notification.
type Record struct {
	ID        uuid.UUID // name-based, stable across parses
	Timestamp time.Time
	Author    string
	Body      string

	Year       int
	MonthNum   time.Month
	MonthName  string
	Day        int
	DayName    string
	Hour       int
	Minute     int
	Date       time.Time // Timestamp truncated to midnight
	HourBucket string
}

// NewRecord derives every calendar field from the timestamp.
// position is the index of the entry inside its transcript.
func NewRecord(position int, at time.Time, author, body string) Record {
	year, month, day := at.Date()
	return Record{
		ID:         recordID(position, at, author, body),
		Timestamp:  at,
		Author:     author,
		Body:       body,
		Year:       year,
		MonthNum:   month,
		MonthName:  month.String(),
		Day:        day,
		DayName:    at.Weekday().String(),
		Hour:       at.Hour(),
		Minute:     at.Minute(),
		Date:       CalendarDate(at),
		HourBucket: HourBucket(at.Hour()),
	}
}

// IsNotification reports whether the record is a system event rather than a chat message.
func (r Record) IsNotification() bool {
	return r.Author == Notification
}

func recordID(position int, at time.Time, author, body string) uuid.UUID {
	name := fmt.Sprintf("%d|%d|%s|%s", position, at.Unix(), author, body)
	return uuid.NewSHA1(recordNamespace, []byte(name))
}
