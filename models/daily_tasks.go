package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownTask is returned for names outside the fixed habit set.
var ErrUnknownTask = errors.New("unknown task")

// DateLayout is the calendar-date key used for daily task records.
const DateLayout = "2006-01-02"

// Task names one of the fixed daily habits.
type Task string

const (
	TaskStudy    Task = "study"
	TaskExercise Task = "exercise"
	TaskReading  Task = "reading"
)

// ParseTask matches s against the fixed habits, ignoring case.
func ParseTask(s string) (Task, error) {
	switch t := Task(strings.ToLower(strings.TrimSpace(s))); t {
	case TaskStudy, TaskExercise, TaskReading:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTask, s)
	}
}

// DailyTasks is the per-account, per-day record of completed habits.
type DailyTasks struct {
	Identity    string    `json:"identity"`
	Date        string    `json:"date"`
	Study       bool      `json:"study"`
	Exercise    bool      `json:"exercise"`
	Reading     bool      `json:"reading"`
	Submissions int       `json:"submissions"`
	CreatedAt   time.Time `json:"created_at"`
}

// Completed counts the habits marked done.
func (d DailyTasks) Completed() int {
	n := 0
	for _, done := range []bool{d.Study, d.Exercise, d.Reading} {
		if done {
			n++
		}
	}
	return n
}

// Set assigns the flag for task t.
func (d *DailyTasks) Set(t Task, done bool) {
	switch t {
	case TaskStudy:
		d.Study = done
	case TaskExercise:
		d.Exercise = done
	case TaskReading:
		d.Reading = done
	}
}
