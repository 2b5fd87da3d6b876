// Package parser - marker tables and token patterns for task lines
package parser

import (
	"regexp"
	"strings"
	"time"

	"tasklens/pkg/task"
)

const (
	recurrenceMarker = "🔁"
	dependencyMarker = "⛔"
)

var (
	// taskLineRegex matches a checklist line: optional indentation, a list
	// bullet (-, * or +), a single status character in brackets, then the
	// raw description.
	taskLineRegex = regexp.MustCompile(`^\s*[-*+]\s+\[(.)\]\s+(.*)`)

	// tagRegex matches a hash-prefixed tag token; tags may carry trailing
	// punctuation (a comma or period) which is not part of the tag body.
	tagRegex = regexp.MustCompile(`^#([a-zA-Z0-9_/.-]+)[,.]?$`)

	// blockIDRegex matches a caret-prefixed block identifier, optionally
	// followed by trailing punctuation.
	blockIDRegex = regexp.MustCompile(`^\^([a-zA-Z0-9-]+)[,.]?$`)
)

// dateKind identifies which of the six semantic dates a marker selects.
type dateKind int

const (
	dateDue dateKind = iota
	dateDone
	dateCreated
	dateStart
	dateScheduled
	dateCancelled
)

// dateMarkers maps the single-glyph date markers to their date kind. The
// set is closed; any other glyph is ordinary description text.
var dateMarkers = map[string]dateKind{
	"📅": dateDue,
	"✅": dateDone,
	"➕": dateCreated,
	"🛫": dateStart,
	"⏳": dateScheduled,
	"❌": dateCancelled,
}

// assignDate stores a parsed date on the task field selected by kind.
func assignDate(t *task.Task, kind dateKind, d time.Time) {
	switch kind {
	case dateDue:
		t.DueDate = &d
	case dateDone:
		t.DoneDate = &d
	case dateCreated:
		t.CreatedDate = &d
	case dateStart:
		t.StartDate = &d
	case dateScheduled:
		t.ScheduledDate = &d
	case dateCancelled:
		t.CancelledDate = &d
	}
}

// DefaultConnectors is the default set of connector words dropped from the
// description when one immediately precedes the recurrence marker, as in
// "water the plants and 🔁 every week". The membership is a policy choice,
// overridable via NewWithConnectors.
var DefaultConnectors = []string{"and", "or", "with", "plus"}

// normalizeConnector lowercases a token and strips the trailing punctuation
// tolerated on metadata tokens.
func normalizeConnector(token string) string {
	return strings.ToLower(strings.TrimRight(token, ",."))
}
