// Package parser extracts structured tasks from checklist lines in
// Markdown documents.
//
// Task metadata (tags, dates, priority, recurrence, block IDs and
// dependencies) carries no delimiters; field identity is signaled by
// emoji- or sigil-prefixed tokens and by position. Parsing is two-pass:
// a forward scan picks up tags and locates the recurrence and dependency
// markers, then a reverse scan peels metadata off the end of the line.
// The reverse scan stops at the first token that is neither a date pair
// nor a priority marker, which keeps metadata-shaped tokens sitting
// mid-sentence inside the description.
package parser

import (
	"strings"
	"time"

	"tasklens/pkg/task"
)

// Parser turns checklist lines into tasks. New carries the default
// connector-word policy; NewWithConnectors overrides it.
type Parser struct {
	connectors map[string]struct{}
}

// New creates a Parser with the default connector words.
func New() *Parser {
	return NewWithConnectors(DefaultConnectors)
}

// NewWithConnectors creates a Parser whose connector-word set (consumed
// when immediately preceding the recurrence marker) is the given list.
func NewWithConnectors(words []string) *Parser {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return &Parser{connectors: set}
}

// ParseContent parses every task line in content. Line numbers are
// 1-based; path is recorded as provenance only.
func (p *Parser) ParseContent(path, content string) []*task.Task {
	var tasks []*task.Task
	for i, line := range strings.Split(content, "\n") {
		if t, ok := p.ParseLine(line, i+1, path); ok {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

// ParseLine parses a single line. It returns false when the line is not a
// task line or its status marker is unrecognized; neither case is an error.
func (p *Parser) ParseLine(line string, lineNum int, path string) (*task.Task, bool) {
	match := taskLineRegex.FindStringSubmatch(line)
	if match == nil {
		return nil, false
	}

	status, ok := task.StatusFromMarker(match[1][0])
	if !ok {
		return nil, false
	}

	t := &task.Task{
		Status:     status,
		Priority:   task.PriorityMedium,
		FilePath:   path,
		LineNumber: lineNum,
		RawText:    strings.TrimSpace(line),
	}

	lp := &lineParser{
		parser: p,
		task:   t,
		tokens: strings.Fields(match[2]),
	}
	lp.consumed = make([]bool, len(lp.tokens))
	lp.frontier = len(lp.tokens)

	lp.annotateForward()
	lp.resolveRecurrence()
	lp.resolveBlockIDAndDependencies()
	lp.resolveDatesAndPriority()

	t.Description = lp.rebuildDescription()
	return t, true
}

// lineParser holds the per-line parse state: the token array, the
// consumed-index set, and the frontier past which the reverse scan no
// longer considers tokens. Constructed fresh for every line and discarded
// with it.
type lineParser struct {
	parser *Parser
	task   *task.Task
	tokens []string

	consumed []bool

	// frontier is the index one past the last token still eligible for
	// end-of-line metadata.
	frontier int

	// Marker positions located by the forward pass; -1 means absent.
	// Only the last occurrence of each marker counts.
	recurrenceIdx int
	dependencyIdx int
}

// annotateForward is the single left-to-right scan: it consumes tags where
// they stand and records the positions of the recurrence and dependency
// markers for the later passes. Marker payloads resolve relative to the
// line end, so only positions are captured here.
func (lp *lineParser) annotateForward() {
	lp.recurrenceIdx = -1
	lp.dependencyIdx = -1

	for idx, tok := range lp.tokens {
		if m := tagRegex.FindStringSubmatch(tok); m != nil {
			lp.task.Tags = append(lp.task.Tags, m[1])
			lp.consumed[idx] = true
		}
		if tok == recurrenceMarker {
			lp.recurrenceIdx = idx
		}
		if tok == dependencyMarker {
			lp.dependencyIdx = idx
		}
	}
}

// resolveRecurrence collects everything after the recurrence marker as the
// recurrence text and consumes it along with the marker. A connector word
// directly before the marker ("... and 🔁 every week") is consumed too so
// it does not leak into the description.
func (lp *lineParser) resolveRecurrence() {
	if lp.recurrenceIdx < 0 {
		return
	}

	var parts []string
	for j := lp.recurrenceIdx + 1; j < len(lp.tokens); j++ {
		if lp.consumed[j] {
			continue
		}
		parts = append(parts, lp.tokens[j])
		lp.consumed[j] = true
	}
	lp.consumed[lp.recurrenceIdx] = true
	if len(parts) > 0 {
		lp.task.Recurrence = strings.Join(parts, " ")
	}

	prev := lp.recurrenceIdx - 1
	if prev >= 0 && !lp.consumed[prev] && lp.parser.isConnector(lp.tokens[prev]) {
		lp.consumed[prev] = true
		lp.frontier = prev
	} else {
		lp.frontier = lp.recurrenceIdx
	}
}

func (p *Parser) isConnector(token string) bool {
	_, ok := p.connectors[normalizeConnector(token)]
	return ok
}

// resolveBlockIDAndDependencies splits caret-prefixed identifiers into the
// task's own block ID and its dependency list. With a dependency marker
// present, the block ID is the first identifier before the marker and the
// dependencies are the contiguous identifiers after it. Without a marker,
// the rightmost unconsumed identifier on the line is the block ID.
func (lp *lineParser) resolveBlockIDAndDependencies() {
	if lp.dependencyIdx >= 0 {
		for idx := 0; idx < lp.dependencyIdx; idx++ {
			if lp.consumed[idx] {
				continue
			}
			if m := blockIDRegex.FindStringSubmatch(lp.tokens[idx]); m != nil {
				lp.task.BlockID = m[1]
				lp.consumed[idx] = true
				break
			}
		}

		lp.consumed[lp.dependencyIdx] = true
		for j := lp.dependencyIdx + 1; j < len(lp.tokens); j++ {
			if lp.consumed[j] {
				continue
			}
			m := blockIDRegex.FindStringSubmatch(lp.tokens[j])
			if m == nil {
				// Dependencies must be contiguous; the first
				// non-identifier token ends the run.
				break
			}
			lp.addDependency(m[1])
			lp.consumed[j] = true
		}

		if lp.dependencyIdx < lp.frontier {
			lp.frontier = lp.dependencyIdx
		}
		return
	}

	for idx := len(lp.tokens) - 1; idx >= 0; idx-- {
		if lp.consumed[idx] {
			continue
		}
		if m := blockIDRegex.FindStringSubmatch(lp.tokens[idx]); m != nil {
			lp.task.BlockID = m[1]
			lp.consumed[idx] = true
			if idx < lp.frontier {
				lp.frontier = idx
			}
			break
		}
	}
}

func (lp *lineParser) addDependency(id string) {
	for _, have := range lp.task.Dependencies {
		if have == id {
			return
		}
	}
	lp.task.Dependencies = append(lp.task.Dependencies, id)
}

// resolveDatesAndPriority is the strict right-to-left scan from the
// frontier. Each step consumes either a marker+date pair or a priority
// marker; the first unconsumed token matching neither ends metadata
// parsing for the whole line.
func (lp *lineParser) resolveDatesAndPriority() {
	i := lp.frontier - 1
	for i >= 0 {
		if lp.consumed[i] {
			i--
			continue
		}

		if i > 0 && !lp.consumed[i-1] {
			if d, err := time.Parse(task.DateLayout, lp.tokens[i]); err == nil {
				if kind, ok := dateMarkers[lp.tokens[i-1]]; ok {
					assignDate(lp.task, kind, d)
					lp.consumed[i] = true
					lp.consumed[i-1] = true
					lp.frontier = i - 1
					i -= 2
					continue
				}
			}
		}

		if prio, ok := task.PriorityFromMarker(lp.tokens[i]); ok {
			lp.task.Priority = prio
			lp.consumed[i] = true
			lp.frontier = i
			i--
			continue
		}

		break
	}
}

// rebuildDescription joins, in original order, every token before the
// frontier that no pass consumed.
func (lp *lineParser) rebuildDescription() string {
	var parts []string
	for idx := 0; idx < lp.frontier; idx++ {
		if !lp.consumed[idx] {
			parts = append(parts, lp.tokens[idx])
		}
	}
	return strings.Join(parts, " ")
}
