package gitwork

import (
	"regexp"
	"strings"
)

// trailerRe matches a single trailer line: a key starting with a letter,
// containing only letters, digits, and hyphens, followed by a colon and a
// non-empty value.
var trailerRe = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9-]*)\s*:\s*(.+)$`)

// BranchDescription is the structured form of a git branch description.
//
// A description has two parts: a free-form summary (like a commit message
// subject and body) and a block of Key: value trailer lines. Trailer keys
// keep their first-seen casing; lookups are case-insensitive. A present key
// always has at least one value.
type BranchDescription struct {
	// Summary is the free-form text preceding the trailer block.
	Summary string

	keys   []string            // stored casing, insertion order
	values map[string][]string // stored key -> values, never empty
	index  map[string]string   // lowercased key -> stored key
}

// findKey returns the stored key matching a case-insensitive lookup.
func (d *BranchDescription) findKey(key string) (string, bool) {
	if d.index == nil {
		return "", false
	}
	stored, ok := d.index[strings.ToLower(key)]
	return stored, ok
}

// Get returns the first value for a trailer key (case-insensitive),
// or "" if the key is not present.
func (d *BranchDescription) Get(key string) string {
	if stored, ok := d.findKey(key); ok {
		return d.values[stored][0]
	}
	return ""
}

// GetAll returns all values for a trailer key (case-insensitive),
// or nil if the key is not present.
func (d *BranchDescription) GetAll(key string) []string {
	if stored, ok := d.findKey(key); ok {
		return append([]string(nil), d.values[stored]...)
	}
	return nil
}

// Replace sets a trailer key to a single value, using the provided casing.
// If the key already exists under a different casing, that entry is removed
// first, so exactly one casing survives.
func (d *BranchDescription) Replace(key, value string) {
	if stored, ok := d.findKey(key); ok && stored != key {
		d.remove(stored)
	}
	if _, ok := d.findKey(key); ok {
		d.values[key] = []string{value}
		return
	}
	d.insert(key, value)
}

// Add appends a value to a trailer key. If the key already exists under any
// casing, the existing casing is kept; otherwise the provided casing is used.
func (d *BranchDescription) Add(key, value string) {
	if stored, ok := d.findKey(key); ok {
		d.values[stored] = append(d.values[stored], value)
		return
	}
	d.insert(key, value)
}

// Keys returns the trailer keys in insertion order, in stored casing.
func (d *BranchDescription) Keys() []string {
	return append([]string(nil), d.keys...)
}

// Tickets returns all Ticket trailer values.
func (d *BranchDescription) Tickets() []string {
	return d.GetAll("Ticket")
}

// Remote returns the Remote trailer value.
func (d *BranchDescription) Remote() string {
	return d.Get("Remote")
}

// PR returns the PR trailer value.
func (d *BranchDescription) PR() string {
	return d.Get("PR")
}

func (d *BranchDescription) insert(key, value string) {
	if d.values == nil {
		d.values = make(map[string][]string)
		d.index = make(map[string]string)
	}
	d.keys = append(d.keys, key)
	d.values[key] = []string{value}
	d.index[strings.ToLower(key)] = key
}

func (d *BranchDescription) remove(stored string) {
	delete(d.values, stored)
	delete(d.index, strings.ToLower(stored))
	for i, k := range d.keys {
		if k == stored {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
}

// Parse parses a branch description string into a BranchDescription.
//
// A contiguous block of trailer lines at the end of the text becomes the
// trailer set; everything before the block (minus the blank separator) is
// the summary. A non-blank, non-trailer line encountered during the backward
// scan cancels trailer detection for the whole text. The parser is total:
// any input, including "", yields a valid BranchDescription.
func Parse(text string) *BranchDescription {
	text = strings.TrimSpace(text)
	if text == "" {
		return &BranchDescription{}
	}

	lines := strings.Split(text, "\n")

	// Scan backward from the end to find the contiguous trailer block.
	trailerStart := len(lines)
scan:
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		switch {
		case trailerRe.MatchString(line):
			trailerStart = i
		case line == "":
			// Blank line: if we found trailers below, this is the separator.
			break scan
		default:
			// Non-trailer, non-blank line: no trailer block at all.
			trailerStart = len(lines)
			break scan
		}
	}

	desc := &BranchDescription{}
	for _, line := range lines[trailerStart:] {
		if m := trailerRe.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			desc.Add(m[1], strings.TrimSpace(m[2]))
		}
	}

	// Everything before the trailer block and its blank separator.
	summaryEnd := trailerStart
	for summaryEnd > 0 && strings.TrimSpace(lines[summaryEnd-1]) == "" {
		summaryEnd--
	}
	desc.Summary = strings.TrimSpace(strings.Join(lines[:summaryEnd], "\n"))

	return desc
}

// Format serializes the description for storage in git config.
//
// The summary comes first, then one blank line, then one Key: value line per
// trailer value in insertion order. Empty sections are omitted.
func (d *BranchDescription) Format() string {
	var parts []string

	if d.Summary != "" {
		parts = append(parts, d.Summary)
	}

	var trailerLines []string
	for _, key := range d.keys {
		for _, value := range d.values[key] {
			trailerLines = append(trailerLines, key+": "+value)
		}
	}
	if len(trailerLines) > 0 {
		if len(parts) > 0 {
			parts = append(parts, "")
		}
		parts = append(parts, strings.Join(trailerLines, "\n"))
	}

	return strings.Join(parts, "\n")
}

// String returns the serialized description.
func (d *BranchDescription) String() string {
	return d.Format()
}

// BuildOption configures a description constructed by Build.
type BuildOption func(*BranchDescription)

// WithSummary sets the free-form summary text.
func WithSummary(summary string) BuildOption {
	return func(d *BranchDescription) {
		d.Summary = summary
	}
}

// WithTickets adds one Ticket trailer per ticket.
func WithTickets(tickets ...string) BuildOption {
	return func(d *BranchDescription) {
		for _, t := range tickets {
			d.Add("Ticket", t)
		}
	}
}

// WithRemote sets the Remote trailer.
func WithRemote(remote string) BuildOption {
	return func(d *BranchDescription) {
		d.Replace("Remote", remote)
	}
}

// WithType sets the Type trailer.
func WithType(branchType string) BuildOption {
	return func(d *BranchDescription) {
		d.Replace("Type", branchType)
	}
}

// WithAuthor sets the Author trailer.
func WithAuthor(author string) BuildOption {
	return func(d *BranchDescription) {
		d.Replace("Author", author)
	}
}

// WithCreatedFrom sets the Created-from trailer.
func WithCreatedFrom(ref string) BuildOption {
	return func(d *BranchDescription) {
		d.Replace("Created-from", ref)
	}
}

// Build constructs a description for a newly created branch using the
// conventional trailer keys.
func Build(opts ...BuildOption) *BranchDescription {
	desc := &BranchDescription{}
	for _, opt := range opts {
		opt(desc)
	}
	return desc
}
