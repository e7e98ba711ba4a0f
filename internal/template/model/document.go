package model

import (
	"fmt"
	"strings"
)

// Document is a template parsed into an ordered list of raw lines plus
// the regions and assignments discovered in them. The engine mutates
// the document in place and serializes it back with Render; lines that
// belong to no region or assignment are never touched, so an
// unmodified document renders byte-identical to its input.
type Document struct {
	lines           []string
	trailingNewline bool
	regions         []Region
	assignments     map[string]int
	shellLine       int
}

// NewDocument creates a document from raw lines. trailingNewline
// records whether the source text ended with a newline so Render can
// reproduce it.
func NewDocument(lines []string, trailingNewline bool) *Document {
	return &Document{
		lines:           lines,
		trailingNewline: trailingNewline,
		assignments:     make(map[string]int),
		shellLine:       -1,
	}
}

// AddRegion registers a discovered region. The span must lie within
// the document's lines.
func (d *Document) AddRegion(r Region) error {
	if r.Start < 0 || r.End >= len(d.lines) || r.Start > r.End {
		return fmt.Errorf("region span out of range: %d..%d (document has %d lines)", r.Start, r.End, len(d.lines))
	}
	d.regions = append(d.regions, r)
	return nil
}

// AddAssignment registers an assignment line for a key. Returns an
// error if the key was already registered; assignment keys are unique
// within a document so rewrites stay unambiguous.
func (d *Document) AddAssignment(key string, index int) error {
	if prev, ok := d.assignments[key]; ok {
		return fmt.Errorf("duplicate assignment for %s (lines %d and %d)", key, prev+1, index+1)
	}
	d.assignments[key] = index
	return nil
}

// SetShellLine registers the CMD line index. Only the first CMD line
// is tracked.
func (d *Document) SetShellLine(index int) {
	if d.shellLine < 0 {
		d.shellLine = index
	}
}

// Regions returns the discovered regions in document order.
func (d *Document) Regions() []Region {
	return d.regions
}

// ProfileRegion returns the region for the given profile, or nil if
// the template has no block for it.
func (d *Document) ProfileRegion(p Profile) *Region {
	for i := range d.regions {
		if d.regions[i].Kind == RegionProfile && d.regions[i].Profile == p {
			return &d.regions[i]
		}
	}
	return nil
}

// ComponentRegion returns the install block region for the given
// component, or nil if the template has none.
func (d *Document) ComponentRegion(c Component) *Region {
	for i := range d.regions {
		if d.regions[i].Kind == RegionComponent && d.regions[i].Component == c {
			return &d.regions[i]
		}
	}
	return nil
}

// RegionActive reports whether the region is currently active
// (its first line carries no suppression prefix).
func (d *Document) RegionActive(r *Region) bool {
	return !strings.HasPrefix(d.lines[r.Start], SuppressPrefix)
}

// SetRegionState activates or suppresses a region. Every line in the
// span gets the suppression prefix added or stripped; lines already in
// the requested state are left alone, so the operation is idempotent
// and suppress-then-activate restores the original bytes.
func (d *Document) SetRegionState(r *Region, active bool) {
	for i := r.Start; i <= r.End; i++ {
		if active {
			d.lines[i] = strings.TrimPrefix(d.lines[i], SuppressPrefix)
		} else if !strings.HasPrefix(d.lines[i], SuppressPrefix) {
			d.lines[i] = SuppressPrefix + d.lines[i]
		}
	}
}

// HasAssignment reports whether the document has an assignment line
// for the key.
func (d *Document) HasAssignment(key string) bool {
	_, ok := d.assignments[key]
	return ok
}

// AssignmentValue returns the current value of an assignment, with a
// false second return if the key has no assignment line.
func (d *Document) AssignmentValue(key string) (string, bool) {
	idx, ok := d.assignments[key]
	if !ok {
		return "", false
	}
	line := d.lines[idx]
	eq := strings.Index(line, "=")
	if eq < 0 {
		return "", false
	}
	return line[eq+1:], true
}

// SetAssignmentValue replaces the value token of an assignment line,
// leaving everything up to and including the "=" untouched. Returns
// false if the key has no assignment line in the document.
func (d *Document) SetAssignmentValue(key, value string) bool {
	idx, ok := d.assignments[key]
	if !ok {
		return false
	}
	line := d.lines[idx]
	eq := strings.Index(line, "=")
	if eq < 0 {
		return false
	}
	d.lines[idx] = line[:eq+1] + value
	return true
}

// SetShellCommand rewrites the CMD line to invoke the given shell,
// preserving a suppression prefix if the line carries one. Returns
// false if the template has no CMD line.
func (d *Document) SetShellCommand(shell string) bool {
	if d.shellLine < 0 {
		return false
	}
	prefix := ""
	if strings.HasPrefix(d.lines[d.shellLine], SuppressPrefix) {
		prefix = SuppressPrefix
	}
	d.lines[d.shellLine] = fmt.Sprintf(`%sCMD ["%s"]`, prefix, shell)
	return true
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Line returns the raw text of the line at the given index.
func (d *Document) Line(index int) string {
	return d.lines[index]
}

// Render serializes the document back to text.
func (d *Document) Render() []byte {
	text := strings.Join(d.lines, "\n")
	if d.trailingNewline {
		text += "\n"
	}
	return []byte(text)
}
