package parser

import (
	"context"
	"strings"

	"github.com/tacogips/dockergen/internal/debug"
	"github.com/tacogips/dockergen/internal/template/model"
)

// Line markers recognized by the structural scan. Matching is anchored
// at the start of the line content (after the optional suppression
// prefix) so unrelated text can never partially match.
const (
	fromMarker         = "FROM "
	argMarker          = "ARG "
	cmdMarker          = "CMD ["
	installGuardPrefix = `RUN if [ "$`
	installGuardSuffix = `" = "true" ]`
	blockEndMarker     = "fi"
)

// Parser turns raw template text into a structured document.
type Parser interface {
	// Parse scans the template and returns a document with all
	// discovered regions and assignments.
	Parse(ctx context.Context, input []byte) (*model.Document, error)

	// Validate checks template structure without returning a document.
	Validate(ctx context.Context, input []byte) error
}

// DefaultParser implements Parser.
type DefaultParser struct{}

// NewParser creates a new DefaultParser.
func NewParser() Parser {
	return &DefaultParser{}
}

// Parse scans the template and returns a structured document.
func (p *DefaultParser) Parse(ctx context.Context, input []byte) (*model.Document, error) {
	debug.Debug("[parser] Parse: starting with input size=%d bytes", len(input))
	return parseInternal(input)
}

// Validate checks template structure without returning a document.
func (p *DefaultParser) Validate(ctx context.Context, input []byte) error {
	_, err := parseInternal(input)
	return err
}

// parseInternal is the structural scan. It walks the template once,
// records profile regions, component install blocks, assignment lines
// and the CMD line, and leaves every other line untouched.
func parseInternal(input []byte) (*model.Document, error) {
	text := string(input)
	trailingNewline := strings.HasSuffix(text, "\n")
	if trailingNewline {
		text = strings.TrimSuffix(text, "\n")
	}
	lines := strings.Split(text, "\n")
	doc := model.NewDocument(lines, trailingNewline)

	for i := 0; i < len(lines); i++ {
		content := lineContent(lines[i])

		switch {
		case strings.HasPrefix(content, fromMarker):
			end := blockEnd(lines, i)
			if profile, ok := profileForImage(content); ok {
				if err := doc.AddRegion(model.Region{
					Kind:    model.RegionProfile,
					Profile: profile,
					Start:   i,
					End:     end,
				}); err != nil {
					return nil, newParseError(InvalidRegion, err.Error(), i+1, lines[i])
				}
				debug.Debug("[parser] profile region %s: lines %d-%d", profile, i+1, end+1)
				i = end
			}

		case strings.HasPrefix(content, installGuardPrefix):
			key, ok := installGuardKey(content)
			if !ok {
				break
			}
			end, found := findBlockEnd(lines, i)
			if !found {
				return nil, newParseError(UnclosedBlock,
					"install block is missing its closing fi", i+1, lines[i])
			}
			if component, known := model.ComponentByFlagKey(key); known {
				if err := doc.AddRegion(model.Region{
					Kind:      model.RegionComponent,
					Component: component,
					Start:     i,
					End:       end,
				}); err != nil {
					return nil, newParseError(InvalidRegion, err.Error(), i+1, lines[i])
				}
				debug.Debug("[parser] component block %s: lines %d-%d", component, i+1, end+1)
			}
			i = end

		case strings.HasPrefix(content, argMarker):
			if err := recordAssignment(doc, content, i, lines[i]); err != nil {
				return nil, err
			}

		case strings.HasPrefix(content, cmdMarker):
			doc.SetShellLine(i)
		}
	}

	debug.Debug("[parser] Parse complete: %d lines, %d regions", len(lines), len(doc.Regions()))
	return doc, nil
}

// lineContent strips the suppression prefix so markers are recognized
// independent of a region's active/suppressed state.
func lineContent(line string) string {
	return strings.TrimPrefix(line, model.SuppressPrefix)
}

// profileForImage maps a FROM line to a profile by the image's base
// name (e.g. "FROM ubuntu:22.04" -> ubuntu). Unknown images are not
// treated as profile regions.
func profileForImage(content string) (model.Profile, bool) {
	image := strings.TrimSpace(strings.TrimPrefix(content, fromMarker))
	if idx := strings.IndexAny(image, " \t"); idx >= 0 {
		image = image[:idx]
	}
	base := image
	if idx := strings.IndexAny(base, ":/@"); idx >= 0 {
		base = base[:idx]
	}
	profile, err := model.ParseProfile(base)
	if err != nil {
		return "", false
	}
	return profile, true
}

// installGuardKey extracts the flag key from an install block guard
// line (RUN if [ "$INSTALL_GOLANG" = "true" ] -> INSTALL_GOLANG).
// The guard must match the full marker shape.
func installGuardKey(content string) (string, bool) {
	rest := strings.TrimPrefix(content, installGuardPrefix)
	end := strings.Index(rest, `"`)
	if end <= 0 {
		return "", false
	}
	if !strings.HasPrefix(rest[end:], installGuardSuffix) {
		return "", false
	}
	return rest[:end], true
}

// blockEnd returns the index of the last line before the next blank
// line (or the last line of the document).
func blockEnd(lines []string, start int) int {
	end := start
	for end+1 < len(lines) && strings.TrimSpace(lines[end+1]) != "" {
		end++
	}
	return end
}

// findBlockEnd scans forward for the line closing an install block.
func findBlockEnd(lines []string, start int) (int, bool) {
	for i := start + 1; i < len(lines); i++ {
		if strings.TrimSpace(lineContent(lines[i])) == blockEndMarker {
			return i, true
		}
	}
	return 0, false
}

// recordAssignment registers an ARG line whose key belongs to the
// known option vocabulary. ARG lines with unknown keys pass through
// untouched.
func recordAssignment(doc *model.Document, content string, index int, raw string) error {
	body := strings.TrimPrefix(content, argMarker)
	eq := strings.Index(body, "=")
	key := body
	if eq >= 0 {
		key = body[:eq]
	}
	key = strings.TrimSpace(key)
	if !isKnownKey(key) {
		return nil
	}
	if eq < 0 {
		return newParseError(MalformedAssignment,
			"assignment for "+key+" has no value", index+1, raw)
	}
	if err := doc.AddAssignment(key, index); err != nil {
		return newParseError(DuplicateAssignment, err.Error(), index+1, raw)
	}
	return nil
}

// isKnownKey reports whether the key belongs to the closed option
// vocabulary (an enable flag or a version parameter).
func isKnownKey(key string) bool {
	if _, ok := model.ComponentByFlagKey(key); ok {
		return true
	}
	for _, c := range model.Components() {
		if vk := c.VersionKey(); vk != "" && vk == key {
			return true
		}
	}
	return false
}
