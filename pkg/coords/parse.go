package coords

import (
	"fmt"
	"strings"

	"github.com/matzehuels/coordtask/pkg/errors"
)

// grammar describes the accepted segment counts of a variant.
type grammar struct {
	min, max int
	form     string
}

var grammars = map[Variant]grammar{
	Dependency: {3, 6, "groupId:artifactId:version[[:type[:classifier]]:scope]"},
	Exclusion:  {1, 4, "groupId[:artifactId[:extension[:classifier]]]"},
	POM:        {3, 3, "groupId:artifactId:version"},
}

// SyntaxError reports a coordinate string with the wrong number of segments.
type SyntaxError struct {
	Raw      string  // Input as given
	Variant  Variant // Grammar it was parsed with
	Segments int     // Segment count found
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	g := grammars[e.Variant]
	return fmt.Sprintf("got %d segments, expected %s (%s)", e.Segments, e.Expected(), g.form)
}

// Expected returns the accepted segment counts, e.g. "3-6" or "3".
func (e *SyntaxError) Expected() string {
	g := grammars[e.Variant]
	if g.min == g.max {
		return fmt.Sprintf("%d", g.min)
	}
	return fmt.Sprintf("%d-%d", g.min, g.max)
}

func syntaxError(v Variant, raw string, n int) error {
	return errors.Wrap(errors.ErrCodeInvalidCoordinate,
		&SyntaxError{Raw: raw, Variant: v, Segments: n},
		"invalid %s coordinates %q", v, raw)
}

// split cuts raw at every separator, keeping empty segments.
func split(v Variant, raw string) ([]string, error) {
	segs := strings.Split(raw, Separator)
	if g := grammars[v]; len(segs) < g.min || len(segs) > g.max {
		return nil, syntaxError(v, raw, len(segs))
	}
	return segs, nil
}

// Parse parses raw with the grammar selected by v.
func Parse(v Variant, raw string) (Coordinate, error) {
	switch v {
	case Dependency:
		return ParseDependency(raw)
	case Exclusion:
		return ParseExclusion(raw)
	case POM:
		return ParsePOM(raw)
	default:
		return Coordinate{}, errors.New(errors.ErrCodeInvalidVariant, "unknown coordinate variant %d", int(v))
	}
}

// ParseDependency parses "groupId:artifactId:version[[:type[:classifier]]:scope]".
//
//	g:a:v          type "jar", classifier "", scope "compile"
//	g:a:v:s        type "jar", classifier ""
//	g:a:v:t:s      classifier ""
//	g:a:v:t:c:s    as given
func ParseDependency(raw string) (Coordinate, error) {
	s, err := split(Dependency, raw)
	if err != nil {
		return Coordinate{}, err
	}

	c := Coordinate{
		Variant:    Dependency,
		GroupID:    s[0],
		ArtifactID: s[1],
		Version:    s[2],
		Type:       DefaultType,
		Classifier: DefaultClassifier,
		Scope:      DefaultScope,
	}
	switch len(s) {
	case 4:
		c.Scope = s[3]
	case 5:
		c.Type, c.Scope = s[3], s[4]
	case 6:
		c.Type, c.Classifier, c.Scope = s[3], s[4], s[5]
	}
	return c, nil
}

// ParseExclusion parses "groupId[:artifactId[:extension[:classifier]]]".
// Absent fields become [Wildcard]. A present but empty classifier stays "".
func ParseExclusion(raw string) (Coordinate, error) {
	s, err := split(Exclusion, raw)
	if err != nil {
		return Coordinate{}, err
	}

	c := Coordinate{
		Variant:    Exclusion,
		GroupID:    s[0],
		ArtifactID: Wildcard,
		Type:       Wildcard,
		Classifier: Wildcard,
	}
	if len(s) > 1 {
		c.ArtifactID = s[1]
	}
	if len(s) > 2 {
		c.Type = s[2]
	}
	if len(s) > 3 {
		c.Classifier = s[3]
	}
	return c, nil
}

// ParsePOM parses exactly "groupId:artifactId:version". Nothing is defaulted.
func ParsePOM(raw string) (Coordinate, error) {
	s, err := split(POM, raw)
	if err != nil {
		return Coordinate{}, err
	}
	return Coordinate{
		Variant:    POM,
		GroupID:    s[0],
		ArtifactID: s[1],
		Version:    s[2],
	}, nil
}
