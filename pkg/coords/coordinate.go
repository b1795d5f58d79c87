package coords

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/matzehuels/coordtask/pkg/errors"
)

const (
	// Separator delimits coordinate segments.
	Separator = ":"

	// Wildcard matches any value in an exclusion pattern.
	Wildcard = "*"

	DefaultType       = "jar"     // Dependency type when absent
	DefaultClassifier = ""        // Dependency classifier when absent
	DefaultScope      = "compile" // Dependency scope when absent
)

// Variant selects the grammar used to parse a coordinate string.
type Variant int

const (
	// Dependency is a resolvable artifact with version and scope.
	Dependency Variant = iota
	// Exclusion is a pattern removing transitive artifacts.
	Exclusion
	// POM is a bare groupId:artifactId:version reference.
	POM
)

var variantNames = [...]string{
	Dependency: "dependency",
	Exclusion:  "exclusion",
	POM:        "pom",
}

var variantAliases = map[string]Variant{
	"dependency": Dependency,
	"dep":        Dependency,
	"exclusion":  Exclusion,
	"excl":       Exclusion,
	"pom":        POM,
}

// String returns the lowercase variant name.
func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return fmt.Sprintf("variant(%d)", int(v))
	}
	return variantNames[v]
}

// MarshalText encodes the variant as its name.
func (v Variant) MarshalText() ([]byte, error) {
	if v < 0 || int(v) >= len(variantNames) {
		return nil, errors.New(errors.ErrCodeInvalidVariant, "unknown variant %d", int(v))
	}
	return []byte(v.String()), nil
}

// UnmarshalText decodes a variant name or alias.
func (v *Variant) UnmarshalText(text []byte) error {
	parsed, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// ParseVariant resolves a variant name. Accepted names are "dependency",
// "dep", "exclusion", "excl" and "pom", case-insensitive.
func ParseVariant(name string) (Variant, error) {
	if v, ok := variantAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return v, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidVariant,
		"unknown coordinate variant %q (expected dependency, exclusion or pom)", name)
}

// Coordinate identifies an artifact or, for exclusions, a pattern of artifacts.
//
// Which fields are meaningful depends on Variant:
//   - Dependency: all fields.
//   - Exclusion: GroupID, ArtifactID, Type (the extension) and Classifier,
//     any of which may be [Wildcard]. Version and Scope are empty.
//   - POM: GroupID, ArtifactID and Version.
//
// Coordinate is a comparable value; use == to compare parse results.
//
// The JSON form always writes every field of its variant, empty or not, and
// names the exclusion extension "extension".
type Coordinate struct {
	Variant    Variant
	GroupID    string
	ArtifactID string
	Version    string
	Type       string
	Classifier string
	Scope      string
}

type dependencyJSON struct {
	Variant    Variant `json:"variant"`
	GroupID    string  `json:"groupId"`
	ArtifactID string  `json:"artifactId"`
	Version    string  `json:"version"`
	Type       string  `json:"type"`
	Classifier string  `json:"classifier"`
	Scope      string  `json:"scope"`
}

type exclusionJSON struct {
	Variant    Variant `json:"variant"`
	GroupID    string  `json:"groupId"`
	ArtifactID string  `json:"artifactId"`
	Extension  string  `json:"extension"`
	Classifier string  `json:"classifier"`
}

type pomJSON struct {
	Variant    Variant `json:"variant"`
	GroupID    string  `json:"groupId"`
	ArtifactID string  `json:"artifactId"`
	Version    string  `json:"version"`
}

// MarshalJSON writes the fields of the coordinate's variant.
func (c Coordinate) MarshalJSON() ([]byte, error) {
	switch c.Variant {
	case Exclusion:
		return json.Marshal(exclusionJSON{c.Variant, c.GroupID, c.ArtifactID, c.Type, c.Classifier})
	case POM:
		return json.Marshal(pomJSON{c.Variant, c.GroupID, c.ArtifactID, c.Version})
	default:
		return json.Marshal(dependencyJSON{c.Variant, c.GroupID, c.ArtifactID, c.Version, c.Type, c.Classifier, c.Scope})
	}
}

// UnmarshalJSON reads the form written by MarshalJSON. Absent fields stay
// empty; no grammar defaults are applied.
func (c *Coordinate) UnmarshalJSON(data []byte) error {
	var raw struct {
		dependencyJSON
		Extension string `json:"extension"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d := raw.dependencyJSON
	*c = Coordinate{
		Variant:    d.Variant,
		GroupID:    d.GroupID,
		ArtifactID: d.ArtifactID,
		Version:    d.Version,
		Type:       d.Type,
		Classifier: d.Classifier,
		Scope:      d.Scope,
	}
	if d.Variant == Exclusion {
		c.Type = raw.Extension
	}
	return nil
}

// Extension returns the exclusion extension, stored in Type.
func (c Coordinate) Extension() string {
	return c.Type
}

// ID returns "groupId:artifactId".
func (c Coordinate) ID() string {
	return c.GroupID + Separator + c.ArtifactID
}

// String returns the fully specified form for the coordinate's variant:
//
//	Dependency  groupId:artifactId:version:type:classifier:scope
//	Exclusion   groupId:artifactId:extension:classifier
//	POM         groupId:artifactId:version
//
// Parsing the result with the same variant yields an equal Coordinate.
func (c Coordinate) String() string {
	var parts []string
	switch c.Variant {
	case Exclusion:
		parts = []string{c.GroupID, c.ArtifactID, c.Type, c.Classifier}
	case POM:
		parts = []string{c.GroupID, c.ArtifactID, c.Version}
	default:
		parts = []string{c.GroupID, c.ArtifactID, c.Version, c.Type, c.Classifier, c.Scope}
	}
	return strings.Join(parts, Separator)
}

// Matches reports whether the exclusion pattern c matches the artifact a.
// GroupID, ArtifactID, extension and Classifier are compared; a [Wildcard]
// field in c matches anything, any other value must be equal. An explicit
// empty classifier only matches artifacts without a classifier.
func (c Coordinate) Matches(a Coordinate) bool {
	return matchField(c.GroupID, a.GroupID) &&
		matchField(c.ArtifactID, a.ArtifactID) &&
		matchField(c.Type, a.Type) &&
		matchField(c.Classifier, a.Classifier)
}

func matchField(pattern, value string) bool {
	return pattern == Wildcard || pattern == value
}
