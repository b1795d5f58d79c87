package taskfile

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/coordtask/pkg/coords"
	"github.com/matzehuels/coordtask/pkg/errors"
)

// TaskFile is a loaded and fully parsed task file.
type TaskFile struct {
	Path         string             `json:"path,omitempty"`
	Name         string             `json:"name,omitempty"`
	POM          *coords.Coordinate `json:"pom,omitempty"`
	Dependencies []Dependency       `json:"dependencies"`
}

// Dependency is a declared artifact with its exclusion patterns.
type Dependency struct {
	Artifact   coords.Coordinate   `json:"artifact"`
	Exclusions []coords.Coordinate `json:"exclusions,omitempty"`
}

// Excludes reports whether any exclusion pattern of d matches a.
func (d Dependency) Excludes(a coords.Coordinate) bool {
	for _, e := range d.Exclusions {
		if e.Matches(a) {
			return true
		}
	}
	return false
}

// SelfExclusion is an exclusion pattern that matches its own dependency.
type SelfExclusion struct {
	Index     int               // Position in TaskFile.Dependencies
	Attribute string            // e.g. "dependency[0].exclusions[1]"
	Pattern   coords.Coordinate // The offending exclusion
}

// SelfExclusions lists exclusions that match the dependency declaring them.
// Such patterns are legal but almost always a mistake.
func (f *TaskFile) SelfExclusions() []SelfExclusion {
	return selfExclusions(f.Dependencies, "dependency")
}

// Exclusions returns the number of exclusion patterns across all dependencies.
func (f *TaskFile) Exclusions() int {
	return countExclusions(f.Dependencies)
}

// selfExclusions checks every exclusion of deps against its own artifact.
// attr names the dependency list in the reported attribute.
func selfExclusions(deps []Dependency, attr string) []SelfExclusion {
	var out []SelfExclusion
	for i, d := range deps {
		for j, e := range d.Exclusions {
			if e.Matches(d.Artifact) {
				out = append(out, SelfExclusion{
					Index:     i,
					Attribute: fmt.Sprintf("%s[%d].exclusions[%d]", attr, i, j),
					Pattern:   e,
				})
			}
		}
	}
	return out
}

func countExclusions(deps []Dependency) int {
	n := 0
	for _, d := range deps {
		n += len(d.Exclusions)
	}
	return n
}

type rawFile struct {
	Name         string          `toml:"name"`
	POM          *rawPOM         `toml:"pom"`
	Dependencies []rawDependency `toml:"dependency"`
}

type rawPOM struct {
	Coords string `toml:"coords"`
}

type rawDependency struct {
	Coords     string   `toml:"coords"`
	Exclusions []string `toml:"exclusions"`
}

// Load reads and parses the task file at path.
func Load(path string) (*TaskFile, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "task file %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open task file: %w", err)
	}
	defer f.Close()

	tf, err := Decode(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTaskFile, err, "%s", path)
	}
	tf.Path = path
	return tf, nil
}

// Decode parses a task file from r.
func Decode(r io.Reader) (*TaskFile, error) {
	var raw rawFile
	md, err := toml.NewDecoder(r).Decode(&raw)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTaskFile, err, "decode toml")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidTaskFile, "unknown keys: %s", strings.Join(keys, ", "))
	}
	return build(raw)
}

func build(raw rawFile) (*TaskFile, error) {
	tf := &TaskFile{
		Name:         raw.Name,
		Dependencies: make([]Dependency, 0, len(raw.Dependencies)),
	}

	if raw.POM != nil {
		pom, err := coords.ParsePOM(raw.POM.Coords)
		if err != nil {
			return nil, attrError(err, "pom.coords")
		}
		tf.POM = &pom
	}

	for i, rd := range raw.Dependencies {
		art, err := coords.ParseDependency(rd.Coords)
		if err != nil {
			return nil, attrError(err, "dependency[%d].coords", i)
		}
		dep := Dependency{Artifact: art}
		for j, rawExcl := range rd.Exclusions {
			excl, err := coords.ParseExclusion(rawExcl)
			if err != nil {
				return nil, attrError(err, "dependency[%d].exclusions[%d]", i, j)
			}
			dep.Exclusions = append(dep.Exclusions, excl)
		}
		tf.Dependencies = append(tf.Dependencies, dep)
	}
	return tf, nil
}

func attrError(err error, format string, args ...any) error {
	return errors.Wrap(errors.ErrCodeInvalidTaskFile, err, format, args...)
}
