package taskfile

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"

	"github.com/matzehuels/coordtask/pkg/coords"
	"github.com/matzehuels/coordtask/pkg/errors"
)

// POMImport is the result of reading a pom.xml.
type POMImport struct {
	Project      coords.Coordinate `json:"project"`
	Dependencies []Dependency      `json:"dependencies"`
	Skipped      []string          `json:"skipped,omitempty"` // groupId:artifactId with unresolved properties
}

// ImportPOM reads the project coordinates and the declared dependencies of
// a pom.xml. Missing groupId and version fall back to the parent POM.
// Dependencies whose groupId or artifactId is an unresolved ${...}
// property are listed in Skipped instead.
func ImportPOM(path string) (*POMImport, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "pom file %s", path)
	}
	if err != nil {
		return nil, err
	}

	var pom pomProject
	if err := xml.Unmarshal(data, &pom); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTaskFile, err, "%s: decode xml", path)
	}

	out, err := pom.toImport()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTaskFile, err, "%s", path)
	}
	return out, nil
}

// SelfExclusions lists imported exclusions that match their own dependency.
func (imp *POMImport) SelfExclusions() []SelfExclusion {
	return selfExclusions(imp.Dependencies, "dependencies")
}

// Exclusions returns the number of imported exclusion patterns.
func (imp *POMImport) Exclusions() int {
	return countExclusions(imp.Dependencies)
}

func (p *pomProject) toImport() (*POMImport, error) {
	p.trim()

	groupID, version := p.GroupID, p.Version
	if p.Parent != nil {
		if groupID == "" {
			groupID = p.Parent.GroupID
		}
		if version == "" {
			version = p.Parent.Version
		}
	}

	if err := checkSegments("project", groupID, p.ArtifactID, version); err != nil {
		return nil, err
	}
	project, err := coords.ParsePOM(join(groupID, p.ArtifactID, version))
	if err != nil {
		return nil, attrError(err, "project")
	}

	out := &POMImport{Project: project, Dependencies: []Dependency{}}
	for i, d := range p.Dependencies {
		// Skip dependencies with unresolved Maven properties
		if strings.HasPrefix(d.GroupID, "${") || strings.HasPrefix(d.ArtifactID, "${") {
			out.Skipped = append(out.Skipped, join(d.GroupID, d.ArtifactID))
			continue
		}

		attr := fmt.Sprintf("dependencies[%d]", i)
		if err := checkSegments(attr, d.GroupID, d.ArtifactID, d.Version, d.Type, d.Classifier, d.Scope); err != nil {
			return nil, err
		}
		art, err := coords.ParseDependency(d.raw())
		if err != nil {
			return nil, attrError(err, "%s", attr)
		}

		dep := Dependency{Artifact: art}
		for j, e := range d.Exclusions {
			attr := fmt.Sprintf("dependencies[%d].exclusions[%d]", i, j)
			if err := checkSegments(attr, e.GroupID, e.ArtifactID); err != nil {
				return nil, err
			}
			raw := e.GroupID
			if e.ArtifactID != "" {
				raw = join(e.GroupID, e.ArtifactID)
			}
			excl, err := coords.ParseExclusion(raw)
			if err != nil {
				return nil, attrError(err, "%s", attr)
			}
			dep.Exclusions = append(dep.Exclusions, excl)
		}
		out.Dependencies = append(out.Dependencies, dep)
	}
	return out, nil
}

// trim strips the whitespace XML text keeps around element values.
func (p *pomProject) trim() {
	trimAll(&p.GroupID, &p.ArtifactID, &p.Version)
	if p.Parent != nil {
		trimAll(&p.Parent.GroupID, &p.Parent.ArtifactID, &p.Parent.Version)
	}
	for i := range p.Dependencies {
		d := &p.Dependencies[i]
		trimAll(&d.GroupID, &d.ArtifactID, &d.Version, &d.Type, &d.Classifier, &d.Scope)
		for j := range d.Exclusions {
			trimAll(&d.Exclusions[j].GroupID, &d.Exclusions[j].ArtifactID)
		}
	}
}

func trimAll(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}

// checkSegments rejects element values containing the coordinate separator,
// which would shift every following segment once joined.
func checkSegments(attr string, values ...string) error {
	for _, v := range values {
		if strings.Contains(v, coords.Separator) {
			return errors.New(errors.ErrCodeInvalidTaskFile,
				"%s: value %q contains %q", attr, v, coords.Separator)
		}
	}
	return nil
}

// raw builds the shortest coords string that carries every element the
// dependency sets, leaving the rest to the grammar's defaults.
func (d pomDependency) raw() string {
	segs := []string{d.GroupID, d.ArtifactID, d.Version}
	switch {
	case d.Classifier != "":
		segs = append(segs, orDefault(d.Type, coords.DefaultType), d.Classifier, orDefault(d.Scope, coords.DefaultScope))
	case d.Type != "":
		segs = append(segs, d.Type, orDefault(d.Scope, coords.DefaultScope))
	case d.Scope != "":
		segs = append(segs, d.Scope)
	}
	return join(segs...)
}

func join(segs ...string) string {
	return strings.Join(segs, coords.Separator)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

type pomProject struct {
	GroupID      string          `xml:"groupId"`
	ArtifactID   string          `xml:"artifactId"`
	Version      string          `xml:"version"`
	Dependencies []pomDependency `xml:"dependencies>dependency"`
	Parent       *pomParent      `xml:"parent"`
}

type pomParent struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
}

type pomDependency struct {
	GroupID    string         `xml:"groupId"`
	ArtifactID string         `xml:"artifactId"`
	Version    string         `xml:"version"`
	Type       string         `xml:"type"`
	Classifier string         `xml:"classifier"`
	Scope      string         `xml:"scope"`
	Exclusions []pomExclusion `xml:"exclusions>exclusion"`
}

type pomExclusion struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
}
