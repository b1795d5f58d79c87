package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/coordtask/pkg/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

const checkTaskFile = `
name = "build"

[pom]
coords = "org.example:parent:1.0"

[[dependency]]
coords = "com.google.guava:guava:32.1.3-jre"
exclusions = ["com.google.code.findbugs", "com.google.guava:guava"]
`

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "build.toml", checkTaskFile)

	out, err := executeCommand(t, "check", path)
	if err != nil {
		t.Fatalf("check error = %v\n%s", err, out)
	}

	for _, want := range []string{
		"build",
		"org.example:parent:1.0",
		"com.google.guava:guava:32.1.3-jre:jar::compile",
		"excludes com.google.code.findbugs:*:*:*",
		"dependency[0].exclusions[1]",
		"1 dependencies, 2 exclusions",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCheckCommandWithPOM(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "build.toml", checkTaskFile)
	pom := writeFile(t, dir, "pom.xml", `<project>
  <groupId>com.example</groupId>
  <artifactId>app</artifactId>
  <version>1.0.0</version>
  <dependencies>
    <dependency>
      <groupId>junit</groupId>
      <artifactId>junit</artifactId>
      <version>4.13</version>
      <scope>test</scope>
    </dependency>
  </dependencies>
</project>`)

	out, err := executeCommand(t, "check", path, "--pom", pom, "--json")
	if err != nil {
		t.Fatalf("check error = %v\n%s", err, out)
	}

	var report checkReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode report: %v\n%s", err, out)
	}
	if report.TaskFile == nil || len(report.TaskFile.Dependencies) != 1 {
		t.Fatalf("taskfile = %+v", report.TaskFile)
	}
	if report.POM == nil || len(report.POM.Dependencies) != 1 {
		t.Fatalf("pom import = %+v", report.POM)
	}
	if got := report.POM.Dependencies[0].Artifact.Scope; got != "test" {
		t.Errorf("imported scope = %q, want test", got)
	}
	if len(report.SelfExclusions) != 1 {
		t.Errorf("self exclusions = %+v", report.SelfExclusions)
	}
}

func TestCheckCommandPOMSelfExclusions(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "build.toml", "name = \"build\"\n")
	pom := writeFile(t, dir, "pom.xml", `<project>
  <groupId>com.example</groupId>
  <artifactId>app</artifactId>
  <version>1.0.0</version>
  <dependencies>
    <dependency>
      <groupId>org.slf4j</groupId>
      <artifactId>slf4j-api</artifactId>
      <version>2.0.9</version>
      <exclusions>
        <exclusion>
          <groupId>org.slf4j</groupId>
          <artifactId>slf4j-api</artifactId>
        </exclusion>
      </exclusions>
    </dependency>
  </dependencies>
</project>`)

	out, err := executeCommand(t, "check", path, "--pom", pom)
	if err != nil {
		t.Fatalf("check error = %v\n%s", err, out)
	}
	for _, want := range []string{
		"dependencies[0].exclusions[0]",
		"0 dependencies, 0 exclusions",
		"1 imported dependencies, 1 imported exclusions",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	out, err = executeCommand(t, "check", path, "--pom", pom, "--json")
	if err != nil {
		t.Fatalf("check --json error = %v\n%s", err, out)
	}
	var report checkReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode report: %v\n%s", err, out)
	}
	if len(report.POMSelfExclusions) != 1 {
		t.Errorf("pom self exclusions = %+v", report.POMSelfExclusions)
	}
}

func TestCheckCommandErrors(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.toml", "[[dependency]]\ncoords = \"g:a:v\"\n\n[[dependency]]\ncoords = \"g:a\"\n")

	_, err := executeCommand(t, "check", bad)
	if !errors.Is(err, errors.ErrCodeInvalidTaskFile) || !errors.Is(err, errors.ErrCodeInvalidCoordinate) {
		t.Fatalf("error = %v, want task file and coordinate codes", err)
	}
	if !strings.Contains(errors.UserMessage(err), "dependency[1].coords") {
		t.Errorf("message %q does not name the attribute", errors.UserMessage(err))
	}

	_, err = executeCommand(t, "check", filepath.Join(dir, "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v", err)
	}
}
