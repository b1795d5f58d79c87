// Package pkg provides the libraries behind coordtask.
//
// # Overview
//
// coordtask sits between a task runner and a dependency resolver. Build
// files declare artifacts through colon-delimited coords attributes; the
// packages here turn those strings into structured records:
//
//  1. [coords] - The coordinate parser (dependency, exclusion and POM grammars)
//  2. [taskfile] - Task-file and pom.xml loading on top of the parser
//  3. [errors] - Coded errors shared by the CLI and the HTTP endpoint
//  4. [buildinfo] - Version information set at build time
//
// # Data Flow
//
//	Task file (TOML) / pom.xml
//	         ↓
//	    [taskfile] package (read coords attributes)
//	         ↓
//	    [coords] package (parse, default, validate segment count)
//	         ↓
//	    Coordinate values for the external resolver
//
// # Quick Start
//
//	dep, err := coords.ParseDependency("junit:junit:4.13:test")
//	if err != nil {
//	    // errors.Is(err, errors.ErrCodeInvalidCoordinate)
//	}
//	fmt.Println(dep.Scope) // "test"
//
//	tf, err := taskfile.Load("build.toml")
//	for _, d := range tf.Dependencies {
//	    fmt.Println(d.Artifact, len(d.Exclusions))
//	}
//
// Resolution, repository access and version ranges are not handled here;
// the parsed values are handed to a resolver outside this module.
//
// [coords]: https://pkg.go.dev/github.com/matzehuels/coordtask/pkg/coords
// [taskfile]: https://pkg.go.dev/github.com/matzehuels/coordtask/pkg/taskfile
// [errors]: https://pkg.go.dev/github.com/matzehuels/coordtask/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/coordtask/pkg/buildinfo
package pkg
