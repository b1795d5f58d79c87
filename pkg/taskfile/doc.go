// Package taskfile loads the build-file declarations that feed coordinates
// to the task runner.
//
// # Format
//
// A task file is TOML. Every artifact is declared through a coords
// attribute that is parsed with [coords]:
//
//	name = "build"
//
//	[pom]
//	coords = "org.example:parent:1.0"
//
//	[[dependency]]
//	coords = "com.google.guava:guava:32.1.3-jre"
//	exclusions = ["com.google.code.findbugs", "org.checkerframework:checker-qual"]
//
//	[[dependency]]
//	coords = "junit:junit:4.13:test"
//
// # Errors
//
// A malformed coords string fails the whole load. The returned error has
// code [errors.ErrCodeInvalidTaskFile], names the attribute
// ("dependency[1].coords", "dependency[0].exclusions[2]", "pom.coords") and
// wraps the coordinate error, so both codes match with [errors.Is].
// Unknown keys are rejected the same way to catch typos such as "coord".
//
// # pom.xml Import
//
// [ImportPOM] reads the dependencies of an existing pom.xml and runs them
// through the same dependency and exclusion grammars, so defaults such as
// type "jar" and scope "compile" are applied in exactly one place.
package taskfile
