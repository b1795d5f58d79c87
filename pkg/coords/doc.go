// Package coords parses Maven-style artifact coordinates.
//
// # Overview
//
// A coordinate string is a colon-delimited list of segments, for example
// "com.google.guava:guava:32.1.3-jre". Build files hand these strings to a
// task runner through a single coords attribute; this package turns them
// into a [Coordinate] value that a dependency resolver, an exclusion filter
// or a POM reference can consume.
//
// # Grammars
//
// There are three grammars, selected by [Variant]:
//
//	Dependency  groupId:artifactId:version
//	            groupId:artifactId:version:scope
//	            groupId:artifactId:version:type:scope
//	            groupId:artifactId:version:type:classifier:scope
//
//	Exclusion   groupId
//	            groupId:artifactId
//	            groupId:artifactId:extension
//	            groupId:artifactId:extension:classifier
//
//	POM         groupId:artifactId:version
//
// Missing dependency fields default to type "jar", classifier "" and scope
// "compile". Missing exclusion fields default to the [Wildcard] "*".
//
// # Empty Segments
//
// Splitting never drops empty segments: "a:b:c:" has four segments, the last
// one empty. For exclusions this matters. "g:a:jar" leaves the classifier
// absent, so it becomes "*"; "g:a:jar:" gives an explicit empty classifier,
// which stays "" and matches only unclassified artifacts.
//
// Identifiers are not validated. An empty groupId is carried through as "".
//
// # Errors
//
// A segment count outside the accepted range returns an error with code
// [errors.ErrCodeInvalidCoordinate] wrapping a [*SyntaxError]. No partially
// filled Coordinate is ever returned.
//
// All functions are pure and safe for concurrent use.
package coords
