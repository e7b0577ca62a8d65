// Package invariants gates expensive internal consistency checks behind the
// "invariants" and "race" build tags.
//
// Code guarded by Enabled compiles away in regular builds:
//
//	if invariants.Enabled {
//		... check, panic on violation ...
//	}
package invariants
