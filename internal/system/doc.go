// Package system defines the per-platform record kept in systems-config.json.
//
// An Info holds what an operator types in when adding a system. New turns it
// into a Record, deriving the test and verify command fields from the output
// file extension. Records read from disk round-trip through JSON without
// losing key order or unknown keys.
package system
