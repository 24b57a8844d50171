// Package scaffold generates the build assets for a new system.
//
// Each system directory gets a Dockerfile, a test.asm program and a README.
// The Dockerfile and test program vary with the system's CPU family; the
// assembler install step and platform initialization are left as TODO
// placeholders for the developer to fill in.
package scaffold
