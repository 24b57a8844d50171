// Package matrix projects the systems config into CI and documentation outputs.
//
// Every output is a pure function of the systems list and the selected Mode:
//
//   - build, verify: GitHub Actions matrix "include" lists in YAML form
//   - json: the build matrix as a JSON object
//   - table: a Markdown table of Docker images
//   - assemblers: a JavaScript object mapping each system to its assembler invocation
package matrix
