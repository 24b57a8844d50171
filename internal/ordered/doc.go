// Package ordered provides JSON objects that keep their member order.
//
// encoding/json decodes objects into maps and re-encodes them with sorted
// keys. Hand-edited config files must come back out in the order they went
// in, so callers decode into an Object instead and only rewrite the members
// they own.
package ordered
