// Package lineup assigns every channel in a numeric range to either a
// special role or a media file.
//
// Channels listed as static or ccd keep their role; every other channel
// takes the next media file in round-robin order, so with files [a b c]
// and static channel 5 the range 2..7 becomes a, b, c, static, a, b.
// The result is built once by [Assign] and never mutated.
package lineup
