// Package render serializes a lineup as the JavaScript declaration loaded
// by the player page, and writes it to disk atomically.
package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/backmassage/channelsurf/internal/lineup"
)

// Declaration returns the two-variable script for l:
//
//	var videoFilenames = ['video/a.mp4', 'video/b.mp4'];
//	var channelSources = {
//	    2: 'video/a.mp4',
//	    3: 'static'
//	};
func Declaration(l *lineup.Lineup, prefix string) []byte {
	var b bytes.Buffer

	paths := make([]string, len(l.Files))
	for i, f := range l.Files {
		paths[i] = Quote(MediaPath(prefix, f))
	}
	b.WriteString("var videoFilenames = [")
	b.WriteString(strings.Join(paths, ", "))
	b.WriteString("];\n")

	b.WriteString("var channelSources = {\n")
	for i, a := range l.Assignments {
		src := string(a.Role)
		if a.IsMedia() {
			src = MediaPath(prefix, l.File(a))
		}
		fmt.Fprintf(&b, "    %d: %s", a.Channel, Quote(src))
		if i < len(l.Assignments)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString("};\n")
	return b.Bytes()
}

// MediaPath joins prefix and name with a forward slash regardless of host
// separator. An empty prefix yields the bare name.
func MediaPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}

// Quote returns s as a single-quoted JavaScript string literal.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\u2028', '\u2029':
			// Line terminators inside string literals break older parsers.
			b.WriteString(`\u` + strconv.FormatInt(int64(r), 16))
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\x%02x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}
