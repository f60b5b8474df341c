package display

import (
	"fmt"
	"io"

	"github.com/backmassage/channelsurf/internal/term"
)

const banner = `      _                            _                  __
  ___| |__   __ _ _ __  _ __   ___| |___ _   _ _ __ / _|
 / __| '_ \ / _` + "`" + ` | '_ \| '_ \ / _ \ / __| | | | '__| |_
| (__| | | | (_| | | | | | | |  __/ \__ \ |_| | |  |  _|
 \___|_| |_|\__,_|_| |_|_| |_|\___|_|___/\__,_|_|  |_|
`

// PrintBanner writes the ASCII art banner to w, in magenta when colors are enabled.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, term.Paint(term.Magenta, banner))
	fmt.Fprintln(w)
}
