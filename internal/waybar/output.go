package waybar

import (
	"encoding/json"
	"fmt"
	"io"
)

// Emit writes out as a single line of JSON. HTML escaping is off so the
// Pango tags reach Waybar unchanged.
func Emit(w io.Writer, out Output) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding waybar output: %w", err)
	}
	return nil
}
