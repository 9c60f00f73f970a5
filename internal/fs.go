package internal

import (
	"encoding/json"
	"io"
	"os"
)

func WriteJSON(filename string, value any) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	return EncodeJSON(file, value)
}

// EncodeJSON writes value with two space indentation followed by a newline.
// Map keys are emitted in sorted order.
func EncodeJSON(w io.Writer, value any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(value)
}
