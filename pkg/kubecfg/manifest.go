package kubecfg

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/davidmdm/x/xerr"

	"github.com/chive/kubecfg/internal"
)

// Manifest is a document bound to the file it is saved as.
type Manifest struct {
	Filename string
	Document
}

// Bytes renders the manifest exactly as Save writes it: two space indentation, sorted keys and a trailing newline.
func (manifest Manifest) Bytes() ([]byte, error) {
	var buffer bytes.Buffer
	if err := internal.EncodeJSON(&buffer, manifest.Object.Object); err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", manifest.Filename, err)
	}
	return buffer.Bytes(), nil
}

func Filename(stack, component string, tag Tag) string {
	return strings.Join([]string{stack, component, string(tag)}, "-") + ".json"
}

// Manifests serializes every component of the stack, in creation order.
func (stack *Stack) Manifests() ([]Manifest, error) {
	var manifests []Manifest
	for _, component := range stack.components {
		documents, err := component.Serialize()
		if err != nil {
			return nil, fmt.Errorf("failed to serialize component: %w", err)
		}
		for _, document := range documents {
			manifests = append(manifests, Manifest{
				Filename: Filename(stack.Name, component.Name, document.Tag),
				Document: document,
			})
		}
	}
	return manifests, nil
}

// Save writes one json file per manifest into dir, creating dir if needed. Existing files are overwritten.
// Writes are independent: a failure does not undo files already written and does not stop the remaining writes.
func (stack *Stack) Save(dir string) error {
	manifests, err := stack.Manifests()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var errs []error
	for _, manifest := range manifests {
		if err := internal.WriteJSON(filepath.Join(dir, manifest.Filename), manifest.Object.Object); err != nil {
			errs = append(errs, err)
		}
	}

	return xerr.MultiErrOrderedFrom("failed to write manifest(s)", errs...)
}

// Export writes every manifest to w as a single yaml mapping keyed by filename.
func (stack *Stack) Export(w io.Writer) error {
	manifests, err := stack.Manifests()
	if err != nil {
		return err
	}

	output := make(map[string]any, len(manifests))
	for _, manifest := range manifests {
		output[manifest.Filename] = manifest.Object.Object
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(output); err != nil {
		return err
	}
	return encoder.Close()
}
