package resource

import (
	"fmt"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
)

// APIVersion is the api group version every kubecfg resource is emitted under.
const APIVersion = "v1"

type Metadata struct {
	Name   string            `json:"name"`
	Labels map[string]string `json:"labels"`
}

type Resource[T any] struct {
	APIVersion string   `json:"apiVersion"`
	Kind       string   `json:"kind"`
	Metadata   Metadata `json:"metadata"`
	Spec       T        `json:"spec"`
}

// ToObject converts a typed wire value into its unstructured form. Fields tagged omitempty
// are dropped when zero, the same way encoding/json would drop them.
func ToObject(value any) (*unstructured.Unstructured, error) {
	object, err := runtime.DefaultUnstructuredConverter.ToUnstructured(value)
	if err != nil {
		return nil, fmt.Errorf("failed to convert %T to unstructured: %w", value, err)
	}
	return &unstructured.Unstructured{Object: object}, nil
}
