package resource

import (
	"testing"

	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
)

func TestToObject(t *testing.T) {
	service := Service{
		APIVersion: APIVersion,
		Kind:       "Service",
		Metadata:   Metadata{Name: "web", Labels: map[string]string{"stack": "example"}},
		Spec: ServiceSpec{
			Type:  corev1.ServiceTypeClusterIP,
			Ports: []ServicePort{{Port: 80}},
		},
	}

	object, err := ToObject(&service)
	require.NoError(t, err)
	require.Equal(t, map[string]any{
		"apiVersion": "v1",
		"kind":       "Service",
		"metadata": map[string]any{
			"name":   "web",
			"labels": map[string]any{"stack": "example"},
		},
		"spec": map[string]any{
			"type":  "ClusterIP",
			"ports": []any{map[string]any{"port": int64(80)}},
		},
	}, object.Object)
}

func TestToObjectRequiresPointer(t *testing.T) {
	_, err := ToObject(Container{Name: "app"})
	require.ErrorContains(t, err, "failed to convert resource.Container to unstructured")
}
