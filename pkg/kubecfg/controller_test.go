package kubecfg

import (
	"testing"

	"github.com/stretchr/testify/require"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

func TestReplicationControllerObject(t *testing.T) {
	controller := NewReplicationController("example", "web", 3,
		Container{Name: "nginx", Image: "nginx"},
		Container{Name: "redis", Image: "redis"},
	)

	object, err := controller.Object()
	require.NoError(t, err)

	require.Equal(t, "v1", object.GetAPIVersion())
	require.Equal(t, KindReplicationController, object.GetKind())
	require.Equal(t, "web", object.GetName())
	require.Equal(t, map[string]string{"stack": "example", "component": "web"}, object.GetLabels())

	replicas, _, err := unstructured.NestedInt64(object.Object, "spec", "replicas")
	require.NoError(t, err)
	require.Equal(t, int64(3), replicas)

	containers, _, err := unstructured.NestedSlice(object.Object, "spec", "template", "spec", "containers")
	require.NoError(t, err)
	require.Equal(t, []any{
		map[string]any{"name": "nginx", "image": "nginx"},
		map[string]any{"name": "redis", "image": "redis"},
	}, containers)
}

func TestReplicationControllerLabels(t *testing.T) {
	controller := NewReplicationController("example", "web", 1)
	controller.Labels["tier"] = "frontend"
	controller.Labels["component"] = "custom"

	object, err := controller.Object()
	require.NoError(t, err)

	// user labels win on the resource metadata.
	require.Equal(t,
		map[string]string{"stack": "example", "component": "custom", "tier": "frontend"},
		object.GetLabels(),
	)

	// derived labels win on the pod template.
	templateLabels, _, err := unstructured.NestedStringMap(object.Object, "spec", "template", "metadata", "labels")
	require.NoError(t, err)
	require.Equal(t,
		map[string]string{"stack": "example", "component": "web", "tier": "frontend"},
		templateLabels,
	)
}

func TestReplicationControllerWithoutContainers(t *testing.T) {
	object, err := NewReplicationController("example", "idle", 0).Object()
	require.NoError(t, err)

	containers, found, err := unstructured.NestedSlice(object.Object, "spec", "template", "spec", "containers")
	require.NoError(t, err)
	require.True(t, found)
	require.Empty(t, containers)
}

func TestReplicationControllerSetContainer(t *testing.T) {
	controller := NewReplicationController("example", "web", 1,
		Container{Name: "nginx", Image: "nginx:1.25"},
		Container{Name: "redis", Image: "redis"},
	)

	controller.SetContainer(Container{Name: "nginx", Image: "nginx:1.27"})
	controller.SetContainer(Container{Name: "sidecar", Image: "envoy"})

	var names, images []string
	for _, container := range controller.Containers() {
		names = append(names, container.Name)
		images = append(images, container.Image)
	}

	require.Equal(t, []string{"nginx", "redis", "sidecar"}, names)
	require.Equal(t, []string{"nginx:1.27", "redis", "envoy"}, images)

	container, ok := controller.Container("redis")
	require.True(t, ok)
	require.Equal(t, "redis", container.Image)

	_, ok = controller.Container("missing")
	require.False(t, ok)
}

func TestReplicationControllerStoresCopies(t *testing.T) {
	command := []string{"serve"}
	controller := NewReplicationController("example", "web", 1, Container{Name: "app", Command: command})

	command[0] = "changed"

	container, ok := controller.Container("app")
	require.True(t, ok)
	require.Equal(t, []string{"serve"}, container.Command)
}

func TestControllersDoNotShareLabels(t *testing.T) {
	a := NewReplicationController("example", "a", 1)
	b := NewReplicationController("example", "b", 1)

	a.Labels["only"] = "a"

	require.Empty(t, b.Labels)
}
