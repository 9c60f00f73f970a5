package kubecfg

import (
	"maps"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"

	"github.com/chive/kubecfg/pkg/resource"
)

const (
	KindReplicationController = "ReplicationController"
	KindService               = "Service"
)

const (
	LabelStack     = "stack"
	LabelComponent = "component"
)

// Tag identifies the role a resource plays within its component. It is the last segment of a manifest's filename.
type Tag string

const (
	TagController Tag = "controller"
	TagService    Tag = "service"
)

// Resource is a top-level object of a component that renders to its own manifest.
type Resource interface {
	Tag() Tag
	Object() (*unstructured.Unstructured, error)
}

var (
	_ Resource = new(ReplicationController)
	_ Resource = new(Service)
)

type Document struct {
	Tag    Tag
	Object *unstructured.Unstructured
}

// envelope builds the apiVersion/kind/metadata/spec shape shared by all resources.
// Labels are layered over the derived stack and component labels, so user supplied labels win.
func envelope[T any](kind, stack, name string, labels map[string]string, spec T) resource.Resource[T] {
	merged := map[string]string{
		LabelStack:     stack,
		LabelComponent: name,
	}
	maps.Copy(merged, labels)

	return resource.Resource[T]{
		APIVersion: resource.APIVersion,
		Kind:       kind,
		Metadata: resource.Metadata{
			Name:   name,
			Labels: merged,
		},
		Spec: spec,
	}
}

func cloneLabels(labels map[string]string) map[string]string {
	if labels == nil {
		return make(map[string]string)
	}
	return maps.Clone(labels)
}
