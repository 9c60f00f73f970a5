package kubecfg

import (
	"maps"
	"slices"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"

	"github.com/chive/kubecfg/internal"
	"github.com/chive/kubecfg/pkg/resource"
)

// ReplicationController runs Replicas copies of a pod built from its containers.
type ReplicationController struct {
	Stack    string
	Name     string
	Replicas int
	Labels   map[string]string

	containers []Container
}

func NewReplicationController(stack, name string, replicas int, containers ...Container) *ReplicationController {
	controller := &ReplicationController{
		Stack:    stack,
		Name:     name,
		Replicas: replicas,
		Labels:   make(map[string]string),
	}
	for _, container := range containers {
		controller.SetContainer(container)
	}
	return controller
}

// SetContainer stores a copy of container. A container with the same name is replaced in place,
// keeping its position in the pod template.
func (controller *ReplicationController) SetContainer(container Container) {
	controller.containers = internal.Upsert(controller.containers, container.Copy(), func(c Container) bool {
		return c.Name == container.Name
	})
}

func (controller *ReplicationController) Container(name string) (Container, bool) {
	return internal.Find(controller.containers, func(c Container) bool { return c.Name == name })
}

func (controller *ReplicationController) Containers() []Container {
	return slices.Clone(controller.containers)
}

func (controller *ReplicationController) Serialize() resource.ReplicationController {
	templateLabels := make(map[string]string, len(controller.Labels)+2)
	maps.Copy(templateLabels, controller.Labels)
	templateLabels[LabelStack] = controller.Stack
	templateLabels[LabelComponent] = controller.Name

	containers := make([]resource.Container, len(controller.containers))
	for i, container := range controller.containers {
		containers[i] = container.Serialize()
	}

	spec := resource.ReplicationControllerSpec{
		Replicas: controller.Replicas,
		Template: resource.PodTemplateSpec{
			Metadata: resource.TemplateMetadata{Labels: templateLabels},
			Spec:     resource.PodSpec{Containers: containers},
		},
	}

	return resource.ReplicationController(envelope(KindReplicationController, controller.Stack, controller.Name, controller.Labels, spec))
}

func (*ReplicationController) Tag() Tag { return TagController }

func (controller *ReplicationController) Object() (*unstructured.Unstructured, error) {
	value := controller.Serialize()
	return resource.ToObject(&value)
}
