package kubecfg

import (
	"slices"

	corev1 "k8s.io/api/core/v1"

	"github.com/chive/kubecfg/pkg/resource"
)

// Container describes a single container of a controller's pod template.
// Every field is optional; zero values are left out of the serialized form.
type Container struct {
	Name        string
	Command     []string
	Args        []string
	Image       string
	Env         Env
	CPULimit    string
	MemoryLimit string
}

func (container Container) Serialize() resource.Container {
	result := resource.Container{
		Name:    container.Name,
		Command: nonEmpty(container.Command),
		Args:    nonEmpty(container.Args),
		Image:   container.Image,
	}

	for _, env := range container.Env {
		result.Env = append(result.Env, resource.EnvVar{Name: env.Name, Value: env.Value})
	}

	var limits []map[corev1.ResourceName]string
	if container.CPULimit != "" {
		limits = append(limits, map[corev1.ResourceName]string{corev1.ResourceCPU: container.CPULimit})
	}
	if container.MemoryLimit != "" {
		limits = append(limits, map[corev1.ResourceName]string{corev1.ResourceMemory: container.MemoryLimit})
	}
	if len(limits) > 0 {
		result.Resources = &resource.ResourceRequirements{Limits: limits}
	}

	return result
}

// Copy returns a deep copy of the container that shares no slices with the receiver.
func (container Container) Copy() Container {
	container.Command = slices.Clone(container.Command)
	container.Args = slices.Clone(container.Args)
	container.Env = container.Env.Clone()
	return container
}

func nonEmpty(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	return slices.Clone(values)
}
