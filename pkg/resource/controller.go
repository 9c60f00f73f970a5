package resource

import corev1 "k8s.io/api/core/v1"

type ReplicationController Resource[ReplicationControllerSpec]

type ReplicationControllerSpec struct {
	Replicas int             `json:"replicas"`
	Template PodTemplateSpec `json:"template"`
}

type PodTemplateSpec struct {
	Metadata TemplateMetadata `json:"metadata"`
	Spec     PodSpec          `json:"spec"`
}

type TemplateMetadata struct {
	Labels map[string]string `json:"labels"`
}

type PodSpec struct {
	Containers []Container `json:"containers"`
}

type EnvVar struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ResourceRequirements lists each limit as its own single-key object, cpu before memory.
type ResourceRequirements struct {
	Limits []map[corev1.ResourceName]string `json:"limits"`
}

type Container struct {
	Name      string                `json:"name,omitempty"`
	Command   []string              `json:"command,omitempty"`
	Args      []string              `json:"args,omitempty"`
	Image     string                `json:"image,omitempty"`
	Env       []EnvVar              `json:"env,omitempty"`
	Resources *ResourceRequirements `json:"resources,omitempty"`
}
