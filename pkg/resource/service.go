package resource

import corev1 "k8s.io/api/core/v1"

type ServicePort struct {
	Port       int             `json:"port"`
	TargetPort int             `json:"targetPort,omitempty"`
	NodePort   int             `json:"nodePort,omitempty"`
	Protocol   corev1.Protocol `json:"protocol,omitempty"`
}

type ServiceSpec struct {
	Type     corev1.ServiceType `json:"type,omitempty"`
	Selector map[string]string  `json:"selector,omitempty"`
	Ports    []ServicePort      `json:"ports,omitempty"`
}

type Service Resource[ServiceSpec]
