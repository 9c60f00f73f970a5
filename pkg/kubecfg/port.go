package kubecfg

import (
	corev1 "k8s.io/api/core/v1"

	"github.com/chive/kubecfg/pkg/resource"
)

// Port maps a service port to a target port on the selected pods.
//
// TargetPort and NodePort are only emitted when non-zero, so a port explicitly set to 0
// is indistinguishable from an unset one.
type Port struct {
	Port       int
	TargetPort int
	NodePort   int
	Protocol   corev1.Protocol
}

func (port Port) Serialize() resource.ServicePort {
	return resource.ServicePort{
		Port:       port.Port,
		TargetPort: port.TargetPort,
		NodePort:   port.NodePort,
		Protocol:   port.Protocol,
	}
}
