package kubecfg

import (
	"maps"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"

	"github.com/chive/kubecfg/pkg/resource"
)

// Service exposes the pods of a component over the network.
//
// When Controller is set, the selector is derived from the service's own Stack and Name and not from
// the controller's. The selector only matches the controller's pods when both share a name,
// which is always the case for services created through Component.AddService.
type Service struct {
	Stack      string
	Name       string
	Ports      []Port
	Type       corev1.ServiceType
	Controller *ReplicationController
	Selectors  map[string]string
	Labels     map[string]string
}

func (service *Service) Serialize() resource.Service {
	spec := resource.ServiceSpec{Type: service.Type}

	for _, port := range service.Ports {
		spec.Ports = append(spec.Ports, port.Serialize())
	}

	if service.Controller != nil || len(service.Selectors) > 0 {
		spec.Selector = make(map[string]string, len(service.Selectors)+2)
		if service.Controller != nil {
			spec.Selector[LabelStack] = service.Stack
			spec.Selector[LabelComponent] = service.Name
		}
		maps.Copy(spec.Selector, service.Selectors)
	}

	return resource.Service(envelope(KindService, service.Stack, service.Name, service.Labels, spec))
}

func (*Service) Tag() Tag { return TagService }

func (service *Service) Object() (*unstructured.Unstructured, error) {
	value := service.Serialize()
	return resource.ToObject(&value)
}
