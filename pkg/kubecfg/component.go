package kubecfg

import (
	"fmt"
	"maps"
	"slices"

	corev1 "k8s.io/api/core/v1"
)

// Component groups a controller and the services exposing it under a single name.
type Component struct {
	Stack      string
	Name       string
	Controller *ReplicationController
	Services   []*Service
}

type ControllerParams struct {
	Replicas   int
	Containers []Container
	Labels     map[string]string
}

// AddController builds the component's controller. A component holds a single controller:
// calling AddController again replaces the previous one.
func (component *Component) AddController(params ControllerParams) *ReplicationController {
	controller := NewReplicationController(component.Stack, component.Name, params.Replicas, params.Containers...)
	maps.Copy(controller.Labels, params.Labels)
	component.Controller = controller
	return controller
}

type ServiceParams struct {
	Type       corev1.ServiceType
	Controller *ReplicationController
	Ports      []Port
	Selectors  map[string]string
	Labels     map[string]string
}

func (component *Component) AddService(params ServiceParams) *Service {
	service := &Service{
		Stack:      component.Stack,
		Name:       component.Name,
		Ports:      slices.Clone(params.Ports),
		Type:       params.Type,
		Controller: params.Controller,
		Selectors:  cloneLabels(params.Selectors),
		Labels:     cloneLabels(params.Labels),
	}
	component.Services = append(component.Services, service)
	return service
}

// Resources returns the controller, if any, followed by the services in the order they were added.
func (component *Component) Resources() []Resource {
	var resources []Resource
	if component.Controller != nil {
		resources = append(resources, component.Controller)
	}
	for _, service := range component.Services {
		resources = append(resources, service)
	}
	return resources
}

func (component *Component) Serialize() ([]Document, error) {
	resources := component.Resources()

	documents := make([]Document, 0, len(resources))
	for _, resource := range resources {
		object, err := resource.Object()
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", component.Name, resource.Tag(), err)
		}
		documents = append(documents, Document{Tag: resource.Tag(), Object: object})
	}

	return documents, nil
}
