package main

import (
	corev1 "k8s.io/api/core/v1"

	"github.com/chive/kubecfg/pkg/kubecfg"
)

func ExampleStack() (*kubecfg.Stack, error) {
	stack := kubecfg.NewStack("example")

	web, err := stack.CreateComponent("web")
	if err != nil {
		return nil, err
	}

	web.AddController(kubecfg.ControllerParams{
		Replicas: 1,
		Containers: []kubecfg.Container{
			{Name: "nginx", Image: "nginx"},
			{Name: "redis", Image: "redis"},
		},
	})

	web.AddService(kubecfg.ServiceParams{
		Type:       corev1.ServiceTypeLoadBalancer,
		Controller: web.Controller,
		Ports: []kubecfg.Port{
			{Port: 80, TargetPort: 8000, Protocol: corev1.ProtocolTCP},
		},
	})

	return stack, nil
}
