package kubecfg

import (
	"fmt"
	"slices"

	"github.com/chive/kubecfg/internal"
)

// Stack is the top-level, named collection of components.
type Stack struct {
	Name string

	components []*Component
}

func NewStack(name string) *Stack {
	return &Stack{Name: name}
}

// CreateComponent registers a new empty component. It fails with ErrDuplicateComponent
// if the stack already holds a component by that name, leaving the stack untouched.
func (stack *Stack) CreateComponent(name string) (*Component, error) {
	if _, ok := stack.Component(name); ok {
		return nil, fmt.Errorf("stack %q: %w: %s", stack.Name, ErrDuplicateComponent, name)
	}

	component := &Component{Stack: stack.Name, Name: name}
	stack.components = append(stack.components, component)

	return component, nil
}

func (stack *Stack) Component(name string) (*Component, bool) {
	return internal.Find(stack.components, func(component *Component) bool { return component.Name == name })
}

// Components returns the stack's components in creation order.
func (stack *Stack) Components() []*Component {
	return slices.Clone(stack.components)
}
