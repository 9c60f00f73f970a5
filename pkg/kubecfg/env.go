package kubecfg

import (
	"maps"
	"slices"

	"github.com/chive/kubecfg/internal"
)

type EnvVar struct {
	Name  string
	Value string
}

// Env is an insertion ordered set of environment variables.
type Env []EnvVar

// EnvFromMap builds an Env from a map. Go maps have no order, so keys are sorted to keep output stable.
func EnvFromMap(values map[string]string) Env {
	env := make(Env, 0, len(values))
	for _, name := range slices.Sorted(maps.Keys(values)) {
		env = append(env, EnvVar{Name: name, Value: values[name]})
	}
	return env
}

// Set overwrites the value of an existing variable in place or appends a new one.
func (env *Env) Set(name, value string) {
	*env = internal.Upsert(*env, EnvVar{Name: name, Value: value}, func(v EnvVar) bool { return v.Name == name })
}

func (env Env) Get(name string) (string, bool) {
	v, ok := internal.Find(env, func(v EnvVar) bool { return v.Name == name })
	return v.Value, ok
}

func (env Env) Keys() []string {
	keys := make([]string, len(env))
	for i, v := range env {
		keys[i] = v.Name
	}
	return keys
}

func (env Env) Clone() Env {
	return slices.Clone(env)
}
