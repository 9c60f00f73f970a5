package kubecfg

import (
	"testing"

	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"

	"github.com/chive/kubecfg/pkg/resource"
)

func TestPortSerialize(t *testing.T) {
	cases := []struct {
		Name     string
		Port     Port
		Expected map[string]any
	}{
		{
			Name:     "port only",
			Port:     Port{Port: 80},
			Expected: map[string]any{"port": int64(80)},
		},
		{
			Name:     "target port and protocol",
			Port:     Port{Port: 80, TargetPort: 8000, Protocol: corev1.ProtocolTCP},
			Expected: map[string]any{"port": int64(80), "targetPort": int64(8000), "protocol": "TCP"},
		},
		{
			Name:     "node port",
			Port:     Port{Port: 53, NodePort: 30053, Protocol: corev1.ProtocolUDP},
			Expected: map[string]any{"port": int64(53), "nodePort": int64(30053), "protocol": "UDP"},
		},
		{
			Name:     "zero target port is treated as unset",
			Port:     Port{Port: 443, TargetPort: 0, NodePort: 0},
			Expected: map[string]any{"port": int64(443)},
		},
		{
			Name:     "zero port is still emitted",
			Port:     Port{},
			Expected: map[string]any{"port": int64(0)},
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			value := tc.Port.Serialize()
			object, err := resource.ToObject(&value)
			require.NoError(t, err)
			require.Equal(t, tc.Expected, object.Object)
		})
	}
}
