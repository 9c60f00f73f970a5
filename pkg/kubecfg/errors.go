package kubecfg

import "errors"

var ErrDuplicateComponent = errors.New("component already exists")
