package main

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/chive/kubecfg/internal"
)

func Version(ctx context.Context) error {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return errors.New("build information unavailable")
	}

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleRounded)

	tbl.AppendRow(table.Row{"kubecfg", info.Main.Version})

	for _, mod := range info.Deps {
		if !slices.Contains([]string{"k8s.io/apimachinery"}, mod.Path) {
			continue
		}
		tbl.AppendRow(table.Row{mod.Path, mod.Version})
	}

	_, err := fmt.Fprintln(internal.Stdout(ctx), tbl.Render())
	return err
}
