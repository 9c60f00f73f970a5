package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/chive/kubecfg/internal"
	"github.com/chive/kubecfg/internal/text"
	"github.com/chive/kubecfg/pkg/kubecfg"
)

func Execute(ctx context.Context, params Params) error {
	ctx = internal.WithDebug(ctx, params.Debug)

	defer internal.DebugTimer(ctx, "kubecfg")()

	stack, err := ExampleStack()
	if err != nil {
		return fmt.Errorf("failed to build stack: %w", err)
	}

	if params.Out == "-" {
		return stack.Export(internal.Stdout(ctx))
	}

	if params.DiffOnly {
		return DiffStack(ctx, stack, params)
	}

	return SaveStack(ctx, stack, params)
}

func SaveStack(ctx context.Context, stack *kubecfg.Stack, params Params) error {
	complete := internal.DebugTimer(ctx, fmt.Sprintf("saving stack %s to %s", stack.Name, params.Out))

	if err := stack.Save(params.Out); err != nil {
		return fmt.Errorf("failed to save stack: %w", err)
	}

	complete()

	if !params.Summary {
		return nil
	}

	manifests, err := stack.Manifests()
	if err != nil {
		return err
	}

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleRounded)

	tbl.AppendHeader(table.Row{"kind", "name", "path"})
	for _, manifest := range manifests {
		tbl.AppendRow(table.Row{manifest.Object.GetKind(), manifest.Object.GetName(), filepath.Join(params.Out, manifest.Filename)})
	}

	_, err = fmt.Fprintln(internal.Stdout(ctx), tbl.Render())
	return err
}

func DiffStack(ctx context.Context, stack *kubecfg.Stack, params Params) error {
	manifests, err := stack.Manifests()
	if err != nil {
		return err
	}

	var diff text.DiffFunc = text.Diff
	if params.Color {
		diff = text.DiffColorized
	}

	var changed int
	for _, manifest := range manifests {
		path := filepath.Join(params.Out, manifest.Filename)

		next, err := manifest.Bytes()
		if err != nil {
			return err
		}

		current, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to read current manifest: %w", err)
		}

		output := diff(
			text.File{Name: path, Content: string(current)},
			text.File{Name: path + " (next)", Content: string(next)},
			params.Context,
		)
		if output == "" {
			internal.Debug(ctx).Printf("unchanged: %s\n", path)
			continue
		}

		changed++

		if _, err := fmt.Fprint(internal.Stdout(ctx), output); err != nil {
			return err
		}
	}

	if changed == 0 {
		return internal.Warningf("%d manifest(s) up to date: nothing to diff", len(manifests))
	}

	return nil
}
