// Package pkg provides the core libraries for neuroplot chart rendering.
//
// # Overview
//
// Neuroplot lays out grids of subplots for implanted-neurostimulator
// recordings, accumulates chart primitives into them and hands the result to
// a declarative plotting engine. The pkg directory is organized into:
//
//  1. [figure] - Subplot grid, traces, axis settings and the render state machine
//  2. [backend] - Plotting engine contract and its memory, file, redis and mongo stores
//  3. [plotspec] - TOML figure documents applied to a figure
//  4. [server] - Read-only HTTP surface serving stored figures to browsers
//  5. [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Architecture
//
//	figure document (TOML)
//	         ↓
//	    [plotspec] package (decode + validate)
//	         ↓
//	    [figure] package (grid, traces, layout)
//	         ↓  Render: NewPlot / React
//	    [backend] store (file, redis, mongo, memory)
//	         ↓
//	    [server] package → browser engine
//
// # Quick Start
//
//	engine := memory.New(memory.WithAutoMount())
//	fig := figure.New("lfp", engine)
//	axes, _ := fig.Subplots(2, 1, figure.GridOptions{ShareX: true})
//	fig.Plot(t, v, nil, axes[0])
//	fig.ShadedErrorBar(f, mean, sem, nil, nil, axes[1])
//	_ = fig.Render(ctx)
package pkg
