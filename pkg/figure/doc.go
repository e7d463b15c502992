// Package figure is the chart rendering and layout manager that sits between
// recording views and the declarative plotting engine.
//
// A [Figure] is one rendering session bound to a render target. Call sites
// lay out a grid of subplots, add traces and configure axes through the
// returned [Handle] values, then call [Figure.Render]:
//
//	fig := figure.New("lfp-chart", engine, figure.WithLanguage("zh"))
//	axes, err := fig.Subplots(2, 1, figure.GridOptions{ShareX: true})
//	if err != nil {
//	    return err
//	}
//	fig.Plot(t, left, figure.Props{"color": "#1f77b4"}, axes[0])
//	fig.ShadedErrorBar(freq, mean, sem, nil, figure.Props{"alpha": 0.3}, axes[1])
//	fig.SetYlim([2]float64{1, 100}, axes[1])
//	fig.SetScaleType(figure.ScaleLog, figure.AxisY, axes[1])
//	if err := fig.Render(ctx); err != nil {
//	    return err
//	}
//
// # Axis handles
//
// Handles identify one subplot cell. They carry a generated ID and the
// figure resolves them through a dictionary, so a handle from a previous
// [Figure.Subplots] call (or another figure) is detected. Unknown or nil
// handles fall back to the active handle; unknown ones log a warning.
//
// # Styles
//
// Builders accept a small stable vocabulary (color, linewidth, size, alpha,
// label, ...) and remap it per chart type onto the engine's schema. Keys
// the chart type does not know are copied onto the trace unchanged.
//
// # Render state
//
// A figure is Empty until its first successful render creates the visual,
// then Rendered; further renders update the visual in place. [Figure.Purge]
// returns it to Empty. See [RenderState].
package figure
