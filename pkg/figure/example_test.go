package figure_test

import (
	"context"
	"fmt"

	"github.com/neuroviz/neuroplot/pkg/backend/memory"
	"github.com/neuroviz/neuroplot/pkg/figure"
)

func ExampleComputeGrid() {
	// Two stacked subplots sharing one time axis
	handles, _ := figure.ComputeGrid(2, 1, figure.GridOptions{ShareX: true})
	for _, h := range handles {
		yd, _ := h.YDomain()
		fmt.Printf("%s/%s y=[%.3f %.3f]\n", h.XAxis(), h.YAxis(), yd[0], yd[1])
	}
	// Output:
	// x/y y=[0.575 0.925]
	// x/y2 y=[0.075 0.425]
}

func ExampleFigure_ShadedErrorBar() {
	fig := figure.New("psd", memory.New(memory.WithAutoMount()))
	traces := fig.ShadedErrorBar(
		[]float64{0, 1, 2},
		[]float64{1, 2, 3},
		[]float64{0.5, 0.5, 0.5},
		figure.Props{"color": "#d62728"},
		figure.Props{"alpha": 0.2},
		nil,
	)
	for _, tr := range traces {
		y, _ := tr.Get("y")
		fill, _ := tr.Get("fill")
		color, _ := tr.Get("fillcolor")
		fmt.Println(y, fill, color)
	}
	// Output:
	// [1 2 3] <nil> <nil>
	// [0.5 1.5 2.5] none #d6272833
	// [1.5 2.5 3.5] tonexty #d6272833
}

func ExampleFigure_Render() {
	ctx := context.Background()
	engine := memory.New()
	_ = engine.Mount("stim-response")

	fig := figure.New("stim-response", engine, figure.WithLanguage("zh"))
	fig.Scatter([]float64{1, 2, 3}, []float64{0.2, 0.5, 0.9}, figure.Props{"size": 8}, nil)
	fig.SetXlabel("Amplitude (mA)", nil)

	_ = fig.Render(ctx)
	fmt.Println(fig.State(), engine.Version("stim-response"))
	_ = fig.Render(ctx)
	fmt.Println(fig.State(), engine.Version("stim-response"))
	_ = fig.Purge(ctx)
	fmt.Println(fig.State(), fig.Locale())
	// Output:
	// rendered 1
	// rendered 2
	// empty zh-CN
}
