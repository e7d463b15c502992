package figure

import "fmt"

// colorbarGap separates a colour bar from the subplot it annotates.
const colorbarGap = 0.01

// CreateColorAxis registers a shared colour scale and returns its id
// ("coloraxis", "coloraxis2", ...) in call order. opts are copied onto the
// layout entry; "clim" [min, max] becomes cmin/cmax. Unless opts carry a
// "colorbar", the bar is placed right of ax's domain.
func (f *Figure) CreateColorAxis(opts Props, ax *Handle) string {
	h := f.resolve(ax)

	id := "coloraxis"
	if n := len(f.colorAxes) + 1; n > 1 {
		id = fmt.Sprintf("coloraxis%d", n)
	}

	entry := Props{"showscale": true}
	for k, v := range opts {
		if k == "clim" {
			if r, ok := toFloats(v); ok && len(r) == 2 {
				entry["cmin"] = r[0]
				entry["cmax"] = r[1]
				continue
			}
		}
		entry[k] = v
	}
	if _, ok := entry["colorbar"]; !ok {
		if xd, ok := h.XDomain(); ok {
			yd, _ := h.YDomain()
			entry["colorbar"] = Props{
				"x":       xd[1] + colorbarGap,
				"xanchor": "left",
				"y":       (yd[0] + yd[1]) / 2,
				"yanchor": "middle",
				"len":     yd[1] - yd[0],
			}
		}
	}

	f.layout[id] = entry
	f.colorAxes = append(f.colorAxes, id)
	return id
}

// ColorAxes returns the allocated colour axis ids in creation order.
func (f *Figure) ColorAxes() []string {
	return append([]string(nil), f.colorAxes...)
}
