// Package backend defines the contract between figures and the declarative
// plotting engine that turns {data, layout, config} structures into visuals.
//
// # Contract
//
// A [Backend] owns visuals keyed by render target. The figure state machine
// calls:
//
//   - [Backend.NewPlot] when the figure has no visual yet (Empty → Rendered)
//   - [Backend.React] to update an existing visual in place (Rendered → Rendered)
//   - [Backend.Purge] to detach and destroy the visual (Rendered → Empty)
//   - [Backend.Resize] to recompute the visual's own layout after a
//     container resize
//
// Targets are owned by the surrounding view. Backends report a missing
// target or visual with the TARGET_NOT_FOUND / VISUAL_NOT_FOUND codes from
// pkg/errors, and figures propagate those errors unchanged.
//
// # Implementations
//
//   - [memory]: in-process engine for tests and dry runs
//   - [file]: JSON + standalone HTML pages in a directory
//   - [redis]: Redis keys plus pub/sub change events
//   - [mongo]: one MongoDB document per target
//
// [memory]: github.com/neuroviz/neuroplot/pkg/backend/memory
// [file]: github.com/neuroviz/neuroplot/pkg/backend/file
// [redis]: github.com/neuroviz/neuroplot/pkg/backend/redis
// [mongo]: github.com/neuroviz/neuroplot/pkg/backend/mongo
package backend
