// Package tabletop is a small scene manager for a 2D card-table prototype
// built on [Ebitengine].
//
// A [Scene] owns a node [Graph] anchored at a permanent root. The table
// backdrop and the cards of a [Layout] are attached under that root by
// [Populate]. The whole generation can be torn down and rebuilt at any time
// by queueing a rebuild signal; completed left clicks are resolved to the
// first card whose rectangle contains the cursor.
//
// # Quick start
//
//	scene := tabletop.NewScene(tabletop.DefaultLayout())
//	tabletop.Run(scene, tabletop.RunConfig{
//		Title: "Table", Width: 1280, Height: 720,
//	})
//
// # Passes
//
// Each [Scene.Update] is one pass. Within a pass the one-shot rebuild
// trigger is polled, queued rebuild signals are drained (any number of them
// collapse into a single rebuild), and then the pointer is processed. A
// rebuild therefore always finishes before a click in the same pass is
// hit-tested.
//
// The trigger fires once after boot and then stays disabled until the host
// calls [Scene.RearmRebuildTrigger]. [Run] re-arms it from
// [RunConfig.Reload] and [RunConfig.RearmKeys].
//
// # Handles
//
// Nodes are referenced by [Handle] values. A rebuild destroys every
// descendant of the root, and their handles stop resolving; do not keep
// handles across a rebuild.
//
// # Logging
//
// Rebuilds log "World cleared!" and picks log "clicked card <name>" or
// "Clicked no card" through the [go.uber.org/zap] logger set with
// [Scene.SetLogger].
//
// [Ebitengine]: https://ebitengine.org
package tabletop
