package camgesture

// InteractionAPI is the sink that applies camera commands. Handlers call it
// synchronously from HandleSample, HandleWheel and Update.
//
// For every BeginInteraction there is exactly one EndInteraction, and the
// rotate/pan/zoom calls only occur between the two. Tap is independent of
// interactions.
type InteractionAPI interface {
	BeginInteraction()
	RotateCamera(delta Vec2)
	PanCamera(delta Vec2)
	// ZoomCamera zooms about anchor (screen space). Positive magnitude zooms in.
	ZoomCamera(anchor Vec2, magnitude float64)
	EndInteraction()
	Tap(pos Vec2, mods KeyModifiers)
}
