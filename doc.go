// Package camgesture turns raw pointer, touch, and wheel input into camera
// interactions for [Ebitengine] viewports.
//
// A [Controller] owns one input surface and routes every sample to three
// consumers:
//
//   - a [MouseHandler] that maps mouse and pen drags to rotate, pan, or zoom
//     once the pointer travels a small threshold, and coalesces wheel ticks
//     into eased zooms;
//   - a [TouchHandler] that rotates with one finger and pans and pinches
//     with two;
//   - an [Arbiter] that races [Recognizer] implementations (tap and pan by
//     default) so at most one wins each input sequence.
//
// Camera commands go to an [InteractionAPI]. [Camera] is a ready-made
// implementation with gween-eased zoom.
//
// # Quick start
//
//	cam := camgesture.NewCamera(camgesture.Rect{Width: 640, Height: 480})
//	ctrl := camgesture.NewController(cam, camgesture.DefaultConfig())
//	var in camgesture.EbitenInput
//
//	func (g *Game) Update() error {
//		in.Poll(ctrl)
//		ctrl.Update()
//		cam.Update(1.0 / 60)
//		return nil
//	}
//
// Hosts that do not use Ebitengine feed [Controller.HandleSample] and
// [Controller.HandleWheel] directly and call [Controller.Update] once per
// frame.
//
// # Configuration
//
// [LoadConfig] reads a TOML file and CAMGESTURE_* environment variables:
//
//	fine_pointer_threshold = 2
//	coarse_pointer_threshold = 4
//	primary_interaction = "pan"
//	mouse_wheel_interaction_end_debounce = "150ms"
//
// # Testing
//
// [Controller.InjectDrag], [Controller.InjectWheel] and [LoadScript] drive a
// controller without a window, one event per Update.
//
// [Ebitengine]: https://ebitengine.org
package camgesture
