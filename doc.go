// Package gamelib is a set of convenience utilities on top of a small
// retained-mode 2D scene graph for [Ebitengine].
//
// # Scene graph
//
// Every element is a [Node]. Nodes form a tree rooted at [Scene.Root] and
// inherit their parent's transform and alpha. [Scene.Update] drives input,
// timers and tweens; [Scene.Draw] renders sprites and debug lines.
//
//	scene := gamelib.NewScene()
//	hud := gamelib.NewContainer("hud")
//	score := gamelib.NewSprite("Score", 80, 16)
//	score.SetUniqueName(true)
//	hud.AddChild(score)
//	scene.Root().AddChild(hud)
//
// # Lookup and binding
//
// [Node.GetNode] resolves "%Name" unique names and slash paths. Types list
// the members they want populated in a [Bindable] table, and [BindMembers]
// fills them in one pass:
//
//	func (h *HUD) Bindings() []gamelib.Binding {
//		return []gamelib.Binding{gamelib.Field(&h.Score, "Score")}
//	}
//
//	err := gamelib.BindMembers(hud, h) // h.Score = hud.GetNode("%Score")
//
// A missing node is a [*LookupError], an incompatible one a
// [*TypeMismatchError].
//
// # Packed scenes
//
// [Loader] reads YAML or HCL scene files from an [io/fs.FS] and instantiates
// them, creating scripts from a [ScriptRegistry], binding them and calling
// their Ready hooks children first.
//
// # Timers
//
// [Scene.After] runs a callback once after a delay of scene time and returns
// a [Timer] that can be stopped. [Scene.Wait] returns a channel form.
//
// Math, randomization, collection and wall-clock helpers live in the gmath,
// random, collect and clock subpackages.
//
// [Ebitengine]: https://ebitengine.org
package gamelib
