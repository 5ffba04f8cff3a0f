// Package scene defines the Scene interface for sandbox screens.
//
// The sandbox runs one scene at a time; a scene owns its simulation and
// decides when to hand over to another.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the sandbox.
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update advances the scene by one fixed step of dt seconds.
	// Returns the next scene if a transition is needed, nil to stay.
	// Returns an error to terminate the sandbox.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene, e.g. to flush a trace.
	OnExit()
}
