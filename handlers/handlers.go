// handlers/handlers.go
package handlers

import (
	"barkhaven/engine"
)

// gameEngine is the shared rule engine, wired once at startup.
var gameEngine *engine.Engine

// SetEngine injects the rule engine used by all handlers. Must be called
// before any route is served.
func SetEngine(e *engine.Engine) {
	gameEngine = e
}

// Engine exposes the injected engine to other packages (services, tests).
func Engine() *engine.Engine {
	return gameEngine
}
