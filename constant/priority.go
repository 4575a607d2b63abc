package constant

// System execution priorities (lower runs first)
// Both simulation scenes share the ordering, the overworld skips reload and AI
const (
	PriorityInput     = 10
	PriorityMotion    = 20
	PriorityCollision = 30
	PriorityReload    = 40
	PriorityAI        = 50
	PriorityLiveness  = 60
	PriorityReport    = 70
)
