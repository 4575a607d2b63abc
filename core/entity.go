package core

// Entity is a scene-local identifier handed out by an engine.Registry
// Ids are never reused, zero is never a valid entity
type Entity uint64

// SceneID identifies a scene for the lifetime of the process
type SceneID uint32

// NullSceneID denotes "no scene", returning it from a scene quits the game
const NullSceneID SceneID = 0
