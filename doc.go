// Package astar provides a generic, single-threaded A* search engine over
// arbitrary state spaces.
//
// It exposes three entry points:
//
//   - Session: initialize a search and advance it one expansion at a time,
//     inspecting the frontier and visited sets between steps (for UIs or
//     debugging tools).
//   - Search: run a session to completion and get a Result.
//   - SearchAll: run many independent sessions concurrently over a shared,
//     read-only graph.
//
// A state space is described by a Graph. Graphs that contain illegal states
// (walls on a grid, for instance) also implement Blocker; the engine filters
// blocked neighbors during expansion. Graphs that can recognize malformed
// states implement Validator, and a session will not start from one.
// Concrete graphs live in the grid and puzzle packages.
//
// The engine holds no goroutines or timers: all mutable search state belongs
// to the Session and is only touched inside Step.
package astar
