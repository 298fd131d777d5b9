// Package gameplay holds the per-frame decision rules of the platformer:
// movement modes, one-way platform collision, hazard resets, animation
// selection, particle timing, and impact shake.
//
// Every function is a pure decision over explicit inputs. Callers own the
// PlayerState and pass snapshots in; nothing here keeps state between calls.
// Within a frame, resolve movement with Step before answering collision
// queries, and select the animation after collision has settled.
package gameplay
