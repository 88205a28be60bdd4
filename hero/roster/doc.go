// Package roster keeps the recruited heroes in memory.
//
// Each hero gets a short random ID (four hex characters) unless the caller
// supplies one. IDs are matched case-insensitively. The Manager owns every
// hero it stores; callers reach heroes through the service layer, which
// serializes actions.
//
//	registry := roster.NewManager()
//	entry, err := registry.Recruit("", &spec)
//
// Idle heroes can be pruned with CleanupIdle.
package roster
