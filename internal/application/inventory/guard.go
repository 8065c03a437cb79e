package inventory

import "sync"

// RewriteGuard serializa las operaciones que reescriben la tabla de items
// completa (unificación e importación). El almacén no ofrece bloqueo a nivel
// de aplicación; este mutex en proceso evita que ambas corran a la vez.
// Las operaciones de request normales no pasan por aquí.
type RewriteGuard struct {
	mu sync.Mutex
}

// NewRewriteGuard construye el guard compartido entre unificación e importación.
func NewRewriteGuard() *RewriteGuard {
	return &RewriteGuard{}
}

// Lock toma el guard; bloquea hasta que la otra reescritura termine.
func (g *RewriteGuard) Lock() { g.mu.Lock() }

// Unlock libera el guard.
func (g *RewriteGuard) Unlock() { g.mu.Unlock() }
