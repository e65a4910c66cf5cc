package api

import "github.com/tgraph/graphqd/internal/domain"

// Type aliases to the canonical domain interfaces.
// Handlers depend on these; the domain package is the single source of truth.
type (
	VertexRepository = domain.VertexService
	EdgeRepository   = domain.EdgeService
	CycleRepository  = domain.CycleService
	TenantRepository = domain.TenantService
)
