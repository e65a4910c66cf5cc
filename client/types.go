package client

// Vertex represents a node in a tenant's transaction graph.
type Vertex struct {
	VID        int64  `json:"vid"`
	VType      string `json:"v_type"`
	CreateTime int64  `json:"create_time"`
	Balance    int64  `json:"balance"`
}

// Edge represents a directed, timestamped, amount-bearing transaction
// between two vertices in a tenant's graph.
type Edge struct {
	EID       int64  `json:"eid"`
	SrcVID    int64  `json:"src_vid"`
	DstVID    int64  `json:"dst_vid"`
	Amount    int64  `json:"amount"`
	OccurTime int64  `json:"occur_time"`
	EType     string `json:"e_type"`
}

// CreateVertexRequest is the payload for creating a vertex.
type CreateVertexRequest struct {
	VID        int64  `json:"vid"`
	VType      string `json:"v_type"`
	CreateTime int64  `json:"create_time"`
	Balance    int64  `json:"balance"`
}

// CreateEdgeRequest is the payload for creating an edge.
type CreateEdgeRequest struct {
	EID       int64  `json:"eid"`
	SrcVID    int64  `json:"src_vid"`
	DstVID    int64  `json:"dst_vid"`
	Amount    int64  `json:"amount"`
	OccurTime int64  `json:"occur_time"`
	EType     string `json:"e_type"`
}

// VertexListOptions holds parameters for listing vertices.
type VertexListOptions struct {
	VType  string
	Limit  int
	Offset int
}

// Cycle is one reported closed walk through the graph.
type Cycle struct {
	Vertices []Vertex `json:"vertices"`
	Edges    []Edge   `json:"edges"`
}

// CycleQueryRequest is the payload for a temporal cycle query.
type CycleQueryRequest struct {
	MaxDepth         int      `json:"max_depth"`
	Direction        string   `json:"direction,omitempty"`
	VTypes           []string `json:"v_types,omitempty"`
	MinBalance       *int64   `json:"min_balance,omitempty"`
	ETypes           []string `json:"e_types,omitempty"`
	MinAmount        *int64   `json:"min_amount,omitempty"`
	MaxAmount        *int64   `json:"max_amount,omitempty"`
	Limit            int      `json:"limit,omitempty"`
	AllowDupVertices bool     `json:"allow_dup_vertices,omitempty"`
	AllowDupEdges    bool     `json:"allow_dup_edges,omitempty"`
}

// CycleQueryResult is the response to a temporal cycle query.
type CycleQueryResult struct {
	Found             bool    `json:"found"`
	Count             int     `json:"count"`
	Data              []Cycle `json:"data"`
	ExecutionTimeMS   int64   `json:"execution_time_ms"`
	InformationalNote string  `json:"informational_note,omitempty"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Database      string  `json:"database"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}
