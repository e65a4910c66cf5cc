package store

import (
	"github.com/tgraph/graphqd/internal/models"
)

// vertexColumns lists the columns selected for vertex queries.
const vertexColumns = `vid, vtype, create_time, balance`

// edgeColumns lists the columns selected for edge queries.
const edgeColumns = `eid, src_vid, dst_vid, amount, occur_time, etype`

// scanVertex scans a single row into a models.Vertex.
func scanVertex(scan func(dest ...any) error) (*models.Vertex, error) {
	var v models.Vertex

	if err := scan(&v.VID, &v.VType, &v.CreateTime, &v.Balance); err != nil {
		return nil, err
	}

	return &v, nil
}

// scanEdge scans a single row into a models.Edge.
func scanEdge(scan func(dest ...any) error) (*models.Edge, error) {
	var e models.Edge

	if err := scan(&e.EID, &e.SrcVID, &e.DstVID, &e.Amount, &e.OccurTime, &e.EType); err != nil {
		return nil, err
	}

	return &e, nil
}
