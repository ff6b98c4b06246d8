package es

import (
	"fmt"

	"github.com/DjordjeVuckovic/resource-hub/internal/domain/resource"
	"github.com/DjordjeVuckovic/resource-hub/internal/storage"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

// RecordDocument is one raw record stored with its dataset coordinates.
type RecordDocument struct {
	Kind     string             `json:"kind"`
	Dataset  string             `json:"dataset"`
	Position int                `json:"position"`
	RecordID string             `json:"record_id"`
	Record   resource.RawRecord `json:"record"`
}

func documentID(kind resource.Kind, ds storage.Dataset, position int) string {
	return fmt.Sprintf("%s:%s:%d", kind, ds, position)
}

func datasetQuery(kind resource.Kind, ds storage.Dataset) *types.Query {
	return &types.Query{
		Bool: &types.BoolQuery{
			Filter: []types.Query{
				{Term: map[string]types.TermQuery{"kind": {Value: string(kind)}}},
				{Term: map[string]types.TermQuery{"dataset": {Value: string(ds)}}},
			},
		},
	}
}

func buildMapping() types.TypeMapping {
	record := types.NewObjectProperty()
	disabled := false
	record.Enabled = &disabled

	return types.TypeMapping{
		Properties: map[string]types.Property{
			"kind":      types.NewKeywordProperty(),
			"dataset":   types.NewKeywordProperty(),
			"position":  types.NewIntegerNumberProperty(),
			"record_id": types.NewKeywordProperty(),
			"record":    record,
		},
	}
}
