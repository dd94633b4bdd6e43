package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		tables    *Tables
		wantCodes []string
	}{
		{
			name:      "nil tables",
			tables:    nil,
			wantCodes: []string{"tables_is_nil"},
		},
		{
			name:   "valid",
			tables: &Tables{ModelRemap: map[string]string{"A": "B"}, PropertyRenames: map[string]string{"A.id": "aId"}},
		},
		{
			name:      "empty exclusion",
			tables:    &Tables{DocumentExclusions: []string{"BillSummary", ""}},
			wantCodes: []string{"table_required"},
		},
		{
			name:      "empty remap target",
			tables:    &Tables{ModelRemap: map[string]string{"A": ""}},
			wantCodes: []string{"table_required"},
		},
		{
			name:      "rename key without model",
			tables:    &Tables{PropertyRenames: map[string]string{"topupId": "id"}},
			wantCodes: []string{"table_contains"},
		},
		{
			name:      "rename key with empty part",
			tables:    &Tables{PropertyRenames: map[string]string{".id": "topupId"}},
			wantCodes: []string{"invalid_rename_key"},
		},
		{
			name:      "rename chain",
			tables:    &Tables{PropertyRenames: map[string]string{"A.id": "aId", "A.aId": "key"}},
			wantCodes: []string{"rename_chain"},
		},
		{
			name:      "remap chain",
			tables:    &Tables{ModelRemap: map[string]string{"A": "B", "B": "C"}},
			wantCodes: []string{"remap_chain"},
		},
		{
			name:      "remap onto itself",
			tables:    &Tables{ModelRemap: map[string]string{"A": "A"}},
			wantCodes: []string{"remap_chain"},
		},
		{
			name: "static model without template",
			tables: &Tables{StaticModels: []StaticModel{
				{Name: "Meta"},
			}},
			wantCodes: []string{"table_required"},
		},
		{
			name: "duplicate static model",
			tables: &Tables{StaticModels: []StaticModel{
				{Name: "Meta", Template: "meta.yaml.tmpl"},
				{Name: "Meta", Template: "other.yaml.tmpl"},
			}},
			wantCodes: []string{"duplicate_static_model"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := Validate(tt.tables)
			assert.Equal(t, tt.wantCodes, diags.Codes())
		})
	}
}

func TestValidateReportsYAMLNames(t *testing.T) {
	diags := Validate(&Tables{PropertyRenames: map[string]string{"topupId": "id"}})
	require.Len(t, diags.Errors, 1)

	assert.Contains(t, diags.Errors[0].Subject, "propertyRenames")
	assert.Equal(t, "topupId", diags.Errors[0].Key)
}
