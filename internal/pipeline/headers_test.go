package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"docref-generator/internal/model"
)

func TestFilterHeaderParams(t *testing.T) {
	header := func(name string) *model.Parameter {
		return &model.Parameter{Name: name, In: "header", IsHeaderParam: true, HasMore: true}
	}
	param := func(name string, hasMore bool) *model.Parameter {
		return &model.Parameter{Name: name, In: "query", HasMore: hasMore}
	}

	tests := []struct {
		name      string
		params    []*model.Parameter
		wantNames []string
	}{
		{name: "nil", params: nil, wantNames: nil},
		{name: "no headers", params: []*model.Parameter{param("a", true), param("b", false)}, wantNames: []string{"a", "b"}},
		{name: "header last", params: []*model.Parameter{param("a", true), header("h")}, wantNames: []string{"a"}},
		{
			name:      "headers interleaved",
			params:    []*model.Parameter{header("h1"), param("a", true), header("h2"), param("b", true), header("h3")},
			wantNames: []string{"a", "b"},
		},
		{name: "only headers", params: []*model.Parameter{header("h1"), header("h2")}, wantNames: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterHeaderParams(tt.params)

			names := []string{}
			for _, p := range got {
				names = append(names, p.Name)
				assert.False(t, p.IsHeaderParam)
			}

			if tt.wantNames == nil {
				assert.Nil(t, got)
				return
			}

			assert.Equal(t, tt.wantNames, names)

			if len(got) > 0 {
				assert.False(t, got[len(got)-1].HasMore)
			}

			for _, p := range got[:max(len(got)-1, 0)] {
				assert.True(t, p.HasMore)
			}
		})
	}
}
