package pipeline

import (
	"docref-generator/internal/common"
	"docref-generator/internal/model"
)

// FilterHeaderParams returns params without header parameters, in their
// original order. The new last parameter gets HasMore=false; kept parameters
// are otherwise left as they are.
func FilterHeaderParams(params []*model.Parameter) []*model.Parameter {
	if common.IsEmpty(params) {
		return params
	}

	kept := make([]*model.Parameter, 0, len(params))

	for _, p := range params {
		if !p.IsHeaderParam {
			kept = append(kept, p)
		}
	}

	if last, ok := common.Last(kept); ok {
		last.HasMore = false
	}

	return kept
}
