package pipeline

import (
	"strings"

	"docref-generator/internal/model"
	"docref-generator/internal/naming"
)

const defaultGroup = "default"

// ReduceTags keeps only the primary tag of op. The full list of tag names is
// saved in AllTags the first time.
func ReduceTags(op *model.Operation) {
	if len(op.Tags) == 0 {
		return
	}

	if op.AllTags == nil {
		op.AllTags = make([]string, 0, len(op.Tags))
		for _, t := range op.Tags {
			op.AllTags = append(op.AllTags, t.Name)
		}
	}

	op.Tags = op.Tags[:1]
}

// OperationGroup is a set of operations rendered into one API class.
type OperationGroup struct {
	// Name is the tag or first path segment shared by the operations.
	Name string
	// APIName is the API class name derived from Name.
	APIName string
	// Operations in graph order.
	Operations []*model.Operation
}

// GroupOperations assigns every operation to a group, either by primary tag
// (useTags) or by the first segment of its path. Operations with neither go
// to the "default" group. Groups are returned in first-seen order and each
// operation's BaseName is set to its group name.
func GroupOperations(ops []*model.Operation, useTags bool) []OperationGroup {
	var groups []OperationGroup

	index := make(map[string]int)

	for _, op := range ops {
		var name string
		if useTags {
			name = tagGroup(op)
		} else {
			name = pathGroup(op)
		}

		op.BaseName = name

		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, OperationGroup{Name: name, APIName: groupAPIName(name)})
		}

		groups[i].Operations = append(groups[i].Operations, op)
	}

	return groups
}

func tagGroup(op *model.Operation) string {
	if tag, ok := op.PrimaryTag(); ok && tag != "" {
		return tag
	}

	return defaultGroup
}

// pathGroup groups "/billing-account/{id}/bills" under "billing-account".
// Every operation of a path group is a sub-resource operation.
func pathGroup(op *model.Operation) string {
	segment, _, _ := strings.Cut(strings.TrimPrefix(op.Path, "/"), "/")
	if segment == "" {
		return defaultGroup
	}

	op.SubresourceOperation = op.Path != ""

	return segment
}

func groupAPIName(name string) string {
	if name == defaultGroup {
		return naming.APIName("")
	}

	return naming.APIName(name)
}
