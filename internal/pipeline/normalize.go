package pipeline

import (
	"strings"

	"docref-generator/internal/model"
)

const (
	defaultResponseCode = "0"
	successResponseCode = "200"
)

var containerPrefixes = []struct {
	prefix string
	kind   model.ContainerKind
}{
	{"List<", model.ContainerList},
	{"Map<", model.ContainerMap},
	{"Set<", model.ContainerSet},
}

// NormalizeShape splits a raw return shape into its element type and
// container kind:
//
//	""              -> "Void", none
//	"List<Foo>"     -> "Foo", List
//	"Map<String, B>" -> "B", Map
//	"Set<Baz>"      -> "Baz", Set
//
// Anything else, including shapes with no closing '>', is returned as is.
func NormalizeShape(raw string) (string, model.ContainerKind) {
	if raw == "" {
		return model.VoidType, model.ContainerNone
	}

	for _, c := range containerPrefixes {
		if !strings.HasPrefix(raw, c.prefix) {
			continue
		}

		end := strings.LastIndex(raw, ">")
		if end < len(c.prefix) {
			return raw, model.ContainerNone
		}

		inner := raw[len(c.prefix):end]

		if c.kind == model.ContainerMap {
			_, value, found := strings.Cut(inner, ",")
			if !found {
				return raw, model.ContainerNone
			}

			inner = value
		}

		inner = strings.TrimSpace(inner)
		if inner == "" {
			return raw, model.ContainerNone
		}

		return inner, c.kind
	}

	return raw, model.ContainerNone
}

// NormalizeOperation rewrites the return shape of op and of each of its
// responses. Response code "0" (the contract's default response) becomes
// "200" first. A container kind is only ever set, never cleared, so a
// normalized operation is left unchanged by a second call.
func NormalizeOperation(op *model.Operation) {
	for _, resp := range op.Responses {
		if resp.Code == defaultResponseCode {
			resp.Code = successResponseCode
		}

		dataType, kind := NormalizeShape(resp.DataType)
		resp.DataType = dataType

		if kind != model.ContainerNone {
			resp.ContainerType = kind
		}
	}

	returnType, kind := NormalizeShape(op.ReturnType)
	op.ReturnType = returnType

	if kind != model.ContainerNone {
		op.ReturnContainer = kind
	}
}
