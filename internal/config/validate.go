package config

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"docref-generator/internal/diagnostic"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report YAML names, the ones users see in their tables file.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// Validate checks tables for structural problems (empty names, malformed
// rename keys) and for entries that would make enrichment order dependent.
func Validate(t *Tables) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if t == nil {
		res.AddError("tables_is_nil", "tables are nil", "", "")
		return res
	}

	validateStruct(res, t)
	validateRenameKeys(res, t)
	validateRemapChains(res, t)
	validateStaticModels(res, t)

	return res
}

func validateStruct(res *diagnostic.Diagnostics, t *Tables) {
	err := validate.Struct(t)
	if err == nil {
		return
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		res.AddError("table_invalid", err.Error(), "", "")
		return
	}

	for _, fe := range verrs {
		res.AddError(
			"table_"+fe.Tag(),
			fmt.Sprintf("entry failed %q validation", fe.Tag()),
			strings.TrimPrefix(fe.Namespace(), "Tables."),
			fmt.Sprint(fe.Value()),
		)
	}
}

func validateRenameKeys(res *diagnostic.Diagnostics, t *Tables) {
	for _, key := range sortedKeys(t.PropertyRenames) {
		modelName, prop, found := strings.Cut(key, ".")
		if found && (modelName == "" || prop == "") {
			res.AddError("invalid_rename_key",
				fmt.Sprintf("rename key %q must be Model.property", key), "propertyRenames", key)

			continue
		}

		next := modelName + "." + t.PropertyRenames[key]
		if _, ok := t.PropertyRenames[next]; found && ok {
			res.AddError("rename_chain",
				fmt.Sprintf("renamed property %q is renamed again", next), "propertyRenames", key)
		}
	}
}

func validateRemapChains(res *diagnostic.Diagnostics, t *Tables) {
	for _, from := range sortedKeys(t.ModelRemap) {
		to := t.ModelRemap[from]
		if _, ok := t.ModelRemap[to]; ok {
			res.AddError("remap_chain",
				fmt.Sprintf("remap target %q is itself remapped", to), "modelRemap", from)
		}
	}
}

func validateStaticModels(res *diagnostic.Diagnostics, t *Tables) {
	seen := map[string]struct{}{}

	for _, sm := range t.StaticModels {
		if sm.Name == "" {
			continue
		}

		if _, ok := seen[sm.Name]; ok {
			res.AddError("duplicate_static_model",
				fmt.Sprintf("duplicate static model %q", sm.Name), "staticModels", sm.Name)

			continue
		}

		seen[sm.Name] = struct{}{}
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}
