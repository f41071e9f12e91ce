package compile

import (
	"mdmodel-generator/internal/diagnostic"
	"mdmodel-generator/internal/naming"
	"mdmodel-generator/internal/schema"
)

// defaultNamespace is used when the model declares no name.
const defaultNamespace = "model"

// Generate compiles a loaded model into a ModuleDescription.
//
// Every object and enum name is validated before any synthesis for that
// entity begins; a reserved-name collision aborts the whole run with a
// *ReservedNameError and no output. An empty model is legal and yields a
// namespace with no members.
func Generate(model *schema.Model) (*ModuleDescription, error) {
	desc := &ModuleDescription{Namespace: Namespace(model.Name)}

	var diags diagnostic.Diagnostics

	for _, objDef := range model.Objects {
		if err := checkName("object", objDef.Name); err != nil {
			return nil, err
		}

		obj := Object{Name: objDef.Name}
		for _, attr := range objDef.Attributes {
			obj.Fields = append(obj.Fields, synthesizeField(objDef.Name, attr, &diags))
		}

		desc.Objects = append(desc.Objects, obj)
	}

	for _, enumDef := range model.Enums {
		if err := checkName("enum", enumDef.Name); err != nil {
			return nil, err
		}

		desc.Enums = append(desc.Enums, synthesizeEnum(enumDef, &diags))
	}

	desc.Diagnostics = diags

	return desc, nil
}

// Namespace derives the module namespace from a model name.
func Namespace(modelName string) string {
	if modelName == "" {
		return defaultNamespace
	}

	return naming.ToSnake(modelName)
}
