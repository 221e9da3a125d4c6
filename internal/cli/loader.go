package cli

import (
	"fmt"
	"os"

	"github.com/birdie-ai/golibs/xjson"
	"gopkg.in/yaml.v3"

	"github.com/dkrantsberg/camlquery/filter"
	"github.com/dkrantsberg/camlquery/model"
)

// modelDef mirrors one model entry of the YAML definition file:
//
//	Customer:
//	  identity:
//	    column: ID
//	    type: Number
//	  properties:
//	    firstName: string
//	    lastName: {type: string, columnName: LastName}
type modelDef struct {
	Identity   identityDef `yaml:"identity"`
	Properties yaml.Node   `yaml:"properties"`
}

type identityDef struct {
	Column string `yaml:"column"`
	Type   string `yaml:"type"`
}

type propertyDef struct {
	Type       string `yaml:"type"`
	ColumnName string `yaml:"columnName"`
	CAMLType   string `yaml:"camlType"`
}

// LoadModels reads a YAML model definition file into a validated
// registry. Property order in the file is preserved, because exclusion
// field sets expand against the declared field order.
func LoadModels(path string) (*model.Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading models file: %w", err)
	}

	var defs map[string]modelDef
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("parsing models file: %w", err)
	}

	registry := model.NewRegistry()
	for name, def := range defs {
		md, err := buildMetadata(name, def)
		if err != nil {
			return nil, err
		}
		if err := registry.Register(md); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

func buildMetadata(name string, def modelDef) (*model.Metadata, error) {
	fields, err := parseProperties(name, def.Properties)
	if err != nil {
		return nil, err
	}

	var opts []model.Option
	if def.Identity.Column != "" {
		opts = append(opts, model.WithIdentityColumn(def.Identity.Column))
	}
	if def.Identity.Type != "" {
		opts = append(opts, model.WithIdentityType(model.CAMLType(def.Identity.Type)))
	}
	return model.New(name, fields, opts...)
}

func parseProperties(modelName string, node yaml.Node) ([]model.Field, error) {
	if node.IsZero() {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("model %s: properties must be a mapping", modelName)
	}

	var fields []model.Field
	// A mapping node stores keys and values as alternating Content
	// entries, which is what preserves document order.
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]

		var prop propertyDef
		if val.Kind == yaml.ScalarNode {
			// Shorthand: property name mapped straight to its type.
			prop.Type = val.Value
		} else if err := val.Decode(&prop); err != nil {
			return nil, fmt.Errorf("model %s: property %s: %w", modelName, key.Value, err)
		}

		fields = append(fields, model.Field{
			Name: key.Value,
			Desc: model.FieldDescriptor{
				Type:       model.Type(prop.Type),
				ColumnName: prop.ColumnName,
				CAMLType:   model.CAMLType(prop.CAMLType),
			},
		})
	}
	return fields, nil
}

// LoadFilter reads and parses a JSON filter file.
func LoadFilter(path string) (filter.Filter, error) {
	raw, err := xjson.UnmarshalFile[xjson.Obj](path)
	if err != nil {
		return filter.Filter{}, fmt.Errorf("reading filter file: %w", err)
	}
	return filter.ParseFilter(raw)
}
