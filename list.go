package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/agilira/orpheus/pkg/orpheus"
	"gopkg.in/yaml.v3"
)

// ListTargets reports the identifiers of one target type in the requested
// format. The type name must be one of the catalog's categories.
func ListTargets(cat *TargetCatalog, typeName, format string) error {
	if !cat.HasType(typeName) {
		return orpheus.NotFoundError("list",
			fmt.Sprintf("unknown target type '%s' (known types: %s)", typeName, strings.Join(cat.TypeNames(), ", ")))
	}

	switch format {
	case "json":
		return listTargetsJSON(cat, typeName)
	case "yaml":
		return listTargetsYAML(cat, typeName)
	default: // table
		return listTargetsTable(cat, typeName)
	}
}

func listTargetsTable(cat *TargetCatalog, typeName string) error {
	ids := cat.TargetsOfType(typeName)

	// "Build targets:", "Clang-tidy targets:" etc.
	header := strings.ToUpper(typeName[:1]) + typeName[1:]
	fmt.Printf("%s targets:\n", header)

	if len(ids) == 0 {
		fmt.Println("No targets found")
		return nil
	}

	for _, id := range ids {
		fmt.Println(id)
	}

	fmt.Printf("\nTotal: %d targets\n", len(ids))
	return nil
}

type targetListing struct {
	Type    string   `json:"type" yaml:"type"`
	Targets []string `json:"targets" yaml:"targets"`
	Total   int      `json:"total" yaml:"total"`
}

func listTargetsJSON(cat *TargetCatalog, typeName string) error {
	ids := cat.TargetsOfType(typeName)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(targetListing{Type: typeName, Targets: ids, Total: len(ids)})
}

func listTargetsYAML(cat *TargetCatalog, typeName string) error {
	ids := cat.TargetsOfType(typeName)

	encoder := yaml.NewEncoder(os.Stdout)
	defer func() { _ = encoder.Close() }()
	return encoder.Encode(targetListing{Type: typeName, Targets: ids, Total: len(ids)})
}
