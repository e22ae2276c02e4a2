package persist

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/vovakirdan/semester/internal/game"
)

// Schema reflects a JSON schema of the save format from the state types.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}
	schema := reflector.Reflect(new(game.State))
	schema.Title = "Semester Save"
	schema.Description = "Game state of a semester run. Infinite amounts are written as .inf in YAML saves."
	return schema
}

// SchemaJSON returns the indented schema document.
func SchemaJSON() ([]byte, error) {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("persist: marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}
