package application

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/kensho-project/kensho/internal/domain/plan"
)

// planSchema is the wire contract connectors rely on. Validated before every
// dispatch so a malformed plan fails here instead of inside a plugin.
const planSchema = `{
  "type": "object",
  "required": ["project_name", "thematic_groups"],
  "properties": {
    "project_name": {"type": "string", "minLength": 1},
    "language": {"type": "string"},
    "thematic_groups": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["group_name", "tasks"],
        "properties": {
          "group_name": {"type": "string", "minLength": 1},
          "group_description": {"type": "string"},
          "tasks": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["task_name"],
              "properties": {
                "task_name": {"type": "string", "minLength": 1},
                "details": {"type": "string"},
                "owner": {"type": "string"}
              }
            }
          }
        }
      }
    },
    "requirements": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["reqId", "type", "description"],
        "properties": {
          "reqId": {"type": "string", "pattern": "^REQ-[0-9]{3}$"},
          "type": {"enum": ["Functional", "Non-Functional"]}
        }
      }
    }
  }
}`

var planSchemaLoader = gojsonschema.NewStringLoader(planSchema)

// ValidatePlan checks the plan against the wire schema.
func ValidatePlan(p *plan.Plan) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal plan for validation: %w", err)
	}

	result, err := gojsonschema.Validate(planSchemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("plan schema validation failed: %w", err)
	}

	if !result.Valid() {
		var problems []string
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return fmt.Errorf("plan is not valid for dispatch: %s", strings.Join(problems, "; "))
	}
	return nil
}
