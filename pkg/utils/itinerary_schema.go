package utils

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ItinerarySchemaVersion tags persisted itineraries with the contract they were
// validated against. Changing the schema without bumping this is a
// compatibility break for stored journeys.
const ItinerarySchemaVersion = "v1"

// ItinerarySchemaV1 is the structural contract for generated itineraries. It
// constrains the generative call and validates its result; semantic checks
// (day count vs date range, address emptiness) live in the itinerary service
// so they can fail with typed errors.
const ItinerarySchemaV1 = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["destination", "tripTitle", "budget", "companions", "startDate", "endDate", "dailyItinerary"],
  "properties": {
    "destination": {"type": "string", "minLength": 1},
    "tripTitle": {"type": "string", "minLength": 1},
    "budget": {"type": ["string", "number"]},
    "companions": {"type": "string"},
    "startDate": {"type": "string"},
    "endDate": {"type": "string"},
    "soulQuote": {"type": "string"},
    "dailyItinerary": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["day", "theme", "activities", "restaurants"],
        "properties": {
          "day": {"type": "integer", "minimum": 1},
          "theme": {"type": "string"},
          "activities": {
            "type": "array",
            "items": {"$ref": "#/definitions/place"}
          },
          "restaurants": {
            "type": "array",
            "items": {"$ref": "#/definitions/place"}
          }
        }
      }
    }
  },
  "definitions": {
    "place": {
      "type": "object",
      "required": ["name", "description", "emoji", "address"],
      "properties": {
        "name": {"type": "string", "minLength": 1},
        "description": {"type": "string"},
        "emoji": {"type": "string"},
        "address": {"type": "string"}
      }
    }
  }
}`

// ValidateItineraryJSON checks a raw model response against the v1 contract.
func ValidateItineraryJSON(raw string) error {
	schemaLoader := gojsonschema.NewStringLoader(ItinerarySchemaV1)
	documentLoader := gojsonschema.NewStringLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}
	if result.Valid() {
		return nil
	}

	var sb strings.Builder
	for i, desc := range result.Errors() {
		if i > 0 {
			sb.WriteString("; ")
		}
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		sb.WriteString(field + ": " + desc.Description())
	}
	return fmt.Errorf("%w: %s", ErrSchemaViolation, sb.String())
}
