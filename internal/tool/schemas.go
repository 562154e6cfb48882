package tool

import "encoding/json"

var schemaEmpty = json.RawMessage(`{"type":"object","properties":{}}`)

var schemaSpeciesOnly = json.RawMessage(`{
  "type": "object",
  "properties": {
    "species": {"type": "string", "description": "Species slug or name, e.g. \"dogs\"."}
  }
}`)

var schemaAnimalID = json.RawMessage(`{
  "type": "object",
  "required": ["animal_id"],
  "properties": {
    "animal_id": {"type": "string", "description": "Upstream animal id."},
    "json": {"type": "boolean", "description": "Return raw JSON instead of Markdown."}
  }
}`)

var schemaOrgID = json.RawMessage(`{
  "type": "object",
  "required": ["org_id"],
  "properties": {
    "org_id": {"type": "string", "description": "Upstream organization id."}
  }
}`)

var schemaBreedID = json.RawMessage(`{
  "type": "object",
  "required": ["breed_id"],
  "properties": {
    "breed_id": {"type": "string", "description": "Upstream breed id."}
  }
}`)

var schemaLimitJSON = json.RawMessage(`{
  "type": "object",
  "properties": {
    "limit": {"type": "integer", "minimum": 1, "maximum": 100, "description": "Page size, bounded to [1,100]."},
    "json": {"type": "boolean", "description": "Return raw JSON instead of Markdown."}
  }
}`)

var schemaInspectTool = json.RawMessage(`{
  "type": "object",
  "properties": {
    "tool_name": {"type": "string", "description": "When set, describe this tool's full schema. Omit to list every tool."}
  }
}`)

var schemaCompareAnimals = json.RawMessage(`{
  "type": "object",
  "required": ["animal_ids"],
  "properties": {
    "animal_ids": {
      "type": "array",
      "minItems": 1,
      "maxItems": 5,
      "items": {"type": "string"},
      "description": "1 to 5 animal ids to compare side by side."
    }
  }
}`)

var schemaSearchAdoptablePets = json.RawMessage(`{
  "type": "object",
  "properties": {
    "species": {"type": "string"},
    "postal_code": {"type": "string"},
    "miles": {"type": "integer", "minimum": 0},
    "good_with_children": {"type": "boolean"},
    "good_with_dogs": {"type": "boolean"},
    "good_with_cats": {"type": "boolean"},
    "house_trained": {"type": "boolean"},
    "special_needs": {"type": "boolean"},
    "needs_foster": {"type": "boolean"},
    "color": {"type": "string"},
    "pattern": {"type": "string"},
    "sort": {"type": "string", "enum": ["Newest", "Distance", "Random"]},
    "limit": {"type": "integer", "minimum": 1, "maximum": 100},
    "include_orgs": {"type": "boolean"},
    "json": {"type": "boolean"}
  }
}`)

var schemaSearchOrganizations = json.RawMessage(`{
  "type": "object",
  "properties": {
    "postal_code": {"type": "string"},
    "miles": {"type": "integer", "minimum": 0},
    "query": {"type": "string", "description": "Organization name substring."},
    "limit": {"type": "integer", "minimum": 1, "maximum": 100}
  }
}`)

var schemaOrgAnimals = json.RawMessage(`{
  "type": "object",
  "required": ["org_id"],
  "properties": {
    "org_id": {"type": "string"},
    "limit": {"type": "integer", "minimum": 1, "maximum": 100}
  }
}`)

var schemaListAdopted = json.RawMessage(`{
  "type": "object",
  "properties": {
    "species": {"type": "string"},
    "postal_code": {"type": "string"},
    "miles": {"type": "integer", "minimum": 0},
    "limit": {"type": "integer", "minimum": 1, "maximum": 100}
  }
}`)

var schemaListMetadata = json.RawMessage(`{
  "type": "object",
  "required": ["metadata_type"],
  "properties": {
    "metadata_type": {"type": "string", "enum": ["colors","patterns","qualities","species","breeds","sizes","ages","sexes","sort-options"]},
    "species": {"type": "string"}
  }
}`)
