package registration

// ShapeSchema is a JSON Schema document for the JSON form of a Record. It
// only checks presence and types; content rules belong to Schema.
const ShapeSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "Record",
  "type": "object",
  "additionalProperties": false,
  "required": ["name", "age", "email", "password", "confirmPassword", "phone", "gender"],
  "properties": {
    "name": {"type": "string"},
    "age": {"type": "integer"},
    "email": {"type": "string"},
    "password": {"type": "string"},
    "confirmPassword": {"type": "string"},
    "phone": {"type": "string"},
    "gender": {"type": "string"}
  }
}`
