package types

// VerdictSchema describes the object the model is asked to return.
// Both fields are required; anything else is ignored on read.
const VerdictSchema = `{
  "type": "object",
  "properties": {
    "isValid": { "type": "boolean" },
    "reason":  { "type": "string" }
  },
  "required": ["isValid", "reason"],
  "additionalProperties": false
}`
