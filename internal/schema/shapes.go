package schema

// Declared shapes for the three AI flows and the provider-lookup tool.
// Top-level objects reject unknown fields; free-text bodies (answer,
// guidance, descriptions) are passed through unvalidated.

var RecommendationRequest = MustShape("RecommendationRequest", `{
  "type": "object",
  "properties": {
    "projectDescription": {"type": "string", "minLength": 1}
  },
  "required": ["projectDescription"],
  "additionalProperties": false
}`)

var RecommendationResult = MustShape("RecommendationResult", `{
  "type": "object",
  "properties": {
    "recommendations": {
      "type": "array",
      "items": {"type": "string", "minLength": 1}
    }
  },
  "required": ["recommendations"],
  "additionalProperties": false
}`)

var AssistantRequest = MustShape("AssistantRequest", `{
  "type": "object",
  "properties": {
    "query": {"type": "string", "minLength": 1},
    "history": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "role": {"type": "string", "enum": ["user", "model"]},
          "content": {"type": "string"}
        },
        "required": ["role", "content"],
        "additionalProperties": false
      }
    },
    "location": {"type": "string"}
  },
  "required": ["query"],
  "additionalProperties": false
}`)

var AssistantResult = MustShape("AssistantResult", `{
  "type": "object",
  "properties": {
    "answer": {"type": "string", "minLength": 1},
    "link": {"type": "string"}
  },
  "required": ["answer"],
  "additionalProperties": false
}`)

var CompletionRequest = MustShape("CompletionRequest", `{
  "type": "object",
  "properties": {
    "calculatorName": {"type": "string", "minLength": 1},
    "knownParameters": {
      "type": "object",
      "additionalProperties": {"type": "string"}
    }
  },
  "required": ["calculatorName", "knownParameters"],
  "additionalProperties": false
}`)

var CompletionResult = MustShape("CompletionResult", `{
  "type": "object",
  "properties": {
    "filledValues": {
      "type": "object",
      "additionalProperties": {"type": "string"}
    },
    "guidance": {"type": "string"}
  },
  "additionalProperties": false
}`)

var ProviderLookupInput = MustShape("ProviderLookupInput", `{
  "type": "object",
  "properties": {
    "service": {"type": "string", "minLength": 1},
    "location": {"type": "string", "minLength": 1}
  },
  "required": ["service", "location"],
  "additionalProperties": false
}`)

var ProviderList = MustShape("ProviderList", `{
  "type": "array",
  "items": {
    "type": "object",
    "properties": {
      "name": {"type": "string", "minLength": 1},
      "rating": {"type": "number", "minimum": 0, "maximum": 5},
      "reviewCount": {"type": "integer", "minimum": 0},
      "address": {"type": "string"}
    },
    "required": ["name", "rating", "reviewCount", "address"],
    "additionalProperties": false
  }
}`)
