// Package schemafile loads required-variable manifests from YAML, JSON, or TOML files.
//
// A manifest lists the variables an application needs and, optionally, the
// env files to load before checking them:
//
//	required:
//	  - DATABASE_URL
//	  - API_KEY
//	files:
//	  - .env
//	  - .env.local
//
// Format is auto-detected from extension (.yaml, .yml, .json, .toml).
//
// Example:
//
//	m, err := schemafile.Load("env.schema.yaml", schemafile.Options{Required: true})
//	result := dotenv.DefaultValidator().Validate(m.Required...)
package schemafile
