// Package renderer loads embedded templates under scripts/renderer/templates/
// and renders them with sprig functions.
//
// It keeps per-environment operator material (deploy runbooks, smoke-test
// scripts) as separate, easily readable `.tmpl` files instead of Go string
// literals. cmd/runbook drives it from an environments registry.
//
// Example:
//
//	script, err := renderer.Render(renderer.TplSmokeTest, renderer.SmokeTestData{
//	    EnvironmentID: "twala-dev-ds-portal",
//	    OriginDomain:  "main.d2abc123.amplifyapp.com",
//	    Username:      "reviewer",
//	    Password:      "s3cret",
//	})
package renderer
