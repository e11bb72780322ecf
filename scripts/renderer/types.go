package renderer

// TemplateName represents a known template filename.
type TemplateName string

// Constants for known template filenames.
const (
	TplDeployRunbook TemplateName = "deploy_runbook.md.tmpl"
	TplSmokeTest     TemplateName = "smoke_test.sh.tmpl"
)

// RunbookData holds the data required by the TplDeployRunbook template.
// Fields are plain strings rather than the config bundle type so the
// renderer stays free of infrastructure imports.
type RunbookData struct {
	EnvironmentID   string
	WebAclStackName string
	StackName       string
	AppID           string
	BranchName      string
	WebACLArn       string // empty renders the first-deployment variant
}

// SmokeTestData holds the data required by the TplSmokeTest template.
type SmokeTestData struct {
	EnvironmentID string
	OriginDomain  string
	Username      string
	Password      string
}
