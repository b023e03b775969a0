package mwbotctl

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Provision and run a MediaWiki bot"
	MsgSetupShort      = "Write the bot configuration from a template"
	MsgRunShort        = "Fetch a page as the bot"
	MsgCheckShort      = "Verify the provisioned configuration"
	MsgDocsShort       = "Show the template authoring guide"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgSetupSuccess     = "Successfully set up %s"
	MsgSetupDryRun      = "Template filled; %s was not written"
	MsgSetupPartial     = "%s was written but is not protected; restrict it with chmod 600"
	MsgCheckOK          = "Configuration OK"
	MsgNoOwnerOnlyModes = "this platform has no owner-only file modes; protect the file by other means"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat      = "Output format: auto, term, text or json"
	MsgFlagUsername    = "Bot account name (MW_USERNAME)"
	MsgFlagBotPassword = "Bot password (MW_BOTPASSWORD)"
	MsgFlagOAuth2Token = "OAuth2 owner-only access token (MW_OAUTH2)"
	MsgFlagAPIURL      = "Action API endpoint (MW_API_URL)"
	MsgFlagRESTURL     = "REST endpoint (MW_REST_URL)"
	MsgFlagTemplate    = "Template to fill"
	MsgFlagEnvFile     = "Env file to read MW_* values from"
	MsgFlagDryRun      = "Fill the template without writing the configuration"
	MsgFlagPage        = "Page title to fetch"
	MsgFlagConfig      = "Configuration file to load instead of the provisioned one"
	MsgFlagTimeout     = "Request timeout"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/setup-long.txt
	msgSetupLongRaw string
	MsgSetupLong    = strings.TrimSpace(msgSetupLongRaw)

	//go:embed msgs/setup-example.txt
	msgSetupExampleRaw string
	MsgSetupExample    = strings.TrimRight(msgSetupExampleRaw, "\n")

	//go:embed msgs/run-long.txt
	msgRunLongRaw string
	MsgRunLong    = strings.TrimSpace(msgRunLongRaw)

	//go:embed msgs/run-example.txt
	msgRunExampleRaw string
	MsgRunExample    = strings.TrimRight(msgRunExampleRaw, "\n")

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/template-guide.md
	MsgTemplateGuide string
)
