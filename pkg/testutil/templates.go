package testutil

// FullTemplate references every placeholder and parses as TOML once filled
const FullTemplate = `# mwbot configuration
api_url = "{api_url}"
rest_url = "{rest_url}"

[auth]
username = "{username}"
password = "{password}"
oauth2_token = "{oauth2_token}"
`

// PositionalTemplate is the earliest layout: five bare slots in fixed order
const PositionalTemplate = `api_url = "{}"
rest_url = "{}"

[auth]
username = "{}"
password = "{}"
oauth2_token = "{}"
`
