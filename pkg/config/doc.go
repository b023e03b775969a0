// Package config resolves operator input for mwbotctl from layered sources.
//
// Precedence, highest first:
//
//  1. Command-line flags that were explicitly set
//  2. Process environment (MW_USERNAME, MW_BOTPASSWORD, MW_OAUTH2,
//     MW_API_URL, MW_REST_URL)
//  3. A .env file in the working directory (or --env-file)
//  4. Built-in defaults (defaults.toml, embedded)
//
// Resolution happens once, at the command boundary. Provisioning code
// receives a finished Input and never reads the environment itself.
package config
