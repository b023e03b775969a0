// Package template loads the bot configuration template and fills in its
// placeholders.
//
// # Placeholder syntax
//
// A template uses either named or positional slots, never both:
//
//	api_url = "{api_url}"          named: api_url, rest_url, username,
//	password = "{password}"        password, oauth2_token; any subset,
//	                               any number of times
//
//	api_url = "{}"                 positional: exactly five slots, filled in
//	                               the order api_url, rest_url, username,
//	                               password, oauth2_token
//
// Write "{{" and "}}" for literal braces. Only one of password and
// oauth2_token carries a value; the other is filled with the empty string, so
// a template should only reference the slot for the method it is meant for.
//
// Values are escaped for TOML basic strings: backslash, double quote and
// control characters. Other text is inserted unchanged.
package template
