// Package file loads engine configuration and normalisation tables
// from TOML files. Tables can be watched for changes so synonym or
// category edits apply without a restart.
package file
