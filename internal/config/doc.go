// Package config loads the dfusion configuration.
//
// Sources, later ones winning:
//   - built-in defaults
//   - the YAML file, with ${VAR} references expanded
//   - DFUSION_* environment variables, optionally seeded from a .env file
//
// Example:
//
//	api:
//	  url: https://api.thegraph.com/subgraphs/name/gnosis/dfusion-staging
//	  timeout: 30s
//	  max_retries: 3
//	output:
//	  format: csv
//	  etherscan_url: https://rinkeby.etherscan.io
//	log:
//	  level: info
package config
