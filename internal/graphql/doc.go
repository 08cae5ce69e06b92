// Package graphql queries the dFusion subgraph over HTTP.
//
// Endpoints:
//   - API: https://api.thegraph.com/subgraphs/name/gnosis/dfusion-staging
//   - Explorer: https://thegraph.com/explorer/subgraph/gnosis/dfusion-staging
//
// Entities: tokens, orders, trades, prices. Every list query is paginated with
// first/skip and sorted with orderBy/orderDirection.
package graphql
