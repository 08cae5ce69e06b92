package graphql

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ListOptions paginates and sorts a list query.
type ListOptions struct {
	Count     int
	Skip      int
	Sort      string
	Ascending bool
}

func (o ListOptions) validate() error {
	if o.Count < 0 {
		return fmt.Errorf("count must be >= 0, got %d", o.Count)
	}
	if o.Skip < 0 {
		return fmt.Errorf("skip must be >= 0, got %d", o.Skip)
	}
	if !identifier.MatchString(o.Sort) {
		return fmt.Errorf("invalid sort field %q", o.Sort)
	}
	return nil
}

// SortBy renders the ordering arguments of a list query.
func SortBy(field string, ascending bool) string {
	direction := "desc"
	if ascending {
		direction = "asc"
	}
	return "orderBy: " + field + ", orderDirection: " + direction
}

// Filter renders a where argument, including its leading comma. Empty values are
// dropped and keys are sorted. No conditions renders "".
func Filter(conditions map[string]string) string {
	keys := make([]string, 0, len(conditions))
	for k, v := range conditions {
		if v != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+quote(conditions[k]))
	}
	return ", where: { " + strings.Join(parts, ", ") + " }"
}

// ListQuery builds the query for one page of entity.
func ListQuery(entity, fields string, opts ListOptions, conditions map[string]string) (string, error) {
	if err := opts.validate(); err != nil {
		return "", fmt.Errorf("%s query: %w", entity, err)
	}
	for k := range conditions {
		if !identifier.MatchString(k) {
			return "", fmt.Errorf("%s query: invalid filter field %q", entity, k)
		}
	}

	return fmt.Sprintf("{\n  %s (first: %d, skip: %d, %s%s) {%s}\n}",
		entity, opts.Count, opts.Skip, SortBy(opts.Sort, opts.Ascending), Filter(conditions), fields,
	), nil
}

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

// normalizeAddress lower-cases a filter address the way the subgraph stores it.
func normalizeAddress(field, s string) (string, error) {
	if s == "" {
		return "", nil
	}
	if !common.IsHexAddress(s) {
		return "", fmt.Errorf("%s: %q is not an ethereum address", field, s)
	}
	return strings.ToLower(common.HexToAddress(s).Hex()), nil
}
