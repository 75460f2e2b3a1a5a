package commands

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"ufwlog/pkg/filter"
)

// whereOps in match order: two-character operators first so "DPT>=25565"
// is not mistaken for a ">" expression.
var whereOps = []string{"!=", ">=", "<=", "=", ">", "<", "~"}

// ParseWhere converts --where expressions of the form FIELD OP VALUE
// (e.g. "DPT=25565", "SRC~^20\.", "uptime>100") into predicates. The
// expressions combine conjunctively.
func ParseWhere(exprs []string) ([]filter.Predicate, error) {
	preds := make([]filter.Predicate, 0, len(exprs))
	for _, expr := range exprs {
		pred, err := parseWhereExpr(expr)
		if err != nil {
			return nil, err
		}
		preds = append(preds, pred)
	}
	return preds, nil
}

func parseWhereExpr(expr string) (filter.Predicate, error) {
	for _, op := range whereOps {
		i := strings.Index(expr, op)
		if i <= 0 {
			continue
		}

		name, raw := expr[:i], expr[i+len(op):]
		field, ok := filter.FieldByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown field %q in expression %q", name, expr)
		}

		if op == "~" {
			re, err := regexp.Compile(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid pattern in expression %q: %w", expr, err)
			}
			return field.Matches(re), nil
		}

		value := coerceValue(name, raw)
		switch op {
		case "=":
			return field.Equals(value), nil
		case "!=":
			return field.NotEquals(value), nil
		case ">":
			return field.GreaterThan(value), nil
		case "<":
			return field.LessThan(value), nil
		case ">=":
			return field.AtLeast(value), nil
		case "<=":
			return field.AtMost(value), nil
		}
	}
	return nil, fmt.Errorf("invalid expression %q (want FIELD(=|!=|>|<|>=|<=|~)VALUE)", expr)
}

// coerceValue types the literal to match the field it is compared against:
// ports are ints, uptime is a float, the flags are booleans, everything
// else stays text.
func coerceValue(name, raw string) any {
	switch name {
	case "SPT", "DPT":
		if n, err := strconv.Atoi(raw); err == nil {
			return n
		}
	case "uptime":
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}
	case "ACK", "PSH":
		if b, err := strconv.ParseBool(raw); err == nil {
			return b
		}
	}
	return raw
}
