package internal

import (
	"math"
	"strconv"
)

// Runtime values are nil, bool, float64 and string.

// truthy only nil and false are falsy
func truthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if valueBool, isBool := value.(bool); isBool {
		return valueBool
	}
	return true
}

// isEqual values of different types are never equal
func isEqual(left, right interface{}) bool {
	return left == right
}

func stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(v)
	case string:
		return v
	case float64:
		switch {
		case math.IsInf(v, 1):
			return "Infinity"
		case math.IsInf(v, -1):
			return "-Infinity"
		case math.IsNaN(v):
			return "NaN"
		}
		// Integral numbers print without a fraction
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return "<unknown>"
}
