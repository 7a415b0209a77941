package scriba

import (
	"encoding/base64"
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Scalar coercions from externally decoded values (JSON or BSON trees) to
// the internal forms the pipeline stores. Each returns false when the input
// type or shape does not match.

func coerceString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func coerceInt(v any) (int64, bool) {
	switch v := v.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return int64(v), true
	case float64:
		// JSON numbers decode as float64; accept integral values only.
		return intFromFloat(v)
	case float32:
		return intFromFloat(float64(v))
	case json.Number:
		n, err := v.Int64()
		return n, err == nil
	default:
		return 0, false
	}
}

// intFromFloat accepts integral floats inside the int64 range. Converting an
// out-of-range or NaN float64 to int64 is implementation-specific, so the
// bound check comes first. The upper bound is exclusive: MaxInt64 rounds up
// to 2^63 as a float64, which does not fit.
func intFromFloat(v float64) (int64, bool) {
	if !(v >= math.MinInt64 && v < math.MaxInt64) {
		return 0, false
	}
	if v != float64(int64(v)) {
		return 0, false
	}
	return int64(v), true
}

func coerceFloat(v any) (float64, bool) {
	switch v := v.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func coerceBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

func coerceTime(v any) (time.Time, bool) {
	switch v := v.(type) {
	case time.Time:
		return v, true
	case primitive.DateTime:
		return v.Time().UTC(), true
	case string:
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05.999999999", "2006-01-02"} {
			if t, err := time.Parse(layout, v); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

func coerceObjectID(v any) (primitive.ObjectID, bool) {
	switch v := v.(type) {
	case primitive.ObjectID:
		return v, true
	case string:
		id, err := primitive.ObjectIDFromHex(v)
		return id, err == nil
	default:
		return primitive.NilObjectID, false
	}
}

func coerceUUID(v any) (uuid.UUID, bool) {
	switch v := v.(type) {
	case uuid.UUID:
		return v, true
	case string:
		id, err := uuid.Parse(v)
		return id, err == nil
	case [16]byte:
		return uuid.UUID(v), true
	default:
		return uuid.Nil, false
	}
}

func coerceDecimal(v any) (decimal.Decimal, bool) {
	switch v := v.(type) {
	case decimal.Decimal:
		return v, true
	case primitive.Decimal128:
		d, err := decimal.NewFromString(v.String())
		return d, err == nil
	case string:
		d, err := decimal.NewFromString(v)
		return d, err == nil
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int64:
		return decimal.NewFromInt(v), true
	case float64:
		return decimal.NewFromFloat(v), true
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		return d, err == nil
	default:
		return decimal.Decimal{}, false
	}
}

func coerceBytes(v any) ([]byte, bool) {
	switch v := v.(type) {
	case []byte:
		return v, true
	case primitive.Binary:
		return v.Data, true
	case string:
		b, err := base64.StdEncoding.DecodeString(v)
		return b, err == nil
	default:
		return nil, false
	}
}

func coerceMap(v any) (map[string]any, bool) {
	switch v := v.(type) {
	case map[string]any:
		return v, true
	case bson.M:
		return map[string]any(v), true
	case bson.D:
		m := make(map[string]any, len(v))
		for _, e := range v {
			m[e.Key] = e.Value
		}
		return m, true
	default:
		return nil, false
	}
}

func coerceSlice(v any) ([]any, bool) {
	switch v := v.(type) {
	case []any:
		return v, true
	case bson.A:
		return []any(v), true
	default:
		return nil, false
	}
}
