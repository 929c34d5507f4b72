package repository

import (
	"strconv"
	"strings"
	"time"

	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// isDuplicateError checks if an error is a unique constraint violation.
// SurrealDB reports both duplicate record ids and unique index hits as plain
// query errors, so this matches on the message.
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "already exists") ||
		strings.Contains(msg, "already contains")
}

// recordNumber extracts the numeric part of a SurrealDB record id
// (e.g. person:42 -> 42).
func recordNumber(id interface{}) int64 {
	switch v := id.(type) {
	case models.RecordID:
		return idPartNumber(v.ID)
	case *models.RecordID:
		if v != nil {
			return idPartNumber(v.ID)
		}
	case string:
		if _, after, found := strings.Cut(v, ":"); found {
			if n, err := strconv.ParseInt(after, 10, 64); err == nil {
				return n
			}
		}
	default:
		return idPartNumber(id)
	}
	return 0
}

func idPartNumber(v interface{}) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case uint64:
		return int64(n)
	case float64:
		return int64(n)
	case string:
		if parsed, err := strconv.ParseInt(n, 10, 64); err == nil {
			return parsed
		}
	}
	return 0
}

// recordString extracts the string part of a SurrealDB record id
// (e.g. administrator:⟨auth0|x⟩ -> auth0|x).
func recordString(id interface{}) string {
	switch v := id.(type) {
	case models.RecordID:
		if s, ok := v.ID.(string); ok {
			return s
		}
	case *models.RecordID:
		if v != nil {
			if s, ok := v.ID.(string); ok {
				return s
			}
		}
	case string:
		if _, after, found := strings.Cut(v, ":"); found {
			return strings.Trim(after, "⟨⟩")
		}
		return v
	}
	return ""
}

// extractQueryResults extracts the result array from a SurrealDB response
func extractQueryResults(result interface{}) ([]interface{}, bool) {
	if results, ok := result.([]interface{}); ok {
		if len(results) > 0 {
			if firstResult, ok := results[0].(map[string]interface{}); ok {
				if resultArray, ok := firstResult["result"].([]interface{}); ok {
					return resultArray, true
				}
			}
			// Direct array format
			return results, true
		}
	}
	return nil, false
}

// extractCount extracts count from a SurrealDB count query result
func extractCount(result interface{}) int64 {
	if resp, ok := result.(map[string]interface{}); ok {
		if status, ok := resp["status"].(string); ok && status == "OK" {
			if resultData, ok := resp["result"].([]interface{}); ok && len(resultData) > 0 {
				if data, ok := resultData[0].(map[string]interface{}); ok {
					return extractCountValue(data["count"])
				}
			}
		}
		// Direct access
		return extractCountValue(resp["count"])
	}
	return 0
}

// extractCountValue converts various numeric types to int64
func extractCountValue(v interface{}) int64 {
	switch c := v.(type) {
	case float64:
		return int64(c)
	case float32:
		return int64(c)
	case int:
		return int64(c)
	case int64:
		return c
	case uint64:
		return int64(c)
	}
	return 0
}

// getString extracts a string value from a map
func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// getStringPtr extracts an optional string value from a map
func getStringPtr(m map[string]interface{}, key string) *string {
	if v, ok := m[key].(string); ok && v != "" {
		return &v
	}
	return nil
}

// getInt64 extracts an int64 value from a map
func getInt64(m map[string]interface{}, key string) int64 {
	switch v := m[key].(type) {
	case float64:
		return int64(v)
	case float32:
		return int64(v)
	case int:
		return int64(v)
	case int64:
		return v
	case uint64:
		return int64(v)
	}
	return 0
}

// getTimePtr extracts an optional time value from a map
func getTimePtr(m map[string]interface{}, key string) *time.Time {
	if v, ok := m[key].(string); ok {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return &t
		}
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return &t
		}
	}
	if t, ok := m[key].(time.Time); ok {
		return &t
	}
	// Handle SurrealDB CustomDateTime type
	if dt, ok := m[key].(models.CustomDateTime); ok {
		t := dt.Time
		return &t
	}
	if dt, ok := m[key].(*models.CustomDateTime); ok && dt != nil {
		t := dt.Time
		return &t
	}
	return nil
}
