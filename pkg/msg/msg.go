package msg

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

var messages = make(map[string]string)

// Init loads a YAML message catalog. Keys from later calls override earlier ones.
func Init(content []byte) error {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return fmt.Errorf("fail to read messages: %w", err)
	}

	parseMessageMap("", v.AllSettings(), messages)
	return nil
}

// parseMessageMap read recursively the yml archive
func parseMessageMap(prefix string, data map[string]interface{}, result map[string]string) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]interface{}:
			parseMessageMap(fullKey, v, result)
		}
	}
}

// GetMessage returns a msg and format
func GetMessage(key string, args ...interface{}) string {
	msg, exists := messages[key]
	if !exists {
		return fmt.Sprintf("Message not found: %s", key)
	}

	for i, arg := range args {
		placeholder := fmt.Sprintf("{%d}", i)
		var argStr string

		if isPrimitive(arg) {
			argStr = primitiveToString(arg)
		} else {
			jsonBytes, err := json.Marshal(arg)
			if err != nil {
				argStr = fmt.Sprintf("%v", arg)
			} else {
				argStr = string(jsonBytes)
			}
		}

		msg = strings.ReplaceAll(msg, placeholder, argStr)
	}

	return msg
}

// isPrimitive checks if the provided value is of a primitive type (bool, int, uint, float, or string).
func isPrimitive(value interface{}) bool {
	if value == nil {
		return true
	}
	switch reflect.TypeOf(value).Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.String:
		return true
	default:
		return false
	}
}

func primitiveToString(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", value)
	}
}
