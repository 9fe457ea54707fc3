package logger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Keys the formatters write themselves. Entry fields with these names are
// emitted as "fields.<key>".
var reservedKeys = map[string]bool{
	"timestamp": true,
	"level":     true,
	"message":   true,
	"app":       true,
	"version":   true,
	"caller":    true,
	"function":  true,
}

type CustomJSONFormatter struct {
	TimestampFormat string
	PrettyPrint     bool
	AppName         string
	Version         string
}

type CustomTextFormatter struct {
	TimestampFormat string
	ForceColors     bool
	DisableColors   bool
	AppName         string
	Version         string
}

func entryBuffer(entry *logrus.Entry) *bytes.Buffer {
	if entry.Buffer != nil {
		return entry.Buffer
	}
	return &bytes.Buffer{}
}

// fieldValue makes error values readable; encoding/json writes them as {}.
func fieldValue(v interface{}) interface{} {
	if err, ok := v.(error); ok {
		return err.Error()
	}
	return v
}

func (f *CustomJSONFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	data := make(map[string]interface{}, len(entry.Data)+7)

	for k, v := range entry.Data {
		if reservedKeys[k] {
			k = "fields." + k
		}
		data[k] = fieldValue(v)
	}

	timestampFormat := f.TimestampFormat
	if timestampFormat == "" {
		timestampFormat = time.RFC3339
	}
	data["timestamp"] = entry.Time.Format(timestampFormat)
	data["level"] = entry.Level.String()
	data["message"] = entry.Message

	if f.AppName != "" {
		data["app"] = f.AppName
	}
	if f.Version != "" {
		data["version"] = f.Version
	}
	if entry.HasCaller() {
		data["caller"] = fmt.Sprintf("%s:%d", entry.Caller.File, entry.Caller.Line)
		data["function"] = entry.Caller.Function
	}

	b := entryBuffer(entry)
	encoder := json.NewEncoder(b)
	encoder.SetEscapeHTML(false)
	if f.PrettyPrint {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(data); err != nil {
		return nil, fmt.Errorf("failed to marshal fields to JSON: %w", err)
	}

	return b.Bytes(), nil
}

var levelColors = map[logrus.Level]string{
	logrus.PanicLevel: "\033[31m",
	logrus.FatalLevel: "\033[31m",
	logrus.ErrorLevel: "\033[31m",
	logrus.WarnLevel:  "\033[33m",
	logrus.InfoLevel:  "\033[36m",
}

// Format writes one line: time, level, app, caller, message, then key=value
// pairs with request_id first and the rest sorted.
func (f *CustomTextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := entryBuffer(entry)

	timestampFormat := f.TimestampFormat
	if timestampFormat == "" {
		timestampFormat = "2006-01-02 15:04:05"
	}

	level := strings.ToUpper(entry.Level.String())
	if f.ForceColors && !f.DisableColors {
		color, ok := levelColors[entry.Level]
		if !ok {
			color = "\033[37m"
		}
		level = color + level + "\033[0m"
	}

	fmt.Fprintf(b, "%s [%s] ", entry.Time.Format(timestampFormat), level)
	if f.AppName != "" {
		fmt.Fprintf(b, "[%s] ", f.AppName)
	}
	if entry.HasCaller() {
		fmt.Fprintf(b, "[%s:%d] ", entry.Caller.File, entry.Caller.Line)
	}
	b.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		if k != "request_id" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if _, ok := entry.Data["request_id"]; ok {
		keys = append([]string{"request_id"}, keys...)
	}

	for _, k := range keys {
		fmt.Fprintf(b, " %s=%s", k, textValue(entry.Data[k]))
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

// textValue quotes values that would otherwise break key=value parsing.
func textValue(v interface{}) string {
	s := fmt.Sprint(fieldValue(v))
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}
