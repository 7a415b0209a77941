package mongo

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// regexEscaper neutralizes the characters the store's regex grammar treats
// specially, so the substring constructors match their input literally.
var regexEscaper = strings.NewReplacer(
	`\`, `\\`,
	`(`, `\(`,
	`)`, `\)`,
	`!`, `\!`,
	`^`, `\^`,
	`$`, `\$`,
	`[`, `\[`,
	`]`, `\]`,
	`*`, `\*`,
	`+`, `\+`,
	`?`, `\?`,
	`{`, `\{`,
	`}`, `\}`,
	`/`, `\/`,
	`|`, `\|`,
	`<`, `\<`,
	`>`, `\>`,
	`.`, `\.`,
)

// Contains returns a filter matching string fields that contain value as a
// literal substring.
func Contains(path, value string, caseSensitive bool) *Raw {
	return regexFilter(path, regexEscaper.Replace(value), caseSensitive)
}

// StartsWith returns a filter matching string fields that start with value.
func StartsWith(path, value string, caseSensitive bool) *Raw {
	return regexFilter(path, "^"+regexEscaper.Replace(value), caseSensitive)
}

// EndsWith returns a filter matching string fields that end with value.
func EndsWith(path, value string, caseSensitive bool) *Raw {
	return regexFilter(path, regexEscaper.Replace(value)+"$", caseSensitive)
}

func regexFilter(path, pattern string, caseSensitive bool) *Raw {
	payload := bson.M{"$regex": pattern}
	if !caseSensitive {
		payload["$options"] = "i"
	}
	return &Raw{Filter: bson.M{path: payload}}
}
