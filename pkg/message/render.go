package message

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/conneroisu/expect/internal/strbuilder"
)

// metadataSortOrder pins these keys, compared case-insensitively, ahead of
// all others.
var metadataSortOrder = map[string]int{
	"index":    1,
	"key":      2,
	"value":    3,
	"expected": 4,
	"actual":   5,
}

const (
	variableExpected = "expected"
	variableActual   = "actual"
)

var variableLabels = func() map[string]string {
	caser := cases.Title(language.English)
	return map[string]string{
		variableExpected: caser.String(variableExpected),
		variableActual:   caser.String(variableActual),
	}
}()

// Build renders the message for a check outcome. pass reports whether the
// check itself passed and negated whether the chain was negated; a raised
// failure is rendered as Build(true, true) or Build(false, false).
func (b *Builder) Build(pass, negated bool) string {
	sb := strbuilder.New()

	b.buildPrefix(sb, pass, negated)
	b.buildOthers(sb, negated)

	sb.AppendLine("")
	b.buildReason(sb)

	if b.data.hasPath {
		b.buildMetadata(sb, b.data.nestedMetadata)
	} else {
		b.buildMetadata(sb, b.data.surfaceMetadata)
	}
	if !pass {
		b.buildMetadata(sb, b.data.failureMetadata)
	}
	b.buildMetadata(sb, b.data.metadata)

	sb.AppendLine("")
	b.buildVariableData(sb, variableExpected, b.data.expected, Place.Expected.Value, Place.Expected.FullValue, Place.Expected.Type)
	b.buildVariableData(sb, variableActual, b.data.actual, Place.Actual.Value, Place.Actual.FullValue, Place.Actual.Type)

	// reasons and metadata may themselves carry tokens
	b.buildOthers(sb, negated)

	response := sb.Build()
	if b.options.TrimWhiteSpace {
		return strings.TrimSpace(response)
	}
	return response
}

func (b *Builder) buildPrefix(sb *strbuilder.Builder, pass, negated bool) {
	prefix := b.data.prefix
	if negated && b.data.negationPrefix != "" {
		prefix = b.data.negationPrefix
	}

	sb.Append(prefix)
	if !pass {
		sb.Append(b.data.trailingFailurePrefix)
	}
	sb.Append(b.data.suffix)
	if !pass {
		sb.Append(b.data.failureSuffix)
	}
	if negated {
		sb.Append(b.data.negationSuffix)
	}
}

func (b *Builder) buildReason(sb *strbuilder.Builder) {
	switch {
	case b.data.reason == "":
		sb.Remove(Place.Reason, b.options.TrimSpaces)
	case sb.Has(Place.Reason):
		sb.Replace(Place.Reason, b.data.reason)
	default:
		sb.AppendLine("Reason: " + b.data.reason)
	}
}

func (b *Builder) buildMetadata(sb *strbuilder.Builder, bag map[string]any) {
	keys := make([]string, 0, len(bag))
	for key := range bag {
		keys = append(keys, key)
	}
	SortMetadataKeys(keys)

	for _, key := range keys {
		sb.AppendLine(key + ": " + stringify(sb, bag[key]))
	}
}

// SortMetadataKeys orders keys the way metadata lines are rendered: index,
// key, value, expected and actual first, then everything else, all compared
// case-insensitively.
func SortMetadataKeys(keys []string) {
	sort.SliceStable(keys, func(i, j int) bool {
		a, b := strings.ToLower(keys[i]), strings.ToLower(keys[j])
		orderA, okA := metadataSortOrder[a]
		orderB, okB := metadataSortOrder[b]
		switch {
		case okA && okB && orderA != orderB:
			return orderA < orderB
		case okA != okB:
			return okA
		default:
			return a < b
		}
	})
}

func (b *Builder) buildVariableData(sb *strbuilder.Builder, variable string, d VariableData, valueToken, fullToken, typeToken string) {
	valueType := d.Type
	if valueType == "" {
		valueType = TypeOf(d.Value)
	}
	sb.Replace(typeToken, valueType)

	if isNil(d.Value) {
		sb.Replace(valueToken, Place.Nil)
		sb.Replace(fullToken, Place.Nil)
		return
	}

	array := IsArray(d.Value)
	short := b.encode(sb, d.Value, EncodeOptions{Type: d.Type, Array: array, Collapsible: true})
	full := b.encode(sb, d.Value, EncodeOptions{Type: d.Type, Array: array})

	sb.Replace(valueToken, short)
	sb.Replace(fullToken, full)

	if b.options.AttachFullOnCollapse && short != full {
		sb.AppendLine(variableLabels[variable] + " (full): " + full)
	}
}

func (b *Builder) buildOthers(sb *strbuilder.Builder, negated bool) {
	path := b.data.path
	if b.data.hasPath && path == "" {
		path = `""`
	}
	b.replaceOrRemove(sb, Place.Path, path)

	name := Place.Actual.Value
	switch {
	case b.data.hasPath:
		name = path
	case b.data.name != "":
		name = b.data.name
	}
	sb.Replace(Place.Name, name)

	index := ""
	if b.data.index != nil {
		index = fmt.Sprint(b.data.index)
	}
	b.replaceOrRemove(sb, Place.Index, index)

	sb.Replace(Place.Nil, "nil")

	if negated {
		sb.Replace(Place.Not, "NOT")
	} else {
		sb.Remove(Place.Not, b.options.TrimSpaces)
	}
}

func (b *Builder) replaceOrRemove(sb *strbuilder.Builder, token, value string) {
	if value != "" {
		sb.Replace(token, value)
		return
	}
	sb.Remove(token, b.options.TrimSpaces)
}

func stringify(sb *strbuilder.Builder, value any) string {
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case nil:
		return "nil"
	default:
		return sb.Encode(v)
	}
}
