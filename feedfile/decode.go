package feedfile

import (
	"errors"
	"fmt"
	"io"
	"math"
	"reflect"
	"sort"
	"strconv"

	"github.com/jmespath/go-jmespath"
	"gopkg.in/yaml.v3"

	"github.com/rsskit/rss"
	"github.com/rsskit/rss/logging"
)

// ErrSelectResult is returned when a select expression does not yield a
// list.
var ErrSelectResult = errors.New("select expression must yield a list of items")

// Options configures how a definition is turned into a document.
type Options struct {
	// Logger receives warnings about values that were kept or dropped.
	// Defaults to logging.Noop.
	Logger logging.Logger

	// Select overrides the select expression of the definition.
	Select string

	// Generator is used when the definition names no generator and does
	// not omit it. Empty keeps rss.DefaultGenerator.
	Generator string

	// NormalizeDates rewrites parseable dates as RFC 822 dates.
	NormalizeDates bool
}

// Decode reads a YAML definition from r and builds the RSS document it
// describes.
func Decode(r io.Reader, optFns ...func(*Options)) (*rss.RSS, error) {
	var opts Options
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.Noop{}
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("feedfile: read definition: %w", err)
	}

	def, err := Unmarshal(data)
	if err != nil {
		return nil, err
	}

	expr := def.Select
	if len(opts.Select) != 0 {
		expr = opts.Select
	}
	if len(expr) != 0 {
		total := len(def.Items)
		if def.Items, err = selectItems(data, expr); err != nil {
			return nil, err
		}
		opts.Logger.Logf(logging.Debug, "select %q kept %d of %d items", expr, len(def.Items), total)
	}

	return def.Build(opts), nil
}

// Unmarshal parses a YAML definition.
func Unmarshal(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("feedfile: parse definition: %w", err)
	}
	return &def, nil
}

// selectItems evaluates expr against the generic form of the definition and
// decodes the resulting list as items. Mappings that come straight from the
// file are decoded from their original nodes, so scalar text is kept as
// written.
func selectItems(data []byte, expr string) ([]ItemDefinition, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("feedfile: parse definition: %w", err)
	}

	t := nodeTable{}
	doc, err := t.value(&root)
	if err != nil {
		return nil, fmt.Errorf("feedfile: parse definition: %w", err)
	}

	result, err := jmespath.Search(expr, doc)
	if err != nil {
		return nil, fmt.Errorf("feedfile: select %q: %w", expr, err)
	}
	if result == nil {
		return nil, nil
	}

	list, ok := result.([]interface{})
	if !ok {
		return nil, fmt.Errorf("feedfile: select %q: %w", expr, ErrSelectResult)
	}

	var items []ItemDefinition
	if err := t.node(list).Decode(&items); err != nil {
		return nil, fmt.Errorf("feedfile: select %q: %w", expr, err)
	}
	return items, nil
}

// nodeTable remembers the node each generic mapping was built from.
type nodeTable map[uintptr]*yaml.Node

// value converts a YAML node into the map, slice, string, float64, bool and
// nil values JMESPath operates on. Scalars other than numbers, booleans and
// null are kept as their literal text, so dates are not reinterpreted.
func (t nodeTable) value(n *yaml.Node) (interface{}, error) {
	switch n.Kind {
	case 0:
		return nil, nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return t.value(n.Content[0])
	case yaml.AliasNode:
		return t.value(n.Alias)
	case yaml.SequenceNode:
		list := make([]interface{}, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := t.value(c)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil
	case yaml.MappingNode:
		m := make(map[string]interface{}, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := t.value(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m[n.Content[i].Value] = v
		}
		t[reflect.ValueOf(m).Pointer()] = n
		return m, nil
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!null":
			return nil, nil
		case "!!bool":
			var b bool
			err := n.Decode(&b)
			return b, err
		case "!!int", "!!float":
			var f float64
			err := n.Decode(&f)
			return f, err
		default:
			return n.Value, nil
		}
	}
	return nil, fmt.Errorf("line %d: unsupported yaml node kind %v", n.Line, n.Kind)
}

// node converts a JMESPath result back into a YAML node. Mappings built by
// value resolve to their original node; values the expression constructed
// are encoded from their generic form.
func (t nodeTable) node(v interface{}) *yaml.Node {
	switch v := v.(type) {
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v)}
	case float64:
		return floatNode(v)
	case string:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
	case []interface{}:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range v {
			n.Content = append(n.Content, t.node(e))
		}
		return n
	case map[string]interface{}:
		if n, ok := t[reflect.ValueOf(v).Pointer()]; ok {
			return n
		}
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, k := range keys {
			n.Content = append(n.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
				t.node(v[k]),
			)
		}
		return n
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: fmt.Sprint(v)}
}

func floatNode(f float64) *yaml.Node {
	switch {
	case math.IsInf(f, 1):
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: ".inf"}
	case math.IsInf(f, -1):
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: "-.inf"}
	case math.IsNaN(f):
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: ".nan"}
	case f == math.Trunc(f) && math.Abs(f) < 1<<53:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(int64(f), 10)}
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: strconv.FormatFloat(f, 'g', -1, 64)}
}
