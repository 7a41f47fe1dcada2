package cli

import (
	"cmp"
	"fmt"
	"io"
	"iter"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/viant/dsutil/collection"
	"github.com/viant/dsutil/conv"
	"github.com/viant/dsutil/dates"
	ftime "github.com/viant/dsutil/format/time"
)

// Collector names accepted by explode --collect
const (
	collectList   = "list"
	collectSet    = "set"
	collectSorted = "sorted"
)

type exploder func(collect, delimiter, s string) ([]any, error)

func newExploder[E comparable](parse conv.Parser[E], compare func(a, b E) int, render func(E) any) exploder {
	return func(collect, delimiter, s string) ([]any, error) {
		var elements iter.Seq[E]
		switch collect {
		case collectList:
			list, err := collection.Explode[*collection.List[E], E](collection.NewList[E], parse, delimiter, s)
			if err != nil {
				return nil, err
			}
			if list != nil {
				elements = list.All()
			}
		case collectSet:
			set, err := collection.Explode[*collection.LinkedSet[E], E](collection.NewLinkedSet[E], parse, delimiter, s)
			if err != nil {
				return nil, err
			}
			if set != nil {
				elements = set.All()
			}
		case collectSorted:
			newSet := func() *collection.SortedSet[E] { return collection.NewSortedSetFunc(compare) }
			set, err := collection.Explode[*collection.SortedSet[E], E](newSet, parse, delimiter, s)
			if err != nil {
				return nil, err
			}
			if set != nil {
				elements = set.All()
			}
		default:
			return nil, fmt.Errorf("unsupported collector: %q", collect)
		}
		result := []any{}
		if elements == nil {
			return result, nil
		}
		for element := range elements {
			if render != nil {
				result = append(result, render(element))
				continue
			}
			result = append(result, element)
		}
		return result, nil
	}
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	}
	return -1
}

func exploders(pattern string) (map[string]exploder, error) {
	parseTime, err := conv.Time(pattern)
	if err != nil {
		return nil, err
	}
	compiled, err := ftime.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return map[string]exploder{
		"string":   newExploder[string](conv.String, cmp.Compare[string], nil),
		"int":      newExploder[int](conv.Int, cmp.Compare[int], nil),
		"float":    newExploder[float64](conv.Float64, cmp.Compare[float64], nil),
		"bool":     newExploder[bool](conv.Bool, compareBool, nil),
		"duration": newExploder[time.Duration](conv.Duration, cmp.Compare[time.Duration], func(d time.Duration) any { return d.String() }),
		"date":     newExploder[time.Time](parseTime, time.Time.Compare, func(t time.Time) any { return compiled.Format(t) }),
	}, nil
}

func (a *app) delimiter(cmd *cobra.Command, name, value string) string {
	if cmd.Flags().Changed(name) {
		return value
	}
	return a.cfg.Delimiter
}

func (a *app) printElements(cmd *cobra.Command, elements []any) error {
	lines := make([]string, 0, len(elements))
	for _, element := range elements {
		lines = append(lines, fmt.Sprint(element))
	}
	return a.print(cmd, elements, lines...)
}

func (a *app) explodeCommand() *cobra.Command {
	var delimiter, typeName, collect, pattern string
	cmd := &cobra.Command{
		Use:   "explode VALUE",
		Short: "Split a delimited value into typed elements",
		Long: `Splits VALUE on the literal delimiter, trailing empty tokens are dropped.
Every token is converted to --type and collected into a list, an insertion
ordered set or a sorted set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			candidates, err := exploders(pattern)
			if err != nil {
				return err
			}
			explode, err := conv.Lookup(candidates)(strings.ToLower(typeName))
			if err != nil {
				return err
			}
			elements, err := explode(strings.ToLower(collect), a.delimiter(cmd, "delimiter", delimiter), args[0])
			if err != nil {
				return err
			}
			return a.printElements(cmd, elements)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&delimiter, "delimiter", "d", "", "token delimiter (default from configuration)")
	flags.StringVarP(&typeName, "type", "t", "string", "element type: string, int, float, bool, duration or date")
	flags.StringVar(&collect, "collect", collectList, "collector: list, set or sorted")
	flags.StringVarP(&pattern, "pattern", "p", dates.StandardDateFormat, "pattern of date elements")
	return cmd
}

func (a *app) implodeCommand() *cobra.Command {
	var glue string
	cmd := &cobra.Command{
		Use:   "implode VALUE...",
		Short: "Join values with a glue string",
		RunE: func(cmd *cobra.Command, args []string) error {
			result := collection.ImplodeValues(a.delimiter(cmd, "glue", glue), args...)
			return a.print(cmd, result, result)
		},
	}
	cmd.Flags().StringVarP(&glue, "glue", "g", "", "glue placed between values (default from configuration)")
	return cmd
}

func (a *app) flattenCommand() *cobra.Command {
	var unique bool
	cmd := &cobra.Command{
		Use:   "flatten JSON",
		Short: "Flatten nested JSON arrays into their leaves",
		Long:  `Flattens nested arrays depth first. Pass - to read the document from standard input.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			document := []byte(args[0])
			if args[0] == "-" {
				var err error
				if document, err = io.ReadAll(cmd.InOrStdin()); err != nil {
					return err
				}
			}
			var value any
			if err := a.mapper.Unmarshal(document, &value); err != nil {
				return err
			}
			flat, err := collection.Flatten(value, nil)
			if err != nil {
				return err
			}
			var target collection.Collection[any] = collection.NewList[any]()
			if unique {
				target = collection.NewLinkedSet[any]()
			}
			for leaf := range flat.All() {
				if err = target.Add(leaf); err != nil {
					return err
				}
			}
			elements := make([]any, 0, target.Len())
			for leaf := range target.All() {
				elements = append(elements, leaf)
			}
			return a.printElements(cmd, elements)
		},
	}
	cmd.Flags().BoolVarP(&unique, "unique", "u", false, "drop repeated leaves")
	return cmd
}
